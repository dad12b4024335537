package service

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const (
	slugLength   = 8
	slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugAttempts = 10
)

// generateSlug draws slugLength characters uniformly from slugAlphabet.
func generateSlug() (string, error) {
	max := big.NewInt(int64(len(slugAlphabet)))
	result := make([]byte, slugLength)
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = slugAlphabet[n.Int64()]
	}
	return string(result), nil
}

// fallbackSlug is used once every random attempt collided. It is not
// checked against the table.
func fallbackSlug(now time.Time) string {
	return "dept-" + strconv.FormatInt(now.UnixMilli(), 36)
}
