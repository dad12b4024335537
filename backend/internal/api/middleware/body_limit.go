package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// BodyLimit rejects request bodies larger than maxBytes with 413.
// Bodies without a Content-Length are buffered up to the cap first.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			tooLarge(c)
			return
		}

		if c.Request.ContentLength < 0 {
			body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1))
			_ = c.Request.Body.Close()
			if err != nil {
				response.BadRequest(c, 10001, "Unreadable request body")
				c.Abort()
				return
			}
			if int64(len(body)) > maxBytes {
				tooLarge(c)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func tooLarge(c *gin.Context) {
	response.Error(c, http.StatusRequestEntityTooLarge, 10005, "Request body too large")
	c.Abort()
}
