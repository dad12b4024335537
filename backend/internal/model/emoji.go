package model

// Emoji is one point of the fixed five-point satisfaction scale.
type Emoji struct {
	ID    int
	Char  string
	Label string
}

// EmojiScale in id order: 1 = Excellent .. 5 = Terrible.
var EmojiScale = [5]Emoji{
	{ID: 1, Char: "😍", Label: "Excellent"},
	{ID: 2, Char: "😊", Label: "Good"},
	{ID: 3, Char: "😐", Label: "Okay"},
	{ID: 4, Char: "😞", Label: "Poor"},
	{ID: 5, Char: "😡", Label: "Terrible"},
}

// emojiByChar maps characters stored by the character-only schema to ids.
var emojiByChar = map[string]int{
	"😍": 1,
	"😊": 2,
	"😐": 3,
	"😞": 4,
	"😡": 5,
}

// ValidEmojiID reports whether id is on the scale.
func ValidEmojiID(id int) bool {
	return id >= 1 && id <= len(EmojiScale)
}

// EmojiByID returns the scale point for id.
func EmojiByID(id int) (Emoji, bool) {
	if !ValidEmojiID(id) {
		return Emoji{}, false
	}
	return EmojiScale[id-1], true
}

// EmojiIDFromChar maps a stored character to its id; 0 when unknown.
func EmojiIDFromChar(char string) int {
	return emojiByChar[char]
}

// ResolveEmojiID picks the scale id of a stored answer: the numeric id when
// present, otherwise the character mapping. 0 means the answer does not map
// onto the scale.
func ResolveEmojiID(emojiID *int, char *string) int {
	if emojiID != nil && ValidEmojiID(*emojiID) {
		return *emojiID
	}
	if char != nil {
		return EmojiIDFromChar(*char)
	}
	return 0
}
