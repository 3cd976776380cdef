package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// CharacterLimit bounds every successful tool response.
const CharacterLimit = 25000

// Guard returns text unchanged when it fits in limit characters. Otherwise
// it keeps exactly the first limit characters and appends a warning naming
// the original and kept lengths. The cut is character-level for both output
// formats, so truncated JSON is no longer valid JSON.
func Guard(text string, limit int) (string, bool) {
	n := utf8.RuneCountInString(text)
	if n <= limit {
		return text, false
	}
	kept := string([]rune(text)[:limit])
	warning := fmt.Sprintf(
		"\n\n⚠️ **Response truncated** from %s to %s characters. Use filters, pagination, or reduce date range to see more data.",
		humanize.Comma(int64(n)), humanize.Comma(int64(limit)))
	return kept + warning, true
}
