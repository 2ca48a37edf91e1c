// Package basetext owns the respondent-base footnote format. Both the
// renderer and the merge engine go through Render and Parse, so the
// writer and the reader can never drift apart.
package basetext

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultDescription is used when no custom description exists.
const DefaultDescription = "Total respondents"

const prefix = "Base:"

// Render formats a base footnote. An empty description falls back to
// DefaultDescription; a nil count omits the trailing count clause.
func Render(description string, n *int64) string {
	if description == "" {
		description = DefaultDescription
	}
	if n == nil {
		return fmt.Sprintf("%s %s.", prefix, description)
	}
	return fmt.Sprintf("%s %s. %s complete surveys.", prefix, description, humanize.Comma(*n))
}

// Parse extracts the custom description and the respondent count from
// a rendered footnote. The description is the text between "Base:" and
// the first period, or, when no period exists, the span up to the
// first pure-digit token. Text that does not start with "Base:" yields
// an empty description. n is nil when no count is present.
func Parse(s string) (description string, n *int64) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, prefix) {
		return "", findCount(s)
	}
	rest := strings.TrimSpace(strings.TrimPrefix(s, prefix))

	if i := strings.Index(rest, "."); i >= 0 {
		return strings.TrimSpace(rest[:i]), findCount(rest[i+1:])
	}

	// No period: the description runs up to the first pure-digit token.
	var descWords []string
	fields := strings.Fields(rest)
	for i, tok := range fields {
		if isCountToken(tok) {
			return strings.Join(descWords, " "), findCount(strings.Join(fields[i:], " "))
		}
		descWords = append(descWords, tok)
	}
	return strings.Join(descWords, " "), nil
}

// findCount returns the first integer-looking token, tolerating
// thousands separators.
func findCount(s string) *int64 {
	for _, tok := range strings.Fields(s) {
		if !isCountToken(tok) {
			continue
		}
		var n int64
		for _, r := range tok {
			if r == ',' {
				continue
			}
			n = n*10 + int64(r-'0')
		}
		return &n
	}
	return nil
}

// isCountToken reports whether tok is digits, optionally with comma
// separators.
func isCountToken(tok string) bool {
	if tok == "" {
		return false
	}
	digits := 0
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',':
		default:
			return false
		}
	}
	return digits > 0
}
