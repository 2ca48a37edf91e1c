// Package annotation encodes the key-value schema embedded in deck
// shapes. The annotation text is the only state that survives across
// sessions; it is the channel that reconnects a shape to its source
// crosstab on every update cycle. Decode normalizes keys (trimmed,
// lowercased, spaces collapsed to underscores), so Encode(Decode(s))
// reproduces s exactly only when s already carries normalized keys —
// the only form Encode ever writes.
package annotation

import (
	"sort"
	"strings"
)

// Annotation keys.
const (
	KeyType        = "type"
	KeyTableTitle  = "table_title"
	KeyColumn      = "column"
	KeyExcludeRows = "exclude_rows"
	KeyAutoUpdate  = "auto_update"
)

// Values for KeyType.
const (
	TypeChart        = "chart"
	TypeTable        = "table"
	TypeQuestionText = "question_text"
	TypeTextBase     = "text_base"
	TypeTextTitle    = "text_title"
)

// ExcludeRowsValue is the fixed, informational exclusion list written
// on chart and table annotations.
const ExcludeRowsValue = "base, mean, average, avg"

// canonicalOrder fixes the emit order for known keys; unknown keys
// follow, sorted.
var canonicalOrder = []string{KeyType, KeyTableTitle, KeyColumn, KeyExcludeRows, KeyAutoUpdate}

// Encode renders a mapping as newline-separated "key: value" lines.
// Pairs with empty values are omitted. Known keys come first in a
// fixed order so the output is stable.
func Encode(m map[string]string) string {
	var lines []string
	emit := func(k string) {
		if v := m[k]; v != "" {
			lines = append(lines, k+": "+v)
		}
	}
	seen := make(map[string]bool, len(canonicalOrder))
	for _, k := range canonicalOrder {
		emit(k)
		seen[k] = true
	}
	var rest []string
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		emit(k)
	}
	return strings.Join(lines, "\n")
}

// Decode parses annotation text back into a mapping. Each line splits
// on the first colon (tolerating a " : " variant); keys are
// normalized (trimmed, lowercased, internal whitespace collapsed),
// values only trimmed. Lines without a colon are dropped. Decode never
// fails: text with no recognizable pairs yields an empty mapping,
// meaning the shape is not managed by this system.
func Decode(s string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(s, "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key := normalizeKey(k)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(v)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.Join(strings.Fields(k), " "))
}

// IsManaged reports whether the mapping identifies a shape owned by
// the system.
func IsManaged(m map[string]string) bool {
	return m[KeyType] != "" || m[KeyTableTitle] != ""
}

// AutoUpdate reports whether the shape may be refreshed. Only an
// explicit "no" opts out.
func AutoUpdate(m map[string]string) bool {
	return !strings.EqualFold(strings.TrimSpace(m[KeyAutoUpdate]), "no")
}
