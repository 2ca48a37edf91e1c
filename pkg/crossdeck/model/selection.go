package model

import "fmt"

// ChartKind identifies one of the fixed chart renderings.
type ChartKind string

const (
	// ChartBarH renders a horizontal clustered bar chart.
	ChartBarH ChartKind = "bar_h"
	// ChartBarV renders a vertical clustered column chart.
	ChartBarV ChartKind = "bar_v"
	// ChartDonut renders a doughnut chart.
	ChartDonut ChartKind = "donut"
	// ChartLine renders a line chart with markers.
	ChartLine ChartKind = "line"
	// ChartWithTable renders a horizontal bar chart plus an adjacent
	// data table on the same slide.
	ChartWithTable ChartKind = "chart+table"
)

var chartKindLabels = map[ChartKind]string{
	ChartBarH:      "Bar Horizontal",
	ChartBarV:      "Bar Vertical",
	ChartDonut:     "Donut",
	ChartLine:      "Line",
	ChartWithTable: "Chart + Table",
}

// ChartKinds lists all kinds in display order.
func ChartKinds() []ChartKind {
	return []ChartKind{ChartBarH, ChartBarV, ChartDonut, ChartLine, ChartWithTable}
}

// ParseChartKind accepts either an internal kind ("bar_h") or a display
// label ("Bar Horizontal").
func ParseChartKind(s string) (ChartKind, error) {
	k := ChartKind(s)
	if _, ok := chartKindLabels[k]; ok {
		return k, nil
	}
	for kind, label := range chartKindLabels {
		if label == s {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// Label returns the display label for the kind, or the raw value for
// an unknown kind.
func (k ChartKind) Label() string {
	if l, ok := chartKindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Valid reports whether the kind is one of the fixed set.
func (k ChartKind) Valid() bool {
	_, ok := chartKindLabels[k]
	return ok
}

// Selection captures user intent for one table. Zero-value fields mean
// "use the default derived from the table".
type Selection struct {
	ChartKind    ChartKind `json:"chart_kind,omitempty" yaml:"chart_kind,omitempty"`
	Title        string    `json:"title,omitempty" yaml:"title,omitempty"`
	BaseText     string    `json:"base_text,omitempty" yaml:"base_text,omitempty"`
	QuestionText string    `json:"question_text,omitempty" yaml:"question_text,omitempty"`
}

// SelectionSet maps a table key to its selection. Within one editing
// session the key is Table.ID; when handed to the merge engine the key
// is the normalized table title.
type SelectionSet map[string]Selection

// ApplyDefault returns a new set where every entry has the non-zero
// fields of def applied over it. The input set is not modified.
func ApplyDefault(set SelectionSet, def Selection) SelectionSet {
	out := make(SelectionSet, len(set))
	for k, sel := range set {
		if def.ChartKind != "" {
			sel.ChartKind = def.ChartKind
		}
		if def.Title != "" {
			sel.Title = def.Title
		}
		if def.BaseText != "" {
			sel.BaseText = def.BaseText
		}
		if def.QuestionText != "" {
			sel.QuestionText = def.QuestionText
		}
		out[k] = sel
	}
	return out
}

// ByTitle re-keys an ID-keyed set by normalized table title, for use
// across a parse boundary. When titles collide the first table in
// extraction order keeps its selection.
func (s SelectionSet) ByTitle(tables []*Table) SelectionSet {
	out := make(SelectionSet)
	for _, t := range tables {
		sel, ok := s[t.ID]
		if !ok {
			continue
		}
		key := Normalize(t.Title)
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = sel
	}
	return out
}

// ReKeyByID converts a title-keyed set back to ID keys against a fresh
// parse. Entries whose title matches no table are dropped.
func (s SelectionSet) ReKeyByID(tables []*Table) SelectionSet {
	out := make(SelectionSet)
	for _, t := range tables {
		if sel, ok := s[Normalize(t.Title)]; ok {
			out[t.ID] = sel
		}
	}
	return out
}

// Normalized returns a copy of the set with every key passed through
// Normalize. Keys that collide after normalization keep one arbitrary
// entry; callers feeding hand-written files should keep titles
// distinct.
func (s SelectionSet) Normalized() SelectionSet {
	out := make(SelectionSet, len(s))
	for k, sel := range s {
		nk := Normalize(k)
		if _, exists := out[nk]; exists {
			continue
		}
		out[nk] = sel
	}
	return out
}
