package merge

import "github.com/crossdeck/crossdeck/pkg/crossdeck/model"

// resolver matches annotation table titles against freshly extracted
// tables. Exact title match wins over normalized match; within either,
// the first table in extraction order wins. Collisions are possible
// (titles are not unique) and reported as ambiguous.
type resolver struct {
	tables []*model.Table
	byNorm map[string][]*model.Table
}

func newResolver(tables []*model.Table) *resolver {
	byNorm := make(map[string][]*model.Table)
	for _, t := range tables {
		key := model.Normalize(t.Title)
		byNorm[key] = append(byNorm[key], t)
	}
	return &resolver{tables: tables, byNorm: byNorm}
}

// resolve finds the owning table for an annotation title. ambiguous is
// true when more than one table shared the winning key.
func (r *resolver) resolve(title string) (t *model.Table, ok, ambiguous bool) {
	if title == "" {
		return nil, false, false
	}
	var exact []*model.Table
	for _, cand := range r.tables {
		if cand.Title == title {
			exact = append(exact, cand)
		}
	}
	if len(exact) > 0 {
		return exact[0], true, len(exact) > 1
	}
	norm := r.byNorm[model.Normalize(title)]
	if len(norm) > 0 {
		return norm[0], true, len(norm) > 1
	}
	return nil, false, false
}
