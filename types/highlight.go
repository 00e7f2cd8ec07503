package types

import "fmt"

// HighlightOption is one selectable option within a highlight category,
// e.g. a particular break category or region. Dead and Safe carry the
// point thresholds used by the liveness computation for break categories.
type HighlightOption struct {
	PK   int64   `json:"pk"`
	Name string  `json:"name,omitempty"`
	Dead float64 `json:"dead,omitempty"`
	Safe float64 `json:"safe,omitempty"`

	// CSS is the semantic tag assigned deterministically at bootstrap from
	// the category name and the option's position in the payload.
	CSS string `json:"css,omitempty"`
}

// HighlightCategory groups the options for one highlight mode ("break",
// "region", "gender", ...). At most one category is active at a time;
// the store enforces the mutual exclusion.
type HighlightCategory struct {
	Active  bool
	Options map[int64]HighlightOption
}

// NewHighlightCategory expands a bootstrap option list into a category,
// assigning each option its deterministic "{name}-{index}" tag.
func NewHighlightCategory(name string, options []HighlightOption) *HighlightCategory {
	cat := &HighlightCategory{
		Active:  false,
		Options: make(map[int64]HighlightOption, len(options)),
	}
	for i, opt := range options {
		opt.CSS = fmt.Sprintf("%s-%d", name, i)
		cat.Options[opt.PK] = opt
	}

	return cat
}
