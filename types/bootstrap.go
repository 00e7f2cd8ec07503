package types

// Bootstrap is the initial dataset supplied once at session start. It
// seeds the store's unit and item maps, the highlight categories, and the
// precomputed conflict index.
type Bootstrap struct {
	// Round and Tournament are round- and tournament-scoped constants,
	// copied into the store verbatim for the rendering layer to read.
	Round      map[string]any `json:"round"`
	Tournament map[string]any `json:"tournament"`

	Extra Extra `json:"extra"`

	// Units lists every debate or panel in the working set.
	Units []*AllocationUnit `json:"debatesOrPanels"`

	// Items lists the allocatable pool (adjudicators).
	Items []*AllocatableItem `json:"allocatableItems"`

	Institutions []Institution `json:"institutions"`
	Regions      []Region      `json:"regions"`
}

// Extra carries the highlight definitions and the precomputed conflict
// and history datasets.
type Extra struct {
	// Highlights maps a category name to its option list, in payload order.
	// Option order determines the assigned CSS tags.
	Highlights map[string][]HighlightOption `json:"highlights"`

	// Clashes and Histories are nil when the serving view does not compute
	// them; the conflict accessor distinguishes "no data" from "no
	// conflicts".
	Clashes   *ConflictSets `json:"clashes,omitempty"`
	Histories *ConflictSets `json:"histories,omitempty"`
}

// ConflictSets maps entity IDs to the teams or adjudicators they conflict
// with. An absent entry is equivalent to an empty set.
type ConflictSets struct {
	Teams        map[int64][]int64 `json:"teams"`
	Adjudicators map[int64][]int64 `json:"adjudicators"`
}

// Institution is a participating institution, referenced by team and
// adjudicator attributes.
type Institution struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Region groups institutions for regional conflict highlighting.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
