package conflict

import "github.com/TabbycatDebate/tabbycat/types"

// Index holds the precomputed conflict and history datasets from the
// bootstrap payload. All lookups are pure; a nil Index behaves like one
// with no data supplied.
type Index struct {
	clashes   *types.ConflictSets
	histories *types.ConflictSets
}

// NewIndex creates an accessor over the supplied datasets. Either dataset
// may be nil when the serving view does not compute it.
func NewIndex(clashes, histories *types.ConflictSets) *Index {
	return &Index{clashes: clashes, histories: histories}
}

// TeamClashes returns the teams the given adjudicator clashes with.
// ok is false when clash data was not supplied at all, which is distinct
// from an empty result.
func (ix *Index) TeamClashes(id int64) (ids []int64, ok bool) {
	if ix == nil || ix.clashes == nil {
		return nil, false
	}

	return ix.clashes.Teams[id], true
}

// AdjudicatorClashes returns the adjudicators the given adjudicator
// clashes with. ok is false when clash data was not supplied.
func (ix *Index) AdjudicatorClashes(id int64) (ids []int64, ok bool) {
	if ix == nil || ix.clashes == nil {
		return nil, false
	}

	return ix.clashes.Adjudicators[id], true
}

// TeamHistories returns the teams the given adjudicator has previously
// seen. ok is false when history data was not supplied.
func (ix *Index) TeamHistories(id int64) (ids []int64, ok bool) {
	if ix == nil || ix.histories == nil {
		return nil, false
	}

	return ix.histories.Teams[id], true
}

// AdjudicatorHistories returns the adjudicators the given adjudicator has
// previously judged with. ok is false when history data was not supplied.
func (ix *Index) AdjudicatorHistories(id int64) (ids []int64, ok bool) {
	if ix == nil || ix.histories == nil {
		return nil, false
	}

	return ix.histories.Adjudicators[id], true
}
