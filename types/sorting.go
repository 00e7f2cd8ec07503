package types

// SortKey selects the display sort for the visible unit list. The display
// sort assigns each unit a dense SortIndex; rendering layers read
// SortIndex rather than re-running comparators, so ordering is stable
// between recomputations.
type SortKey string

const (
	// SortBracket orders descending by bracket midpoint (range schema) or
	// bracket value.
	SortBracket SortKey = "bracket"

	// SortRoomRank orders ascending by venue rank. This is the default at
	// bootstrap, matching the draw page ordering.
	SortRoomRank SortKey = "room_rank"

	// SortImportance orders descending by importance, ties broken
	// descending by raw bracket value.
	SortImportance SortKey = "importance"

	// SortLiveness orders descending by computed liveness, ties broken
	// descending by raw bracket value.
	SortLiveness SortKey = "liveness"
)
