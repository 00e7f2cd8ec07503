package types

import "encoding/json"

// AllocationUnit is a single debate or preformed panel in the working set.
//
// Units are created from the bootstrap payload or upserted from inbound
// envelopes (for example when the server regenerates panels mid-session).
// They are mutated in place by attribute patches and never deleted during
// a session.
type AllocationUnit struct {
	// ID is the stable, server-assigned primary key. Unique across the
	// working set.
	ID int64 `json:"id"`

	// Bracket is the strength band for formats with a single bracket value.
	Bracket float64 `json:"bracket,omitempty"`

	// BracketMin and BracketMax replace Bracket for formats that carry a
	// bracket range. When BracketMin is non-nil the range schema is in use.
	BracketMin *float64 `json:"bracket_min,omitempty"`
	BracketMax *float64 `json:"bracket_max,omitempty"`

	// Importance is the author-adjustable priority of the unit.
	Importance float64 `json:"importance"`

	// RoomRank is the numeric ranking of the assigned venue.
	RoomRank float64 `json:"room_rank"`

	// SortIndex is assigned by the active display sort. It is derived
	// state, dense in [0, count) over the working set, and not persisted.
	SortIndex int `json:"-"`

	// Teams maps a side position (e.g. "aff", "neg", "og") to the team
	// occupying it, or nil while sides are being edited.
	Teams map[string]*Team `json:"teams,omitempty"`

	// Adjudicators maps a role position (e.g. "chair", "panellists",
	// "trainees") to the adjudicator IDs allocated there.
	Adjudicators map[string][]int64 `json:"adjudicators,omitempty"`

	// Extra holds attributes patched onto the unit that the store does not
	// model explicitly (venue assignments, side confirmation flags, ...).
	Extra map[string]any `json:"-"`

	liveness      int
	livenessValid bool
}

// Team occupies a side position on an AllocationUnit. Only the fields
// needed for liveness and conflict display are modelled.
type Team struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name,omitempty"`
	Points          float64 `json:"points"`
	BreakCategories []int64 `json:"break_categories,omitempty"`
	Institution     int64   `json:"institution,omitempty"`
	Region          int64   `json:"region,omitempty"`
}

// HasBracketRange reports whether the unit uses the bracket_min/bracket_max
// schema rather than a single bracket value.
func (u *AllocationUnit) HasBracketRange() bool {
	return u.BracketMin != nil
}

// BracketMidpoint returns the midpoint of the bracket range, or the plain
// bracket value for single-bracket formats. Used by the bracket display sort.
func (u *AllocationUnit) BracketMidpoint() float64 {
	if u.BracketMin != nil && u.BracketMax != nil {
		return (*u.BracketMin + *u.BracketMax) / 2
	}

	return u.Bracket
}

// BracketSortValue returns the raw bracket value used for ordering before
// sharding: bracket_min under the range schema, bracket otherwise. This is
// deliberately not the midpoint; the pre-shard ordering and the display
// sort use different bracket readings.
func (u *AllocationUnit) BracketSortValue() float64 {
	if u.BracketMin != nil {
		return *u.BracketMin
	}

	return u.Bracket
}

// Liveness returns the cached liveness count and whether the cache is valid.
// Liveness is computed lazily by the store and invalidated whenever the
// unit's teams change.
func (u *AllocationUnit) Liveness() (int, bool) {
	return u.liveness, u.livenessValid
}

// SetLiveness stores a computed liveness count on the unit.
func (u *AllocationUnit) SetLiveness(v int) {
	u.liveness = v
	u.livenessValid = true
}

// InvalidateLiveness drops the cached liveness so the next liveness sort
// recomputes it.
func (u *AllocationUnit) InvalidateLiveness() {
	u.liveness = 0
	u.livenessValid = false
}

// Apply merges a set of patched attributes into the unit, field by field,
// last write wins. Unknown attributes are retained in Extra so that patches
// for unmodelled fields still round-trip. Patching "teams" invalidates the
// cached liveness.
func (u *AllocationUnit) Apply(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "id":
			// Identity never changes via patch.
		case "bracket":
			u.Bracket = asFloat(value)
		case "bracket_min":
			f := asFloat(value)
			u.BracketMin = &f
		case "bracket_max":
			f := asFloat(value)
			u.BracketMax = &f
		case "importance":
			u.Importance = asFloat(value)
		case "room_rank":
			u.RoomRank = asFloat(value)
		case "teams":
			var teams map[string]*Team
			if reencode(value, &teams) {
				u.Teams = teams
			}
			u.InvalidateLiveness()
		case "adjudicators":
			var adjs map[string][]int64
			if reencode(value, &adjs) {
				u.Adjudicators = adjs
			}
		default:
			if u.Extra == nil {
				u.Extra = make(map[string]any)
			}
			u.Extra[key] = value
		}
	}
}

// asFloat coerces patch values that may arrive as JSON numbers, typed
// numerics, or numeric strings (the reference wire format sends importance
// as a quoted number).
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()

		return f
	case string:
		var f float64
		if err := json.Unmarshal([]byte(n), &f); err == nil {
			return f
		}

		return 0
	default:
		return 0
	}
}

// reencode converts an untyped patch value into a typed destination via a
// JSON round-trip. This accepts both decoded wire values (map[string]any)
// and typed values built in-process.
func reencode(v any, dst any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dst) == nil
}
