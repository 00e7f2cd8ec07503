package types

import "encoding/json"

// AllocatableItem is a draggable resource (an adjudicator, in the shipped
// views) that can be placed on allocation units.
//
// Items carry a free-form attribute bag because the set of displayed
// attributes (region, institution, gender, feedback score, ...) varies by
// tournament configuration. LastModified is only used to preserve the
// manual drag order of currently-unallocated items; it is not a version
// clock.
type AllocatableItem struct {
	ID           int64
	Attributes   map[string]any
	LastModified int64
}

// Apply merges patched attributes into the item, field by field. The
// "vue_last_modified" key updates LastModified; everything else lands in
// the attribute bag.
func (a *AllocatableItem) Apply(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "id":
		case "vue_last_modified":
			a.LastModified = int64(asFloat(value))
		default:
			if a.Attributes == nil {
				a.Attributes = make(map[string]any)
			}
			a.Attributes[key] = value
		}
	}
}

// MarshalJSON emits the item as the flat dictionary the wire format uses:
// id and vue_last_modified alongside the free-form attributes.
func (a *AllocatableItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(a.Attributes)+2)
	for k, v := range a.Attributes {
		out[k] = v
	}
	out["id"] = a.ID
	if a.LastModified != 0 {
		out["vue_last_modified"] = a.LastModified
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the flat wire dictionary, splitting id and
// vue_last_modified out of the attribute bag.
func (a *AllocatableItem) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Attributes = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "id":
			a.ID = int64(asFloat(v))
		case "vue_last_modified":
			a.LastModified = int64(asFloat(v))
		default:
			a.Attributes[k] = v
		}
	}

	return nil
}
