package types

import (
	"encoding/json"
	"fmt"
)

// Patch is one attribute update for a single entity: the target id plus
// the changed fields. On the wire it is a flat object,
// e.g. {"id": 71, "importance": 2}.
type Patch struct {
	ID     int64
	Fields map[string]any
}

// MarshalJSON flattens the patch into {"id": N, <field>: <value>, ...}.
func (p Patch) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Fields)+1)
	for k, v := range p.Fields {
		out[k] = v
	}
	out["id"] = p.ID

	return json.Marshal(out)
}

// UnmarshalJSON splits the flat wire object back into id and fields.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Fields = make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "id" {
			p.ID = int64(asFloat(v))

			continue
		}
		p.Fields[k] = v
	}
	if p.ID == 0 {
		return fmt.Errorf("patch missing id: %s", data)
	}

	return nil
}

// Message is a server-pushed notice or error carried on an inbound
// envelope. Messages are always surfaced to the user and always clear the
// store's loading flag, regardless of which session the envelope belongs
// to.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Envelope is the unit of exchange on the broadcast channel.
//
// Outbound envelopes carry attribute-keyed patch groups plus the sending
// session's componentID:
//
//	{"importance": [{"id": 71, "importance": 2}], "componentID": 1407}
//
// Inbound envelopes may instead carry a consolidated "debatesOrPanels"
// patch list (as sent by server-side regeneration) and an optional
// message:
//
//	{"componentID": 5711, "debatesOrPanels": [{"id": 72, "importance": 2}]}
//
// A session receiving an envelope tagged with its own componentID must
// treat it as an echo of its own write and ignore the patches.
type Envelope struct {
	// ComponentID identifies the originating session.
	ComponentID int64

	// Updates holds attribute-keyed patch groups (the outbound shape).
	Updates map[string][]Patch

	// Units holds consolidated unit patches (the "debatesOrPanels" key).
	Units []Patch

	// Message is an optional server-pushed notice.
	Message *Message
}

// reserved top-level envelope keys that are not attribute patch groups.
const (
	keyComponentID = "componentID"
	keyUnits       = "debatesOrPanels"
	keyMessage     = "message"
)

// MarshalJSON emits the dynamic wire shape: one top-level key per
// attribute patch group, plus the reserved keys.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Updates)+3)
	for attr, patches := range e.Updates {
		out[attr] = patches
	}
	if e.Units != nil {
		out[keyUnits] = e.Units
	}
	if e.Message != nil {
		out[keyMessage] = e.Message
	}
	out[keyComponentID] = e.ComponentID

	return json.Marshal(out)
}

// UnmarshalJSON decodes the dynamic wire shape; any non-reserved top-level
// key is taken to be an attribute patch group.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw {
		switch key {
		case keyComponentID:
			var id float64
			if err := json.Unmarshal(value, &id); err != nil {
				return fmt.Errorf("decode componentID: %w", err)
			}
			e.ComponentID = int64(id)
		case keyUnits:
			if err := json.Unmarshal(value, &e.Units); err != nil {
				return fmt.Errorf("decode %s: %w", keyUnits, err)
			}
		case keyMessage:
			if err := json.Unmarshal(value, &e.Message); err != nil {
				return fmt.Errorf("decode message: %w", err)
			}
		default:
			var patches []Patch
			if err := json.Unmarshal(value, &patches); err != nil {
				return fmt.Errorf("decode patch group %q: %w", key, err)
			}
			if e.Updates == nil {
				e.Updates = make(map[string][]Patch)
			}
			e.Updates[key] = patches
		}
	}

	return nil
}
