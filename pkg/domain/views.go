package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// State is the typed view of a state record.
type State struct {
	Name         string `json:"state" mapstructure:"state"`
	Capital      string `json:"capital" mapstructure:"capital"`
	Abbreviation string `json:"abbreviation,omitempty" mapstructure:"abbreviation"`
}

// Artwork is the typed view of an artwork record.
type Artwork struct {
	Title      string `json:"title" mapstructure:"title"`
	ArtistName string `json:"artistName" mapstructure:"artistName"`
	Style      string `json:"style" mapstructure:"style"`
	Date       string `json:"date,omitempty" mapstructure:"date"`
	Medium     string `json:"medium,omitempty" mapstructure:"medium"`
}

// DecodeState decodes a record into a State.
// The state and capital fields are required.
func DecodeState(r Record) (State, error) {
	var s State
	err := decode(r, &s, FieldState, FieldCapital)
	return s, err
}

// Record converts the view back into a Record, omitting empty optional fields.
func (s State) Record() Record {
	r := Record{FieldState: s.Name, FieldCapital: s.Capital}
	if s.Abbreviation != "" {
		r["abbreviation"] = s.Abbreviation
	}
	return r
}

// Record converts the view back into a Record, omitting empty optional fields.
func (a Artwork) Record() Record {
	r := Record{FieldTitle: a.Title, FieldArtistName: a.ArtistName, FieldStyle: a.Style}
	if a.Date != "" {
		r["date"] = a.Date
	}
	if a.Medium != "" {
		r["medium"] = a.Medium
	}
	return r
}

// decode checks the required fields with Record.String, then decodes the string-valued
// fields into out. Non-string incidental fields are left out rather than failing the record.
func decode(r Record, out any, required ...string) error {
	in := make(map[string]any, len(r))
	for _, field := range required {
		if _, err := r.String(field); err != nil {
			return err
		}
	}
	for k, v := range r {
		if s, ok := v.(string); ok {
			in[k] = s
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return nil
}
