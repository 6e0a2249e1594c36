// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import "github.com/pdiddy/stempelkarten/pkg/types"

// VolunteersKey is the single top-level key of the engine input.
const VolunteersKey = "volunteers"

// Volunteer is the engine-facing shape of one volunteer.
type Volunteer struct {
	FirstName      string   `json:"first_name" yaml:"first_name"`
	LastName       string   `json:"last_name" yaml:"last_name"`
	Barcode        string   `json:"barcode" yaml:"barcode"`
	Qualified      bool     `json:"qualified" yaml:"qualified"`
	HideQualified  bool     `json:"hide_qualified" yaml:"hide_qualified"`
	Picture        string   `json:"picture" yaml:"picture"`
	Deployment     []string `json:"deployment" yaml:"deployment"`
	Licenses       []string `json:"licenses" yaml:"licenses"`
	Qualifications []string `json:"qualifications" yaml:"qualifications"`
}

// Inputs is the complete input handed to the templating engine.
type Inputs struct {
	Volunteers []Volunteer `json:"volunteers" yaml:"volunteers"`
}

// NewInputs converts a roster into engine inputs, one record per volunteer in
// roster order.
func NewInputs(roster []types.Volunteer) Inputs {
	out := make([]Volunteer, 0, len(roster))
	for _, v := range roster {
		out = append(out, FromVolunteer(v))
	}
	return Inputs{Volunteers: out}
}

// FromVolunteer maps a parsed volunteer onto its engine record.
func FromVolunteer(v types.Volunteer) Volunteer {
	return Volunteer{
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		Barcode:        v.Barcode,
		Qualified:      v.Qualified,
		HideQualified:  v.HideQualified(),
		Picture:        v.Picture,
		Deployment:     cloneLabels(v.Deployment),
		Licenses:       cloneLabels(v.Licenses),
		Qualifications: cloneLabels(v.Qualifications),
	}
}

// Dict converts the inputs into the engine's dynamic value: a mapping with
// the volunteers sequence under VolunteersKey.
func (in Inputs) Dict() map[string]any {
	volunteers := make([]any, 0, len(in.Volunteers))
	for _, v := range in.Volunteers {
		volunteers = append(volunteers, v.Dict())
	}
	return map[string]any{VolunteersKey: volunteers}
}

// Dict converts one volunteer record into the engine's dynamic value.
func (v Volunteer) Dict() map[string]any {
	return map[string]any{
		"first_name":     v.FirstName,
		"last_name":      v.LastName,
		"barcode":        v.Barcode,
		"qualified":      v.Qualified,
		"hide_qualified": v.HideQualified,
		"picture":        v.Picture,
		"deployment":     labelValues(v.Deployment),
		"licenses":       labelValues(v.Licenses),
		"qualifications": labelValues(v.Qualifications),
	}
}

func cloneLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

func labelValues(labels []string) []any {
	out := make([]any, len(labels))
	for i, l := range labels {
		out[i] = l
	}
	return out
}
