// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Volunteer is one volunteer as described by a single TOML description file.
type Volunteer struct {
	FirstName string `toml:"first_name" json:"first_name" yaml:"first_name"`
	LastName  string `toml:"last_name" json:"last_name" yaml:"last_name"`

	// Barcode is printed on the card and scanned at deployments. Uniqueness
	// across the roster is not checked.
	Barcode string `toml:"barcode" json:"barcode" yaml:"barcode"`

	Qualified bool `toml:"qualified" json:"qualified" yaml:"qualified"`

	// Picture is a file name relative to the picture directory.
	Picture string `toml:"picture" json:"picture" yaml:"picture"`

	// Deployment, Licenses and Qualifications keep the order of the source file.
	Deployment     []string `toml:"deployment" json:"deployment" yaml:"deployment"`
	Licenses       []string `toml:"licenses" json:"licenses" yaml:"licenses"`
	Qualifications []string `toml:"qualifications" json:"qualifications" yaml:"qualifications"`

	// HideIndicator suppresses the qualified marker on the card. Nil when the
	// description file omits it.
	HideIndicator *bool `toml:"hide_indicator,omitempty" json:"hide_indicator,omitempty" yaml:"hide_indicator,omitempty"`
}

// HideQualified reports whether the qualified marker should be hidden,
// treating an absent hide_indicator as false.
func (v Volunteer) HideQualified() bool {
	return v.HideIndicator != nil && *v.HideIndicator
}
