// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the settings for one stamp card run. Values come from flags,
// STEMPELKARTEN_* environment variables, or the stempelkarten.yaml config file.
type Config struct {
	// VolunteerDir is the directory searched recursively for *.toml
	// volunteer description files.
	VolunteerDir string `json:"volunteer_dir" yaml:"volunteer_dir"`

	// PictureDir is the directory that volunteer picture paths are relative to.
	PictureDir string `json:"picture_dir" yaml:"picture_dir"`

	// TemplateDir is the Typst template bundle: template.typ, fonts/ and packages/.
	TemplateDir string `json:"template_dir" yaml:"template_dir"`

	// Output is the PDF path. Empty means a timestamped name in the working
	// directory (see output.DefaultName).
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// TypstBin is the typst executable name or path (default "typst").
	TypstBin string `json:"typst_bin" yaml:"typst_bin"`

	// LogLevel is one of debug, info, warn, error (default "info").
	LogLevel string `json:"log_level" yaml:"log_level"`

	// PushgatewayURL enables pushing run metrics to a Prometheus Pushgateway.
	PushgatewayURL string `json:"pushgateway_url,omitempty" yaml:"pushgateway_url,omitempty"`
}
