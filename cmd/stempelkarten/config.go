// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/stempelkarten/pkg/types"
)

// Viper keys; environment variables are STEMPELKARTEN_<KEY in upper case>.
const (
	keyVolunteerDir   = "volunteer_dir"
	keyPictureDir     = "picture_dir"
	keyTemplateDir    = "template_dir"
	keyOutput         = "output"
	keyTypstBin       = "typst_bin"
	keyLogLevel       = "log_level"
	keyPushgatewayURL = "pushgateway_url"
)

// bindFlags binds each viper key to the named flag of fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// resolveConfig reads the run settings from v.
func resolveConfig(v *viper.Viper) types.Config {
	return types.Config{
		VolunteerDir:   v.GetString(keyVolunteerDir),
		PictureDir:     v.GetString(keyPictureDir),
		TemplateDir:    v.GetString(keyTemplateDir),
		Output:         v.GetString(keyOutput),
		TypstBin:       v.GetString(keyTypstBin),
		LogLevel:       v.GetString(keyLogLevel),
		PushgatewayURL: v.GetString(keyPushgatewayURL),
	}
}

// requireSettings reports every missing required setting at once.
func requireSettings(cfg types.Config, needTemplate bool) error {
	var missing []string
	if cfg.VolunteerDir == "" {
		missing = append(missing, "volunteer-dir")
	}
	if cfg.PictureDir == "" {
		missing = append(missing, "picture-dir")
	}
	if needTemplate && cfg.TemplateDir == "" {
		missing = append(missing, "template-dir")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required setting(s): %s", types.ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}
