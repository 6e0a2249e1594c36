// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stempelkarten/internal/metrics"
	"github.com/pdiddy/stempelkarten/internal/metrics/prompush"
	"github.com/pdiddy/stempelkarten/internal/pipeline"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render all volunteers into a stamp card PDF",
	Long: `Generate loads every volunteer description (*.toml, at any depth) from the
volunteer directory, checks that each picture exists in the picture directory,
and compiles template.typ from the template directory into a PDF.

The template reads the roster with json(sys.inputs.inputs_file).volunteers and
the picture directory, relative to the compilation root, from
sys.inputs.picture_dir. The inputs file lives in a scratch directory inside
the template directory for the duration of the run, so the template directory
must be writable. Without --output the PDF is written to
<timestamp>_Stempelkarten.pdf in the working directory; existing files are
overwritten.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("template-dir", "t", "", "template directory containing template.typ, fonts/ and packages/")
	generateCmd.Flags().StringP("output", "o", "", "output PDF path (default: <timestamp>_Stempelkarten.pdf)")

	bindFlags(generateCmd.Flags(), map[string]string{
		keyTemplateDir: "template-dir",
		keyOutput:      "output",
	})

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(viper.GetViper())
	if err := requireSettings(cfg, true); err != nil {
		return err
	}

	rec := newRecorder(cfg)
	res, err := pipeline.New(pipeline.Options{Metrics: rec}).Generate(cfg)
	if ferr := rec.Flush(); ferr != nil {
		log.Warn("could not push run metrics", "err", ferr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d stamp card(s) to %s\n", res.Volunteers, res.Output)
	return nil
}

// newRecorder returns the Pushgateway recorder when configured, or a no-op.
func newRecorder(cfg types.Config) metrics.Recorder {
	if cfg.PushgatewayURL == "" {
		return metrics.Nop{}
	}
	b, err := prompush.NewBackend(prompush.DefaultJob, cfg.PushgatewayURL)
	if err != nil {
		log.Warn("metrics disabled", "err", err)
		return metrics.Nop{}
	}
	return b
}
