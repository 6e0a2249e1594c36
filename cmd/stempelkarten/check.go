// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/stempelkarten/internal/pipeline"
	"github.com/pdiddy/stempelkarten/internal/template"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the volunteer roster without rendering",
	Long: `Check runs discovery and validation exactly like generate but stops before
the template is compiled. Use --format yaml or --format json to print the
input the template would receive.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := resolveConfig(viper.GetViper())
	if err := requireSettings(cfg, false); err != nil {
		return err
	}

	roster, err := pipeline.New(pipeline.Options{}).LoadRoster(cfg)
	if err != nil {
		return err
	}
	return writeRoster(cmd.OutOrStdout(), roster, format)
}

// writeRoster prints roster in the given format.
func writeRoster(w io.Writer, roster []types.Volunteer, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "BARCODE\tNAME\tQUALIFIED\tPICTURE")
		for _, v := range roster {
			fmt.Fprintf(tw, "%s\t%s, %s\t%t\t%s\n", v.Barcode, v.LastName, v.FirstName, v.Qualified, v.Picture)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%d volunteer(s) valid\n", len(roster))
		return nil
	case "yaml":
		data, err := yaml.Marshal(template.NewInputs(roster))
		if err != nil {
			return fmt.Errorf("marshaling roster: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(template.NewInputs(roster))
	default:
		return fmt.Errorf("%w: unknown format %q (want text, yaml, or json)", types.ErrConfiguration, format)
	}
}
