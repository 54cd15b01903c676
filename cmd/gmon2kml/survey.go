// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/gmon2kml/internal/kml"
	"github.com/pdiddy/gmon2kml/internal/pipeline"
	"github.com/pdiddy/gmon2kml/internal/survey"
)

// --- store subcommand ---

var storeCmd = &cobra.Command{
	Use:   "store <input...>",
	Short: "Add scan logs to the survey database",
	Long: `Store parses and filters each scan log the same way the root command
does and adds the surviving access points to a SQLite survey database.
An access point seen again takes all values from the newest log.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStore,
}

func runStore(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true
	diag := diagWriter(cmd)

	store, err := survey.NewStore(surveyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	failed := 0
	for _, path := range args {
		set, _, err := pipeline.Load(path, cfg, diag)
		if err != nil {
			fmt.Fprintf(diag, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		sum, err := store.Ingest(ctx, path, set)
		if err != nil {
			fmt.Fprintf(diag, "failed:  %s (%v)\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(diag, "stored: %s (%d new, %d updated)\n", path, sum.Inserted, sum.Updated)
	}

	fmt.Fprintf(diag, "\nStore summary: %d stored, %d failed (total: %d)\n",
		len(args)-failed, failed, len(args))
	if failed > 0 {
		return fmt.Errorf("%d scan log(s) failed", failed)
	}
	return nil
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the survey database as KML, YAML or JSON",
	Long: `Export writes every access point in the survey database to stdout.
KML output uses the same styles and placemarks as the root command.
Use --crypt and --ssid to export a subset.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	crypt, _ := cmd.Flags().GetString("crypt")
	ssid, _ := cmd.Flags().GetString("ssid")
	cmd.SilenceUsage = true

	store, err := survey.NewStore(surveyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	filter := survey.Filter{Crypt: crypt, SSID: ssid}
	out := cmd.OutOrStdout()

	switch format {
	case "kml", "":
		set, err := store.Records(ctx, filter)
		if err != nil {
			return err
		}
		if err := kml.Write(out, set, kmlConfig()); err != nil {
			return err
		}
		fmt.Fprintf(diagWriter(cmd), "Exported %d placemarks\n", set.Len())
	case "yaml":
		return store.ExportYAML(ctx, out, filter)
	case "json":
		return store.ExportJSON(ctx, out, filter)
	default:
		return fmt.Errorf("unsupported format %q: use kml, yaml or json", format)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("format", "kml", "export format: kml, yaml or json")
	exportCmd.Flags().String("crypt", "", "only export access points with this encryption")
	exportCmd.Flags().String("ssid", "", "only export access points whose SSID contains this text")

	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(exportCmd)
}
