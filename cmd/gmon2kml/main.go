// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gmon2kml CLI.
// The root command converts one G-Mon scan log to KML on stdout; the store
// and export subcommands maintain a survey database across many logs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gmon2kml/internal/kml"
	"github.com/pdiddy/gmon2kml/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a single scan log.
var rootCmd = &cobra.Command{
	Use:   "gmon2kml <input>",
	Short: "Convert G-Mon scan logs to KML",
	Long: `gmon2kml reads a G-Mon war-driving scan log (semicolon-separated CSV)
and writes a KML document to stdout with one placemark per access point.

Rows are keyed by BSSID; the last row for a BSSID wins. Access points
without a GPS fix (NaN coordinates) or without an SSID are dropped.
Progress messages go to stderr.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./gmon2kml.yaml or ~/.config/gmon2kml/gmon2kml.yaml)")
	pf.Bool("quiet", false, "suppress progress messages on stderr")
	pf.String("icon-dir", kml.DefaultIconDir, "directory prefix for style icons")
	pf.String("name", "", "name of the KML document")
	pf.Int("indent", 2, "spaces per indentation level (0 = compact)")
	pf.Bool("raw-description", false, "insert the description table as escaped text instead of CDATA")
	pf.String("on-malformed", "fail", "malformed row policy: fail or skip")
	pf.String("survey-dir", "survey", "directory of the survey database")

	for key, flag := range map[string]string{
		"quiet":           "quiet",
		"icon_dir":        "icon-dir",
		"name":            "name",
		"indent":          "indent",
		"raw_description": "raw-description",
		"on_malformed":    "on-malformed",
		"survey_dir":      "survey-dir",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gmon2kml")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gmon2kml"))
		}
	}

	viper.SetEnvPrefix("GMON2KML")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig()
	if err != nil {
		return err
	}
	// Arguments are valid; from here on errors are about the input, not usage.
	cmd.SilenceUsage = true

	_, err = pipeline.Run(args[0], cfg, cmd.OutOrStdout(), diagWriter(cmd))
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
