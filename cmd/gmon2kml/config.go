// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

func kmlConfig() types.KMLConfig {
	return types.KMLConfig{
		IconDir:        viper.GetString("icon_dir"),
		DocumentName:   viper.GetString("name"),
		Indent:         viper.GetInt("indent"),
		RawDescription: viper.GetBool("raw_description"),
	}
}

func convertConfig() (types.ConvertConfig, error) {
	policy := types.MalformedPolicy(viper.GetString("on_malformed"))
	if !policy.Valid() {
		return types.ConvertConfig{}, fmt.Errorf("unsupported on-malformed policy %q: use fail or skip", policy)
	}
	return types.ConvertConfig{
		KML:         kmlConfig(),
		OnMalformed: policy,
	}, nil
}

func surveyConfig() types.SurveyConfig {
	return types.SurveyConfig{Dir: viper.GetString("survey_dir")}
}

// diagWriter returns the destination for progress messages.
func diagWriter(cmd *cobra.Command) io.Writer {
	if viper.GetBool("quiet") {
		return io.Discard
	}
	return cmd.ErrOrStderr()
}
