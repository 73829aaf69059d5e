// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/fracindex/pkg/cli/cliflags"
	"github.com/cockroachdb/fracindex/pkg/util/humanizeutil"
	"github.com/spf13/pflag"
)

func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := os.LookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(err)
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// Int64Flag creates an int64 flag and registers it with the FlagSet.
func Int64Flag(f *pflag.FlagSet, valPtr *int64, flagInfo cliflags.FlagInfo, defaultVal int64) {
	f.Int64VarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// StringArrayFlag creates a repeatable string flag and registers it with the
// FlagSet. Values are not split on commas.
func StringArrayFlag(f *pflag.FlagSet, valPtr *[]string, flagInfo cliflags.FlagInfo) {
	f.StringArrayVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, nil, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

func init() {
	initCLIDefaults()

	// Flags common to all commands.
	{
		f := fracindexCmd.PersistentFlags()
		VarFlag(f, &cliCtx.tableDisplayFormat, cliflags.TableDisplayFormat)
		IntFlag(f, &cliCtx.verbosity, cliflags.Verbosity, cliCtx.verbosity)
		BoolFlag(f, &cliCtx.noColor, cliflags.NoColor, cliCtx.noColor)
		BoolFlag(f, &cliCtx.logRedactable, cliflags.LogRedactable, cliCtx.logRedactable)
	}

	// Commands that read or print keys.
	for _, f := range []*pflag.FlagSet{
		inspectCmd.Flags(),
		beforeCmd.Flags(),
		afterCmd.Flags(),
		betweenCmd.Flags(),
		sequenceCmd.Flags(),
		rankCmd.Flags(),
	} {
		VarFlag(f, &cliCtx.keyFormat, cliflags.KeyFormat)
	}

	VarFlag(betweenCmd.Flags(), strategyValue{&genCtx.strategy}, cliflags.Strategy)

	{
		f := convertCmd.Flags()
		VarFlag(f, &genCtx.fromFormat, cliflags.FromFormat)
		VarFlag(f, &genCtx.toFormat, cliflags.ToFormat)
	}

	{
		f := sequenceCmd.Flags()
		VarFlag(f, humanizeutil.NewCountValue(&genCtx.count), cliflags.Count)
		StringFlag(f, &genCtx.start, cliflags.Start, genCtx.start)
		BoolFlag(f, &genCtx.descending, cliflags.Descending, genCtx.descending)
	}

	{
		f := rankCmd.Flags()
		StringFlag(f, &rankCtx.labels, cliflags.Labels, rankCtx.labels)
		StringArrayFlag(f, &rankCtx.adds, cliflags.Add)
		StringArrayFlag(f, &rankCtx.moves, cliflags.Move)
		BoolFlag(f, &rankCtx.descending, cliflags.Descending, rankCtx.descending)
	}

	{
		f := growthCmd.Flags()
		StringArrayFlag(f, &growthCtx.scenarios, cliflags.Scenario)
		VarFlag(f, humanizeutil.NewCountValue(&growthCtx.steps), cliflags.Steps)
		Int64Flag(f, &growthCtx.seed, cliflags.Seed, growthCtx.seed)
	}
}
