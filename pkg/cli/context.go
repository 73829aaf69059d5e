// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/mattn/go-isatty"
)

// initCLIDefaults serves as the single point of truth for
// configuration defaults. It is suitable for calling between tests of
// the CLI utilities inside the same test process.
func initCLIDefaults() {
	setCliContextDefaults()
	setGenContextDefaults()
	setRankContextDefaults()
	setGrowthContextDefaults()
}

// cliContext captures the command-line parameters common to all commands.
type cliContext struct {
	// keyFormat is the text encoding of keys read and printed.
	keyFormat keyFormat

	// tableDisplayFormat indicates how to format tabular results.
	tableDisplayFormat tableDisplayFormat

	// verbosity is the log verbosity.
	verbosity int

	// noColor disables colors in the log output.
	noColor bool

	// logRedactable keeps redaction markers in the log output.
	logRedactable bool
}

// cliCtx captures the command-line parameters common to all commands.
// See below for defaults.
var cliCtx = cliContext{}

// isInteractiveOutput indicates whether stdout refers to a terminal. It is a
// variable to allow overrides in tests.
var isInteractiveOutput = isatty.IsTerminal(os.Stdout.Fd())

func setCliContextDefaults() {
	cliCtx.keyFormat = keyFormatHex
	cliCtx.tableDisplayFormat = tableDisplayTSV
	if isInteractiveOutput {
		cliCtx.tableDisplayFormat = tableDisplayTable
	}
	cliCtx.verbosity = 0
	cliCtx.noColor = false
	cliCtx.logRedactable = false
}

// genCtx captures the command-line parameters of the key generation
// commands.
var genCtx struct {
	strategy   fracindex.Strategy
	count      int64
	start      string
	descending bool
	fromFormat keyFormat
	toFormat   keyFormat
}

func setGenContextDefaults() {
	genCtx.strategy = fracindex.Balanced
	genCtx.count = 10
	genCtx.start = ""
	genCtx.descending = false
	genCtx.fromFormat = keyFormatHex
	genCtx.toFormat = keyFormatHex
}

// rankCtx captures the command-line parameters of the rank command.
var rankCtx struct {
	labels     string
	moves      []string
	adds       []string
	descending bool
}

func setRankContextDefaults() {
	rankCtx.labels = ""
	rankCtx.moves = nil
	rankCtx.adds = nil
	rankCtx.descending = false
}

// growthCtx captures the command-line parameters of the growth command.
var growthCtx struct {
	scenarios []string
	steps     int64
	seed      int64
}

func setGrowthContextDefaults() {
	growthCtx.scenarios = nil
	growthCtx.steps = 0
	growthCtx.seed = 0
}
