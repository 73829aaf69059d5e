// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

// Attrs and flags for the fracindex command-line tool.
var (
	KeyFormat = FlagInfo{
		Name:      "format",
		Shorthand: "f",
		EnvVar:    "FRACINDEX_FORMAT",
		Description: `
Text encoding of the keys given and printed by the command. One of
hex, base64, base64url, base64raw, base64urlraw or sortable.`,
	}

	FromFormat = FlagInfo{
		Name:        "from",
		Description: `Text encoding of the input key. Same values as --format.`,
	}

	ToFormat = FlagInfo{
		Name:        "to",
		Description: `Text encoding of the output key. Same values as --format.`,
	}

	Strategy = FlagInfo{
		Name:   "strategy",
		EnvVar: "FRACINDEX_STRATEGY",
		Description: `
How to choose between candidate keys that fall inside the same major.
<PRE>

  balanced   keep the shorter of the minimal and spread candidates
  minimal    always take the shortest key
  spread     leave room on both sides unless the gap is tight

</PRE>`,
	}

	TableDisplayFormat = FlagInfo{
		Name:   "display-format",
		EnvVar: "FRACINDEX_DISPLAY_FORMAT",
		Description: `
Selects how to display tabular results. One of table, tsv, csv, records,
yaml or json. Defaults to table when the output is a terminal and tsv
otherwise.`,
	}

	Count = FlagInfo{
		Name:      "count",
		Shorthand: "n",
		Description: `
Number of keys to generate. Accepts SI suffixes such as 10k.`,
	}

	Start = FlagInfo{
		Name:        "start",
		Description: `Key to start the sequence from. Defaults to the default key.`,
	}

	Descending = FlagInfo{
		Name: "descending",
		Description: `
Generate or display keys in descending order.`,
	}

	Labels = FlagInfo{
		Name:        "labels",
		Description: `Comma-separated labels of the initial items of the ranked list.`,
	}

	Move = FlagInfo{
		Name: "move",
		Description: `
Move an item, given as from:drop where from is the display index of the
item and drop is the index at which it is dropped, as reported by a
drag-and-drop gesture. May be repeated; moves apply in order.`,
	}

	Add = FlagInfo{
		Name: "add",
		Description: `
Append an item with the given label at the end of the display order. May
be repeated; additions apply before moves.`,
	}

	Scenario = FlagInfo{
		Name: "scenario",
		Description: `
Growth scenario to run. May be repeated. Defaults to all scenarios.`,
	}

	Steps = FlagInfo{
		Name: "steps",
		Description: `
If positive, run every scenario for this many steps instead of its
reference size. Accepts SI suffixes such as 10k.`,
	}

	Seed = FlagInfo{
		Name:        "seed",
		EnvVar:      "FRACINDEX_SEED",
		Description: `Seed of the random growth scenarios.`,
	}

	Verbosity = FlagInfo{
		Name:      "verbosity",
		Shorthand: "v",
		EnvVar:    "FRACINDEX_VERBOSITY",
		Description: `
Log verbosity. Level 1 logs every generated key and ranked list move.`,
	}

	NoColor = FlagInfo{
		Name:        "no-color",
		EnvVar:      "FRACINDEX_NO_COLOR",
		Description: `Disable colors in the log output even if stderr is a terminal.`,
	}

	LogRedactable = FlagInfo{
		Name:   "log-redactable",
		EnvVar: "FRACINDEX_LOG_REDACTABLE",
		Description: `
Keep redaction markers around unsafe values in log messages.`,
	}
)
