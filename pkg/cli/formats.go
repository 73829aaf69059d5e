// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/cli/clierror"
	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/spf13/pflag"
)

// keyFormat selects the text encoding of keys on the command line.
type keyFormat int

const (
	keyFormatHex keyFormat = iota
	keyFormatBase64
	keyFormatBase64URL
	keyFormatBase64Raw
	keyFormatBase64URLRaw
	keyFormatSortable
)

var keyFormatNames = []string{
	keyFormatHex:          "hex",
	keyFormatBase64:       "base64",
	keyFormatBase64URL:    "base64url",
	keyFormatBase64Raw:    "base64raw",
	keyFormatBase64URLRaw: "base64urlraw",
	keyFormatSortable:     "sortable",
}

var _ pflag.Value = (*keyFormat)(nil)

// Type implements the pflag.Value interface.
func (f *keyFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *keyFormat) String() string {
	if *f < 0 || int(*f) >= len(keyFormatNames) {
		return "unknown"
	}
	return keyFormatNames[*f]
}

// Set implements the pflag.Value interface.
func (f *keyFormat) Set(s string) error {
	for i, name := range keyFormatNames {
		if strings.EqualFold(s, name) {
			*f = keyFormat(i)
			return nil
		}
	}
	return errors.WithHintf(errors.Newf("invalid key format: %q", s),
		"valid formats: %s", strings.Join(keyFormatNames, ", "))
}

func (f keyFormat) base64Variant() fracindex.Base64Variant {
	switch f {
	case keyFormatBase64URL:
		return fracindex.Base64URL
	case keyFormatBase64Raw:
		return fracindex.Base64StdRaw
	case keyFormatBase64URLRaw:
		return fracindex.Base64URLRaw
	default:
		return fracindex.Base64Std
	}
}

func (f keyFormat) encode(k fracindex.Key) string {
	switch f {
	case keyFormatHex:
		return k.Hex()
	case keyFormatSortable:
		return k.SortableText()
	default:
		return k.Base64(f.base64Variant())
	}
}

// decode parses a key given on the command line. Failures carry the
// InvalidKey exit code.
func (f keyFormat) decode(s string) (fracindex.Key, error) {
	var k fracindex.Key
	var err error
	switch f {
	case keyFormatHex:
		k, err = fracindex.DecodeHex(s)
	case keyFormatSortable:
		k, err = fracindex.DecodeSortableText(s)
	default:
		k, err = fracindex.DecodeBase64(s, f.base64Variant())
	}
	if err != nil {
		err = errors.WithHintf(err, "keys are read as %s; use --%s to select another encoding",
			f.String(), "format")
		return fracindex.Key{}, clierror.NewError(err, exit.InvalidKey())
	}
	return k, nil
}

// strategyValue adapts fracindex.Strategy to pflag.Value.
type strategyValue struct {
	s *fracindex.Strategy
}

var _ pflag.Value = strategyValue{}

// Type implements the pflag.Value interface.
func (v strategyValue) Type() string { return "string" }

// String implements the pflag.Value interface.
func (v strategyValue) String() string {
	if v.s == nil {
		return fracindex.Balanced.String()
	}
	return v.s.String()
}

// Set implements the pflag.Value interface.
func (v strategyValue) Set(s string) error {
	st, err := fracindex.ParseStrategy(s)
	if err != nil {
		return err
	}
	*v.s = st
	return nil
}

// tableDisplayFormat identifies the format with which tabular results are
// displayed.
type tableDisplayFormat int

// The following constants identify the supported table formats.
const (
	tableDisplayTSV tableDisplayFormat = iota
	tableDisplayCSV
	tableDisplayTable
	tableDisplayRecords
	tableDisplayYAML
	tableDisplayJSON
	// tableDisplayLastFormat must remain the last one.
	tableDisplayLastFormat
)

var _ pflag.Value = (*tableDisplayFormat)(nil)

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string {
	switch *f {
	case tableDisplayTSV:
		return "tsv"
	case tableDisplayCSV:
		return "csv"
	case tableDisplayTable:
		return "table"
	case tableDisplayRecords:
		return "records"
	case tableDisplayYAML:
		return "yaml"
	case tableDisplayJSON:
		return "json"
	}
	return ""
}

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	switch s {
	case "tsv":
		*f = tableDisplayTSV
	case "csv":
		*f = tableDisplayCSV
	case "table":
		*f = tableDisplayTable
	case "records":
		*f = tableDisplayRecords
	case "yaml":
		*f = tableDisplayYAML
	case "json":
		*f = tableDisplayJSON
	default:
		return errors.Newf("invalid table display format: %s "+
			"(possible values: tsv, csv, table, records, yaml, json)", s)
	}
	return nil
}
