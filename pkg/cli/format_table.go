// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/util"
	"github.com/olekukonko/tablewriter"
	yaml "gopkg.in/yaml.v2"
)

// rowStrIter is an iterator interface for the printRows function. It is
// used so that rows can be streamed to the row formatters as they are
// generated.
type rowStrIter interface {
	Next() (row []string, err error)
	ToSlice() (allRows [][]string, err error)
}

// rowSliceIter is an implementation of the rowStrIter interface and it is used
// to wrap a slice of rows that have already been completely buffered into
// memory.
type rowSliceIter struct {
	allRows [][]string
	index   int
}

func (iter *rowSliceIter) Next() (row []string, err error) {
	if iter.index >= len(iter.allRows) {
		return nil, io.EOF
	}
	row = iter.allRows[iter.index]
	iter.index = iter.index + 1
	return row, nil
}

func (iter *rowSliceIter) ToSlice() ([][]string, error) {
	return iter.allRows[iter.index:], nil
}

func newRowSliceIter(allRows [][]string) *rowSliceIter {
	return &rowSliceIter{
		allRows: allRows,
		index:   0,
	}
}

// rowFuncIter produces rows on demand from next, which returns io.EOF once
// exhausted.
type rowFuncIter struct {
	next func() ([]string, error)
}

func (iter *rowFuncIter) Next() ([]string, error) {
	return iter.next()
}

func (iter *rowFuncIter) ToSlice() ([][]string, error) {
	var rows [][]string
	for {
		row, err := iter.next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func newRowFuncIter(next func() ([]string, error)) *rowFuncIter {
	return &rowFuncIter{next: next}
}

// printRows takes a list of column names and a list of row contents and
// writes them to w in the given display format.
func printRows(w io.Writer, cols []string, allRows rowStrIter, displayFormat tableDisplayFormat) error {
	switch displayFormat {
	case tableDisplayTable:
		// Initialize tablewriter and set column names as the header row.
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(cols)
		nRows := 0
		for {
			row, err := allRows.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			table.Append(row)
			nRows++
		}
		table.Render()
		fmt.Fprintf(w, "(%d row%s)\n", nRows, util.Pluralize(int64(nRows)))

	case tableDisplayTSV, tableDisplayCSV:
		csvWriter := csv.NewWriter(w)
		if displayFormat == tableDisplayTSV {
			csvWriter.Comma = '\t'
		}
		if err := csvWriter.Write(cols); err != nil {
			return err
		}
		for {
			row, err := allRows.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		csvWriter.Flush()
		return csvWriter.Error()

	case tableDisplayRecords:
		maxColWidth := 0
		for _, col := range cols {
			colLen := utf8.RuneCountInString(col)
			if colLen > maxColWidth {
				maxColWidth = colLen
			}
		}

		for i := 0; ; i++ {
			row, err := allRows.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "-[ RECORD %d ]\n", i+1)
			for j, r := range row {
				fmt.Fprintf(w, "%-*s | %s\n", maxColWidth, cols[j], r)
			}
		}

	case tableDisplayYAML:
		allRowsSlice, err := allRows.ToSlice()
		if err != nil {
			return err
		}
		records := make([]yaml.MapSlice, 0, len(allRowsSlice))
		for _, row := range allRowsSlice {
			rec := make(yaml.MapSlice, len(cols))
			for j := range cols {
				rec[j] = yaml.MapItem{Key: cols[j], Value: row[j]}
			}
			records = append(records, rec)
		}
		out, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrap(err, "rendering yaml")
		}
		_, err = w.Write(out)
		return err

	case tableDisplayJSON:
		// Objects are written by hand so that fields keep the column order.
		fmt.Fprint(w, "[")
		for i := 0; ; i++ {
			row, err := allRows.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprint(w, "\n  {")
			for j, r := range row {
				k, _ := json.Marshal(cols[j])
				v, _ := json.Marshal(r)
				if j > 0 {
					fmt.Fprint(w, ", ")
				}
				fmt.Fprintf(w, "%s: %s", k, v)
			}
			fmt.Fprint(w, "}")
		}
		fmt.Fprint(w, "\n]\n")

	default:
		return errors.AssertionFailedf("unknown display format %d", displayFormat)
	}
	return nil
}
