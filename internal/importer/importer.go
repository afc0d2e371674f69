// Package importer turns spreadsheet rows into vocabulary items.
//
// Supported layouts: a header row naming the columns (English, Korean or
// Chinese conventions), or bare positional columns (headword, meaning,
// example). A row carrying only an example continues the previous item.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hyerin/vocadrill/internal/vocab"
)

// Result accumulates the outcome of one import batch. Malformed rows are
// collected, not fatal; the batch continues past them.
type Result struct {
	Items   []vocab.Item
	Skipped int      // blank rows
	Errors  []string // unrecognizable rows, with row numbers
}

// Imported returns the number of items produced.
func (r *Result) Imported() int { return len(r.Items) }

// Recognized column-name conventions, matched case-insensitively against a
// header row. Falls back to positional interpretation when no convention
// matches.
var (
	headwordNames = []string{"headword", "korean", "word", "한국어", "단어", "韩语"}
	meaningNames  = []string{"meaning", "translation", "chinese", "english", "뜻", "中文"}
	exampleNames  = []string{"example", "sentence", "예문", "例句"}
)

// File imports the spreadsheet at path, dispatching on the extension.
func File(path string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fromCSV(path)
	case ".xlsx", ".xlsm":
		return fromExcel(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

func fromExcel(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return ParseRows(rows), nil
}

func fromCSV(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return ParseRows(rows), nil
}

// columns maps logical fields to column indexes.
type columns struct {
	headword, meaning, example int
}

var positional = columns{headword: 0, meaning: 1, example: 2}

// ParseRows interprets raw spreadsheet rows. The first row is consulted as a
// possible header; every following row is either an item row, a continuation
// row (example only, appended to the previous item), a blank row (skipped),
// or malformed (collected into the result's errors).
func ParseRows(rows [][]string) *Result {
	res := &Result{}
	cols := positional
	start := 0
	if len(rows) > 0 {
		if c, ok := detectHeader(rows[0]); ok {
			cols = c
			start = 1
		}
	}

	var last *vocab.Item
	for i := start; i < len(rows); i++ {
		headword := strings.TrimSpace(cell(rows[i], cols.headword))
		meaning := strings.TrimSpace(cell(rows[i], cols.meaning))
		example := strings.TrimSpace(cell(rows[i], cols.example))

		switch {
		case headword != "" && meaning != "":
			res.Items = append(res.Items, vocab.Item{
				Headword: headword,
				Meaning:  meaning,
				Example:  example,
				Tier:     vocab.TierUnclassified,
				Origin:   vocab.OriginUploaded,
			})
			last = &res.Items[len(res.Items)-1]

		case headword == "" && meaning == "" && example != "" && last != nil:
			// Continuation row: extra example for the previous item.
			if last.Example != "" {
				last.Example += "\n"
			}
			last.Example += example

		case headword == "" && meaning == "" && example == "" && rowBlank(rows[i]):
			res.Skipped++

		default:
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: cannot interpret %v", i+1, rows[i]))
		}
	}
	return res
}

// detectHeader reports whether the row names at least the headword and
// meaning columns under a recognized convention.
func detectHeader(row []string) (columns, bool) {
	cols := columns{headword: -1, meaning: -1, example: -1}
	for i, raw := range row {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case cols.headword < 0 && matchesAny(name, headwordNames):
			cols.headword = i
		case cols.meaning < 0 && matchesAny(name, meaningNames):
			cols.meaning = i
		case cols.example < 0 && matchesAny(name, exampleNames):
			cols.example = i
		}
	}
	if cols.headword < 0 || cols.meaning < 0 {
		return positional, false
	}
	if cols.example < 0 {
		cols.example = len(row) // out of range: no example column
	}
	return cols, true
}

func matchesAny(name string, names []string) bool {
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func rowBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
