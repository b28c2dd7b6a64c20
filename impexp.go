package journal

import (
	"fmt"
	"io"
	"strings"
)

// this file contains functions to handle the export format.
// It should remain human readable, single file and easy to open in a spreadsheet.

// csvHeader is the fixed 13-column export header.
const csvHeader = "Date,Symbol,Side,Session,Bias,Entry,SL,TP,Result,ResultR,Setups,Mistake,Notes"

// ExportTradesCSV writes the trades to 'w' as comma-separated text.
//
// Setups are joined with "|". Notes are double-quoted with internal quotes
// doubled. Mistake is written bare: a comma inside a mistake string misaligns
// the columns. That limitation is part of the historical format and is kept
// for compatibility with files already produced by it.
func ExportTradesCSV(w io.Writer, trades []Trade) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		setups := make([]string, 0, len(t.Setups))
		for _, s := range t.Setups {
			setups = append(setups, s.String())
		}
		line := strings.Join([]string{
			t.Date.String(),
			t.Symbol,
			t.Side.String(),
			t.Session.String(),
			t.Bias.String(),
			t.Entry.String(),
			t.SL.String(),
			t.TP.String(),
			t.Result.String(),
			t.ResultR.String(),
			strings.Join(setups, "|"),
			t.Mistake,
			quoteCSV(t.Notes),
		}, ",")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// quoteCSV applies the minimal escaping of the export format: the field is
// wrapped in double quotes and internal quotes are doubled.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
