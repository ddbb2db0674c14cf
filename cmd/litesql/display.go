package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"litesql/core"
	"litesql/engine"
)

// displayResult renders a successful Result as a data table (when there
// is one) followed by a compact stats line.
func displayResult(result engine.Result) {
	switch result.Kind {
	case engine.SelectResult:
		displaySelectRows(result)
		fmt.Printf("%d rows (%s)\n", result.RowCount, formatDuration(result.ExecutionTime))
	case engine.InsertResult:
		idPart := ""
		if result.LastInsertID != nil {
			idPart = fmt.Sprintf(", lastInsertId=%d", *result.LastInsertID)
		}
		fmt.Printf("%d row(s) inserted%s (%s)\n", result.RowsAffected, idPart, formatDuration(result.ExecutionTime))
	case engine.UpdateResult:
		fmt.Printf("%d row(s) updated (%s)\n", result.RowsAffected, formatDuration(result.ExecutionTime))
	case engine.DeleteResult:
		fmt.Printf("%d row(s) deleted (%s)\n", result.RowsAffected, formatDuration(result.ExecutionTime))
	case engine.CreateTableResult:
		fmt.Printf("table %q created (%s)\n", result.Table, formatDuration(result.ExecutionTime))
	case engine.DropTableResult:
		fmt.Printf("table %q dropped (%s)\n", result.Table, formatDuration(result.ExecutionTime))
	case engine.ShowTablesResult:
		for _, name := range result.TableNames {
			fmt.Println(name)
		}
	case engine.DescribeResult:
		displaySchema(result)
	case engine.OKResult:
		fmt.Printf("OK (%s)\n", formatDuration(result.ExecutionTime))
	}
}

// displaySelectRows prints result's rows as a fixed-width table. Numeric
// and date columns are right-aligned, matching how a caller would read
// them in a spreadsheet; everything else is left-aligned. Alignment is
// decided per column from the first row that has a non-NULL value in
// it, since every row in a result shares a projection.
func displaySelectRows(result engine.Result) {
	if len(result.Rows) == 0 {
		return
	}
	columns := make([]string, 0)
	seen := map[string]bool{}
	for _, row := range result.Rows {
		for col := range row {
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
		}
	}
	sort.Strings(columns)

	rightAlign := make([]bool, len(columns))
	for j, col := range columns {
		for _, row := range result.Rows {
			if v, ok := row[col]; ok && !v.IsNull() {
				rightAlign[j] = v.Type() == core.Integer || v.Type() == core.Real || v.Type() == core.Date
				break
			}
		}
	}

	cells := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		line := make([]string, len(columns))
		for j, col := range columns {
			line[j] = row[col].String()
		}
		cells[i] = line
	}

	renderTable(os.Stdout, columns, cells, rightAlign)
}

func displaySchema(result engine.Result) {
	headers := []string{"column", "type", "primary_key", "unique", "not_null", "auto_increment"}
	rows := make([][]string, len(result.Schema.Columns))
	for i, col := range result.Schema.Columns {
		rows[i] = []string{
			col.Name,
			col.Type.String(),
			boolCell(col.PrimaryKey),
			boolCell(col.Unique),
			boolCell(col.NotNull),
			boolCell(col.AutoIncrement),
		}
	}
	renderTable(os.Stdout, headers, rows, nil)
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// renderTable writes headers and rows as a fixed-width ASCII table.
// rightAlign, if non-nil, flags which columns pad on the left instead
// of the right; a nil or short rightAlign behaves as all-left-aligned.
func renderTable(w io.Writer, headers []string, rows [][]string, rightAlign []bool) {
	if len(headers) == 0 && len(rows) == 0 {
		return
	}

	widths := columnWidths(headers, rows)
	separator := tableSeparator(widths)

	fmt.Fprintln(w, separator)
	if len(headers) > 0 {
		fmt.Fprintln(w, formatTableRow(headers, widths, nil))
		fmt.Fprintln(w, separator)
	}
	for _, row := range rows {
		fmt.Fprintln(w, formatTableRow(row, widths, rightAlign))
	}
	fmt.Fprintln(w, separator)
}

func columnWidths(headers []string, rows [][]string) []int {
	numCols := len(headers)
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	widths := make([]int, numCols)
	for i, h := range headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

func tableSeparator(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+"
}

func formatTableRow(row []string, widths []int, rightAlign []bool) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", w-len(cell))
		if i < len(rightAlign) && rightAlign[i] {
			parts[i] = " " + pad + cell + " "
		} else {
			parts[i] = " " + cell + pad + " "
		}
	}
	return "|" + strings.Join(parts, "|") + "|"
}

// formatDuration formats a millisecond duration in human-readable form.
func formatDuration(ms float64) string {
	if ms < 1 {
		return "<1ms"
	}
	if ms < 1000 {
		return fmt.Sprintf("%.1fms", ms)
	}
	return fmt.Sprintf("%.2fs", ms/1000)
}
