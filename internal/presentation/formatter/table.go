package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-linechart/internal/util"
)

type TableFormatter struct {
	minWidth int
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{minWidth: 6}
}

func (f *TableFormatter) Format(w io.Writer, records []Record) error {
	headers := append([]string{"Date"}, seriesNames(records)...)
	rows := make([][]string, len(records))
	for i, r := range records {
		row := []string{r.Date}
		for _, v := range r.Values {
			row = append(row, formatValue(v.Value))
		}
		rows[i] = row
	}

	widths := f.calculateColumnWidths(headers, rows)

	var b strings.Builder
	f.printBorder(&b, widths, "top")
	f.printRow(&b, headers, widths)
	f.printBorder(&b, widths, "middle")
	for _, row := range rows {
		f.printRow(&b, row, widths)
	}
	f.printBorder(&b, widths, "bottom")

	_, err := io.WriteString(w, b.String())
	return err
}

// calculateColumnWidths sizes every column to its widest cell
func (f *TableFormatter) calculateColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(f.minWidth, util.GetDisplayWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], util.GetDisplayWidth(cell))
			}
		}
	}
	return widths
}

func (f *TableFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

// printRow left-aligns the date column and right-aligns the values
func (f *TableFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if i == 0 {
			fmt.Fprintf(b, " %s │", util.PadRight(value, width))
		} else {
			pad := max(0, width-util.GetDisplayWidth(value))
			fmt.Fprintf(b, " %s%s │", strings.Repeat(" ", pad), value)
		}
	}
	b.WriteByte('\n')
}
