package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	headers := append([]string{"Timestamp", "Date"}, seriesNames(records)...)
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{strconv.FormatInt(r.Timestamp, 10), r.Date}
		for _, v := range r.Values {
			row = append(row, formatValue(v.Value))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
