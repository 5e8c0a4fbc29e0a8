package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV writes the dataset as CSV. The title is not rendered; CSV consumers
// want headers on the first line.
func CSV(w io.Writer, data Dataset) error {
	if err := data.validate(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(data.Headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
