package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MandatoryMarker is appended to mandatory-column headers in generated CSV
// templates ("Name*") and stripped again on re-import.
const MandatoryMarker = "*"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// ReadCSVRows reads a header-first CSV stream into a header slice plus data
// rows. Lines beginning with '#' are operator guidance appended to generated
// templates and are skipped. Rows with a variable number of fields are
// tolerated; downstream validation handles short rows.
func ReadCSVRows(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}

	return records[0], records[1:], nil
}

// WriteCSVFile writes a header row, data rows and an optional trailing
// '#'-prefixed guidance comment to the given path.
func WriteCSVFile(path string, headers []string, rows [][]string, comment string) error {
	if err := EnsureDirectoryExists(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if comment != "" {
		if _, err := fmt.Fprintf(f, "# %s\n", comment); err != nil {
			return fmt.Errorf("failed to append CSV comment: %w", err)
		}
	}

	return nil
}
