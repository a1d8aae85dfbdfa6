package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSVRows(t *testing.T) {
	input := strings.Join([]string{
		"Name*,Mail ID*,PAN",
		"# guidance comment that must be skipped",
		"Acme Traders,acme@example.com,ABCPD1234E",
		"Short Row",
	}, "\n")

	headers, rows, err := ReadCSVRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSVRows: %v", err)
	}

	if len(headers) != 3 || headers[0] != "Name*" {
		t.Errorf("headers = %v", headers)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (comment skipped)", len(rows))
	}
	if rows[0][2] != "ABCPD1234E" {
		t.Errorf("row 0 = %v", rows[0])
	}
	// Variable-width rows are tolerated.
	if len(rows[1]) != 1 {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestReadCSVRowsEmpty(t *testing.T) {
	if _, _, err := ReadCSVRows(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty stream")
	}
}

func TestWriteCSVFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")

	headers := []string{"Name", "Error Reason"}
	dataRows := [][]string{
		{"Acme Traders", "Mail ID: missing"},
		{"Value, with comma", "line\nbreak"},
	}

	if err := WriteCSVFile(path, headers, dataRows, "fix and re-upload"); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	gotHeaders, gotRows, err := ReadCSVRows(f)
	if err != nil {
		t.Fatalf("ReadCSVRows: %v", err)
	}

	if gotHeaders[1] != "Error Reason" {
		t.Errorf("headers = %v", gotHeaders)
	}
	if len(gotRows) != 2 {
		t.Fatalf("rows = %d, want 2 (trailing comment skipped)", len(gotRows))
	}
	if gotRows[1][0] != "Value, with comma" {
		t.Errorf("quoted comma not preserved: %q", gotRows[1][0])
	}
	if gotRows[1][1] != "line\nbreak" {
		t.Errorf("quoted newline not preserved: %q", gotRows[1][1])
	}
}

func TestGenerateDownloadLink(t *testing.T) {
	if got := GenerateDownloadLink("./public/files/report.csv"); got != "/public/files/report.csv" {
		t.Errorf("GenerateDownloadLink = %q", got)
	}
}
