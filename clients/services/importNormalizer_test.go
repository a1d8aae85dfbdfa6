package services

import (
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name*", "Name"},
		{"Name", "Name"},
		{"  Mail ID*  ", "Mail ID"},
		{"Mobile Number *", "Mobile Number"},
		{"", ""},
		{"*", ""},
	}

	for _, tt := range tests {
		if got := NormalizeHeader(tt.in); got != tt.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRows(t *testing.T) {
	headers := []string{"Name*", " Mail ID* ", "PAN"}
	rows := [][]string{
		{"  Acme Traders ", "acme@example.com", "ABCPD1234E"},
		{"Short Row"},
		{"Extra", "extra@example.com", "XYZPD9876A", "overflow value"},
	}

	got := NormalizeRows(headers, rows)
	if len(got) != 3 {
		t.Fatalf("NormalizeRows returned %d rows, want 3", len(got))
	}

	if got[0]["Name"] != "Acme Traders" {
		t.Errorf("row 0 Name = %q, want trimmed %q", got[0]["Name"], "Acme Traders")
	}
	if got[0]["Mail ID"] != "acme@example.com" {
		t.Errorf("row 0 Mail ID = %q", got[0]["Mail ID"])
	}

	// A short row yields empty strings for the missing trailing columns.
	if got[1]["Name"] != "Short Row" {
		t.Errorf("row 1 Name = %q", got[1]["Name"])
	}
	if v, ok := got[1]["PAN"]; !ok || v != "" {
		t.Errorf("row 1 PAN = %q (present=%v), want empty string present", v, ok)
	}

	// Overflow cells beyond the header width are dropped.
	if len(got[2]) != 3 {
		t.Errorf("row 2 has %d fields, want 3", len(got[2]))
	}
}
