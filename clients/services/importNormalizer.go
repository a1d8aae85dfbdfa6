package services

import (
	"strings"

	"ca-office-backend/utils"
)

// NormalizeHeader strips the trailing mandatory-marker from a template
// header ("Name*" -> "Name") and trims surrounding whitespace.
func NormalizeHeader(header string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(header), utils.MandatoryMarker))
}

// NormalizeRows turns raw parsed-CSV rows into field->value maps keyed by
// clean column names. Pure and total: short rows simply produce absent
// fields, unknown columns are carried through and ignored downstream.
func NormalizeRows(headers []string, rows [][]string) []map[string]string {
	cleanHeaders := make([]string, len(headers))
	for i, h := range headers {
		cleanHeaders[i] = NormalizeHeader(h)
	}

	normalized := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]string, len(cleanHeaders))
		for i, header := range cleanHeaders {
			if header == "" {
				continue
			}
			if i < len(row) {
				fields[header] = strings.TrimSpace(row[i])
			} else {
				fields[header] = ""
			}
		}
		normalized = append(normalized, fields)
	}
	return normalized
}
