package utils

import (
	"fmt"
	"reflect"
	"time"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates an Excel file from the provided data. Headers must
// match exported struct field names; values are written in header order.
func GenerateExcel(data interface{}, taskName string, headers []string) (string, error) {
	dirPath := "./public/files"
	if err := EnsureDirectoryExists(dirPath + "/placeholder"); err != nil {
		return "", fmt.Errorf("failed to ensure directory exists: %v", err)
	}

	f := excelize.NewFile()

	sheetName := "Sheet1"
	if _, err := f.NewSheet(sheetName); err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	// Write headers dynamically
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error computing header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	dataSlice := reflect.ValueOf(data)
	if dataSlice.Kind() != reflect.Slice {
		return "", fmt.Errorf("expected data to be a slice")
	}

	for row := 0; row < dataSlice.Len(); row++ {
		item := dataSlice.Index(row).Interface()

		for col, header := range headers {
			field := reflect.ValueOf(item).FieldByName(header)
			if !field.IsValid() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("error computing data cell: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, fmt.Sprintf("%v", field.Interface())); err != nil {
				return "", fmt.Errorf("error setting cell value: %v", err)
			}
		}
	}

	filePath := fmt.Sprintf("%s/%s_%s.xlsx", dirPath, taskName, time.Now().Format("20060102150405"))
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving Excel file: %v", err)
	}

	return filePath, nil
}

// GenerateDownloadLink converts a stored file path into the public download
// path served by the static file handler.
func GenerateDownloadLink(filePath string) string {
	return filePath[1:] // strip the leading '.' of "./public/..."
}
