package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// invoiceRegisterRow is the flat Excel shape of one invoice. Field names
// double as the sheet headers.
type invoiceRegisterRow struct {
	InvoiceNumber string
	Status        string
	PlaceOfSupply string
	IssueDate     string
	SubTotal      string
	CGST          string
	SGST          string
	IGST          string
	Total         string
}

// ExportInvoiceRegisterController writes the full invoice register to an
// Excel workbook under ./public/files and returns its download link.
func (ic *InvoiceController) ExportInvoiceRegisterController(c *fiber.Ctx) error {
	invoices, err := ic.InvoiceRepo.GetAllInvoices()
	if err != nil {
		config.Logger.Error("Failed to fetch invoices for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to export invoice register",
		})
	}

	rows := make([]invoiceRegisterRow, 0, len(invoices))
	for _, invoice := range invoices {
		row := invoiceRegisterRow{
			InvoiceNumber: invoice.InvoiceNumber,
			Status:        string(invoice.Status),
			PlaceOfSupply: invoice.PlaceOfSupply,
			SubTotal:      invoice.SubTotal.StringFixed(2),
			CGST:          invoice.CGST.StringFixed(2),
			SGST:          invoice.SGST.StringFixed(2),
			IGST:          invoice.IGST.StringFixed(2),
			Total:         invoice.Total.StringFixed(2),
		}
		if invoice.IssueDate != nil {
			row.IssueDate = invoice.IssueDate.Format("2006-01-02")
		}
		rows = append(rows, row)
	}

	headers := []string{
		"InvoiceNumber", "Status", "PlaceOfSupply", "IssueDate",
		"SubTotal", "CGST", "SGST", "IGST", "Total",
	}

	filePath, err := utils.GenerateExcel(rows, "invoice_register", headers)
	if err != nil {
		config.Logger.Error("Failed to generate invoice register workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to export invoice register",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Invoice register exported successfully",
		"file_path": utils.GenerateDownloadLink(filePath),
		"count":     len(rows),
	})
}
