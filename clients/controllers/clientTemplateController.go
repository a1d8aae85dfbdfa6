package controllers

import (
	"fmt"
	"time"

	"ca-office-backend/clients/services"
	"ca-office-backend/config"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DownloadClientTemplateController serves the canonical import template.
// Mandatory columns carry the trailing '*'; the normalizer strips it on
// re-import, so a downloaded template uploads as-is.
func (cc *ClientController) DownloadClientTemplateController(c *fiber.Ctx) error {
	mandatory := make(map[string]bool, len(services.MandatoryClientFields))
	for _, field := range services.MandatoryClientFields {
		mandatory[field] = true
	}

	headers := make([]string, 0, len(services.ClientTemplateColumns))
	for _, col := range services.ClientTemplateColumns {
		if mandatory[col] {
			headers = append(headers, col+utils.MandatoryMarker)
		} else {
			headers = append(headers, col)
		}
	}

	filePath := "./public/files/client_import_template.csv"
	comment := "Columns marked with " + utils.MandatoryMarker + " are mandatory. Missing mandatory values other than Name are filled with placeholders on import."
	if err := utils.WriteCSVFile(filePath, headers, nil, comment); err != nil {
		config.Logger.Error("Failed to write client import template", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate template",
		})
	}

	return c.Download(filePath, "client_import_template.csv")
}

// ExportClientsController writes the full client list to CSV in the import
// template's column order, so an export can be edited and re-imported.
func (cc *ClientController) ExportClientsController(c *fiber.Ctx) error {
	clients, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		config.Logger.Error("Failed to fetch clients for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch clients",
		})
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	rows := make([][]string, 0, len(clients))
	for i := range clients {
		client := &clients[i]

		partnerName := ""
		if client.PartnerID != nil {
			if partner, err := cc.EmployeeRepo.GetEmployeeByID(*client.PartnerID); err == nil {
				partnerName = partner.Name
			}
		}
		firmName := ""
		if client.FirmID != nil {
			if firm, err := cc.FirmRepo.GetFirmByID(*client.FirmID); err == nil {
				firmName = firm.Name
			}
		}

		rows = append(rows, []string{
			client.Name,
			client.MailID,
			client.MobileNumber,
			client.Category,
			partnerName,
			firmName,
			client.PAN,
			deref(client.Address),
			deref(client.City),
			deref(client.State),
			deref(client.GSTIN),
			deref(client.ContactPerson),
		})
	}

	filePath := fmt.Sprintf("./public/files/clients_export_%s.csv", time.Now().Format("20060102150405"))
	if err := utils.WriteCSVFile(filePath, services.ClientTemplateColumns, rows, ""); err != nil {
		config.Logger.Error("Failed to write client export CSV", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate export",
		})
	}

	return c.Download(filePath, "clients_export.csv")
}
