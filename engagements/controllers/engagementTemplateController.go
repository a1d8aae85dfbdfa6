package controllers

import (
	"ca-office-backend/config"
	"ca-office-backend/engagements/services"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func writeTemplate(c *fiber.Ctx, fileName string, columns []string, mandatoryFields []string, comment string) error {
	mandatory := make(map[string]bool, len(mandatoryFields))
	for _, field := range mandatoryFields {
		mandatory[field] = true
	}

	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		if mandatory[col] {
			headers = append(headers, col+utils.MandatoryMarker)
		} else {
			headers = append(headers, col)
		}
	}

	filePath := "./public/files/" + fileName
	if err := utils.WriteCSVFile(filePath, headers, nil, comment); err != nil {
		config.Logger.Error("Failed to write import template", zap.String("file", fileName), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate template",
		})
	}

	return c.Download(filePath, fileName)
}

// DownloadEngagementTemplateController serves the engagement import template.
func (ec *EngagementController) DownloadEngagementTemplateController(c *fiber.Ctx) error {
	return writeTemplate(c,
		"engagement_import_template.csv",
		services.EngagementTemplateColumns,
		[]string{services.FieldClientName, services.FieldType},
		"Columns marked with "+utils.MandatoryMarker+" are mandatory. Due Date uses YYYY-MM-DD.")
}

// DownloadRecurringTemplateController serves the recurring-engagement
// import template.
func (ec *EngagementController) DownloadRecurringTemplateController(c *fiber.Ctx) error {
	return writeTemplate(c,
		"recurring_engagement_import_template.csv",
		services.RecurringTemplateColumns,
		[]string{services.FieldClientName, services.FieldType, services.FieldFrequency},
		"Columns marked with "+utils.MandatoryMarker+" are mandatory. Frequency is MONTHLY, QUARTERLY or YEARLY; Due Day defaults to 20.")
}
