package controllers

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ca-office-backend/config"
	"ca-office-backend/db/models"
	"ca-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type employeeRowError struct {
	Row    int    `json:"row"`
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// BulkUploadEmployees imports employees from a CSV file. Identity is the
// email address: an unknown email creates, a known one updates the stored
// record (password untouched). Repeats within the same file are skipped.
func (ec *EmployeeController) BulkUploadEmployees(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to get file"})
	}

	tempFilePath := fmt.Sprintf("./tmp/%s", file.Filename)
	if err := c.SaveFile(file, tempFilePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save file"})
	}
	defer os.Remove(tempFilePath)

	createdBy := c.FormValue("created_by")
	if createdBy == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing 'created_by' field in FormData"})
	}

	f, err := os.Open(tempFilePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to open file"})
	}
	defer f.Close()

	headers, rows, err := utils.ReadCSVRows(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	columnIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		clean := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(h), utils.MandatoryMarker))
		columnIndex[clean] = i
	}

	field := func(row []string, name string) string {
		idx, ok := columnIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	existing, err := ec.EmployeeRepo.GetAllEmployees()
	if err != nil {
		config.Logger.Error("Failed to load employees for import", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load existing employees"})
	}
	existingByEmail := make(map[string]models.Employee, len(existing))
	for _, e := range existing {
		existingByEmail[strings.ToLower(e.Email)] = e
	}

	var toCreate []models.Employee
	var toUpdate []models.Employee
	var rowErrors []employeeRowError
	seenInFile := make(map[string]struct{})

	for i, row := range rows {
		rowNumber := i + 2 // header is row 1

		name := field(row, "Name")
		email := strings.ToLower(field(row, "Email"))
		role := strings.ToLower(field(row, "Role"))

		if name == "" || email == "" || role == "" {
			rowErrors = append(rowErrors, employeeRowError{
				Row:    rowNumber,
				Email:  email,
				Reason: "Name, Email and Role are required",
			})
			continue
		}

		switch models.EmployeeRole(role) {
		case models.PartnerRole, models.ManagerRole, models.ArticleRole, models.StaffRole, models.AdminRole:
		default:
			rowErrors = append(rowErrors, employeeRowError{
				Row:    rowNumber,
				Email:  email,
				Reason: fmt.Sprintf("Unknown role %q", role),
			})
			continue
		}

		if _, ok := seenInFile[email]; ok {
			rowErrors = append(rowErrors, employeeRowError{
				Row:    rowNumber,
				Email:  email,
				Reason: "Duplicate email in the uploaded file",
			})
			continue
		}
		seenInFile[email] = struct{}{}

		employee := models.Employee{
			ID:              uuid.New(),
			Name:            name,
			Email:           email,
			Phone:           field(row, "Phone"),
			Role:            models.EmployeeRole(role),
			Active:          true,
			AnnualLeaveDays: 24,
			CreatedBy:       createdBy,
		}

		if rate := field(row, "Hourly Rate"); rate != "" {
			parsed, err := strconv.ParseFloat(rate, 64)
			if err != nil {
				rowErrors = append(rowErrors, employeeRowError{
					Row:    rowNumber,
					Email:  email,
					Reason: "Invalid hourly rate",
				})
				continue
			}
			employee.HourlyRate = &parsed
		}

		if stored, ok := existingByEmail[email]; ok {
			employee.ID = stored.ID
			employee.AnnualLeaveDays = stored.AnnualLeaveDays
			employee.Active = stored.Active
			toUpdate = append(toUpdate, employee)
			continue
		}
		toCreate = append(toCreate, employee)
	}

	if len(toCreate) > 0 || len(toUpdate) > 0 {
		tx := ec.DB.Begin()
		if tx.Error != nil {
			config.Logger.Error("Failed to begin transaction for employee import", zap.Error(tx.Error))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to begin database transaction"})
		}

		if err := ec.EmployeeRepo.BulkCreateEmployees(tx, toCreate); err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to BulkCreateEmployees error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to insert employees: %v. Database changes rolled back.", err.Error()),
			})
		}

		if err := ec.EmployeeRepo.BulkUpdateEmployees(tx, toUpdate); err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to BulkUpdateEmployees error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to update employees: %v. Database changes rolled back.", err.Error()),
			})
		}

		if err := tx.Commit().Error; err != nil {
			tx.Rollback()
			config.Logger.Error("Critical: Transaction rolled back due to commit error for employees", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": fmt.Sprintf("Failed to commit employee insertions: %v. Database changes rolled back.", err.Error()),
			})
		}

		if ec.BleveRepo != nil {
			if err := ec.BleveRepo.IndexExistingEmployees(append(toCreate, toUpdate...)); err != nil {
				config.Logger.Error("Warning: Failed to index imported employees in Bleve", zap.Error(err))
			}
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "Bulk upload completed",
		"created_count":    len(toCreate),
		"updated_count":    len(toUpdate),
		"successful_count": len(toCreate) + len(toUpdate),
		"error_count":      len(rowErrors),
		"errors":           rowErrors,
	})
}
