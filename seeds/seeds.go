package seeds

import (
	"fmt"

	"ca-office-backend/config"
	"ca-office-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGSTRates creates the standard GST slabs. Existing rates (by name) are
// left untouched so locally edited slabs survive a restart.
func SeedGSTRates(db *gorm.DB) error {
	config.Logger.Info("Starting GST rate seeding...")

	rates := []models.TaxRate{
		{ID: uuid.New(), Name: "GST 0%", Rate: decimal.Zero, Active: true, CreatedBy: "system"},
		{ID: uuid.New(), Name: "GST 5%", Rate: decimal.NewFromFloat(0.05), Active: true, CreatedBy: "system"},
		{ID: uuid.New(), Name: "GST 12%", Rate: decimal.NewFromFloat(0.12), Active: true, CreatedBy: "system"},
		{ID: uuid.New(), Name: "GST 18%", Rate: decimal.NewFromFloat(0.18), Active: true, CreatedBy: "system"},
		{ID: uuid.New(), Name: "GST 28%", Rate: decimal.NewFromFloat(0.28), Active: true, CreatedBy: "system"},
	}

	createdCount := 0
	for _, rate := range rates {
		var count int64
		if err := db.Model(&models.TaxRate{}).Where("name = ?", rate.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check tax rate %q: %w", rate.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&rate).Error; err != nil {
			return fmt.Errorf("failed to create tax rate %q: %w", rate.Name, err)
		}
		createdCount++
	}

	config.Logger.Info("GST rate seeding completed", zap.Int("created", createdCount))
	return nil
}

// SeedDefaultFirm creates the billing entity invoices are raised under when
// the practice has not configured its own. Skipped once any firm exists.
func SeedDefaultFirm(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Firm{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count firms: %w", err)
	}
	if count > 0 {
		return nil
	}

	firm := models.Firm{
		ID:        uuid.New(),
		Name:      "Default Firm",
		State:     "Maharashtra",
		Active:    true,
		CreatedBy: "system",
	}
	if err := db.Create(&firm).Error; err != nil {
		return fmt.Errorf("failed to create default firm: %w", err)
	}

	config.Logger.Info("Default firm seeded", zap.String("name", firm.Name))
	return nil
}

// SeedAdminEmployee bootstraps the first login. The password comes from
// BOOTSTRAP_ADMIN_PASSWORD; without it the admin is not created, which keeps
// a default credential out of production. Skipped once the email exists.
func SeedAdminEmployee(db *gorm.DB) error {
	email := config.GetEnv("BOOTSTRAP_ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := config.GetEnv("BOOTSTRAP_ADMIN_PASSWORD")
	if password == "" {
		config.Logger.Warn("BOOTSTRAP_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var count int64
	if err := db.Model(&models.Employee{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin employee: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.Employee{
		ID:        uuid.New(),
		Name:      "Administrator",
		Email:     email,
		Role:      models.AdminRole,
		Password:  string(hashed),
		Active:    true,
		CreatedBy: "system",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin employee: %w", err)
	}

	config.Logger.Info("Admin employee seeded", zap.String("email", email))
	return nil
}

// SeedAll runs all seeding functions in dependency order.
func SeedAll(db *gorm.DB) error {
	if err := SeedGSTRates(db); err != nil {
		return fmt.Errorf("failed to seed GST rates: %w", err)
	}
	if err := SeedDefaultFirm(db); err != nil {
		return fmt.Errorf("failed to seed default firm: %w", err)
	}
	if err := SeedAdminEmployee(db); err != nil {
		return fmt.Errorf("failed to seed admin employee: %w", err)
	}
	config.Logger.Info("Database seeding completed")
	return nil
}
