package database

import (
	"godiya-emr-backend/internal/config"
	"godiya-emr-backend/internal/logger"
	"godiya-emr-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Log.Fatalf("Could not connect to the database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Department{},
		&models.Staff{},
		&models.Patient{},
		&models.Appointment{},
		&models.Notification{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.LabOrder{},
		&models.Drug{},
		&models.StockEntry{},
		&models.Prescription{},
		&models.PrescriptionItem{},
		&models.VitalSign{},
		&models.Enquiry{},
		&models.AuditLog{},
	)
	if err != nil {
		logger.Log.Fatalf("AutoMigrate failed: %v", err)
	}

	Seed()

	logger.Log.Info("Database connected, migration complete")
}
