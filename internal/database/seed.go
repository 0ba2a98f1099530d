package database

import (
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/logger"
	"godiya-emr-backend/internal/models"
)

// Seed fills reference data on first start. Every block checks for
// existing rows first so restarting the server never duplicates data.
func Seed() {
	seedDepartments()
	seedStaff()
	seedDrugs()
}

func seedDepartments() {
	var count int64
	DB.Model(&models.Department{}).Count(&count)
	if count > 0 {
		return
	}

	departments := []models.Department{
		{Name: "General Medicine", Description: "Outpatient consultations and general care"},
		{Name: "Paediatrics", Description: "Care for infants, children and adolescents"},
		{Name: "Obstetrics & Gynaecology", Description: "Maternal and reproductive health"},
		{Name: "Surgery", Description: "General and specialist surgical services"},
		{Name: "Laboratory", Description: "Diagnostic testing services"},
		{Name: "Pharmacy", Description: "Drug dispensary and stock management"},
		{Name: "Radiology", Description: "Imaging and scans"},
	}

	if err := DB.Create(&departments).Error; err != nil {
		logger.Log.Warnf("Department seed failed: %v", err)
		return
	}
	logger.WithField("count", len(departments)).Info("Seeded departments")
}

func seedStaff() {
	var count int64
	DB.Model(&models.Staff{}).Count(&count)
	if count > 0 {
		return
	}

	staff := make([]models.Staff, 0, len(auth.Credentials()))
	for _, cred := range auth.Credentials() {
		staff = append(staff, models.Staff{
			Name:  cred.Name,
			Email: cred.Email,
			Role:  cred.Role,
		})
	}

	if err := DB.Create(&staff).Error; err != nil {
		logger.Log.Warnf("Staff seed failed: %v", err)
		return
	}
	logger.WithField("count", len(staff)).Info("Seeded staff directory")
}

func seedDrugs() {
	var count int64
	DB.Model(&models.Drug{}).Count(&count)
	if count > 0 {
		return
	}

	drugs := []models.Drug{
		{Name: "Paracetamol 500mg", Category: "Analgesic", Unit: "tablet", UnitPrice: 50, StockQuantity: 500, ReorderLevel: 100},
		{Name: "Amoxicillin 250mg", Category: "Antibiotic", Unit: "capsule", UnitPrice: 120, StockQuantity: 300, ReorderLevel: 50},
		{Name: "Artemether/Lumefantrine", Category: "Antimalarial", Unit: "pack", UnitPrice: 950, StockQuantity: 120, ReorderLevel: 30},
		{Name: "Oral Rehydration Salts", Category: "Electrolyte", Unit: "sachet", UnitPrice: 80, StockQuantity: 200, ReorderLevel: 40},
		{Name: "Ibuprofen 400mg", Category: "Analgesic", Unit: "tablet", UnitPrice: 70, StockQuantity: 250, ReorderLevel: 50},
	}

	if err := DB.Create(&drugs).Error; err != nil {
		logger.Log.Warnf("Drug seed failed: %v", err)
		return
	}
	logger.WithField("count", len(drugs)).Info("Seeded drug catalogue")
}
