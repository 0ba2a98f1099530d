package patients

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	database.DB = gdb

	app := fiber.New()
	app.Put("/api/patients/:id", UpdatePatientHandler())
	return app, mock
}

func TestUpdatePatientUnknownIDIsNotFound(t *testing.T) {
	app, mock := setupTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("PUT", "/api/patients/99", strings.NewReader(`{"first_name":"Grace"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	// Only the lookup may have run: updating a missing record must not
	// create or touch any row.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePatientKeepsUnchangedFields(t *testing.T) {
	app, mock := setupTestApp(t)

	cols := []string{"id", "patient_number", "first_name", "last_name", "gender", "date_of_birth", "phone", "address", "blood_group", "category"}
	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "PT-000007", "Grace", "Okafor", "female", nil, "08030000001", "12 Airport Road, Kano", "O+", "opd"))

	// The phone change triggers the duplicate check before saving.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectExec(`UPDATE "patients" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("PUT", "/api/patients/7", strings.NewReader(`{"phone":"08030000002"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Patient
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "08030000002", got.Phone)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "Okafor", got.LastName)
	assert.Equal(t, "PT-000007", got.PatientNumber)
	assert.Equal(t, "12 Airport Road, Kano", got.Address)
	assert.Equal(t, "O+", got.BloodGroup)
	assert.Equal(t, models.PatientOPD, got.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePatientDuplicatePhoneConflict(t *testing.T) {
	app, mock := setupTestApp(t)

	cols := []string{"id", "patient_number", "first_name", "last_name", "phone", "category"}
	mock.ExpectQuery(`SELECT \* FROM "patients" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, "PT-000007", "Grace", "Okafor", "08030000001", "opd"))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest("PUT", "/api/patients/7", strings.NewReader(`{"phone":"08030000009"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
