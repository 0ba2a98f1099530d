package billing

import (
	"net/http/httptest"
	"strings"
	"testing"

	"godiya-emr-backend/internal/database"

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
	app.Post("/api/billing/invoices/:id/payments", RecordPaymentHandler())
	return app, mock
}

func TestRecordPaymentRechecksBalanceInTransaction(t *testing.T) {
	app, mock := setupTestApp(t)

	invoiceCols := []string{"id", "invoice_number", "patient_id", "total", "amount_paid", "status"}

	// First read shows 500 outstanding, enough for the request.
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(invoiceCols).
			AddRow(3, "INV-000003", 7, 1000.0, 500.0, "partial"))
	mock.ExpectQuery(`SELECT \* FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(7, "Grace", "Okafor"))

	// By the time the transaction re-reads the row under lock, a
	// concurrent payment has left only 100 outstanding: the 500 request
	// must be rejected and nothing written.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1(.*)FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(invoiceCols).
			AddRow(3, "INV-000003", 7, 1000.0, 900.0, "partial"))
	mock.ExpectRollback()

	req := httptest.NewRequest("POST", "/api/billing/invoices/3/payments", strings.NewReader(`{"amount":500,"method":"cash"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	app, mock := setupTestApp(t)

	req := httptest.NewRequest("POST", "/api/billing/invoices/3/payments", strings.NewReader(`{"amount":500,"method":"cheque"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
