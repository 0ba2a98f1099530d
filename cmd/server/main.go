package main

import (
	"strings"

	"godiya-emr-backend/internal/admin"
	"godiya-emr-backend/internal/appointments"
	"godiya-emr-backend/internal/audit"
	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/billing"
	"godiya-emr-backend/internal/config"
	"godiya-emr-backend/internal/dashboard"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/laboratory"
	"godiya-emr-backend/internal/logger"
	"godiya-emr-backend/internal/models"
	"godiya-emr-backend/internal/navigation"
	"godiya-emr-backend/internal/notifications"
	"godiya-emr-backend/internal/nursing"
	"godiya-emr-backend/internal/patients"
	"godiya-emr-backend/internal/pharmacy"
	"godiya-emr-backend/internal/prescriptions"
	"godiya-emr-backend/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Log.WithError(err).Error("Unexpected error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	app.Use(recover.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login", auth.LoginHandler(cfg, navigation.DashboardPathFor))
	api.Post("/auth/forgot-password", auth.ForgotPasswordHandler(cfg))

	// Public marketing site forms
	api.Post("/public/contact", web.ContactHandler(cfg))
	api.Post("/public/appointment-requests", web.AppointmentRequestHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Post("/auth/logout", auth.LogoutHandler())
	protected.Post("/auth/change-password", auth.ChangePasswordHandler(cfg))

	// Sidebar and breadcrumbs for the logged-in role
	protected.Get("/navigation", navigation.SidebarHandler())
	protected.Get("/navigation/breadcrumbs", navigation.BreadcrumbsHandler())

	// Dashboard widgets (every role has a dashboard)
	protected.Get("/dashboard/stats", dashboard.StatsHandler())
	protected.Get("/dashboard/appointments-chart", dashboard.AppointmentsChartHandler())

	// Notification feed, scoped to the session role
	protected.Get("/notifications", notifications.ListNotificationsHandler())
	protected.Get("/notifications/unread-count", notifications.UnreadCountHandler())
	protected.Put("/notifications/:id/read", notifications.MarkReadHandler())
	protected.Delete("/notifications/:id", notifications.DeleteNotificationHandler())

	// Department list feeds the booking forms, every role can read it
	protected.Get("/departments", admin.ListDepartmentsHandler())

	// Patient records: reception owns them, clinical roles read them
	patientRoutes := protected.Group("/patients")
	patientRoutes.Get("", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception, models.RoleDoctor, models.RoleNurse, models.RoleCashier), patients.ListPatientsHandler())
	patientRoutes.Get("/:id", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception, models.RoleDoctor, models.RoleNurse, models.RoleCashier), patients.GetPatientHandler())
	patientRoutes.Post("", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception), patients.CreatePatientHandler())
	patientRoutes.Put("/:id", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception), patients.UpdatePatientHandler())

	// Appointments: reception schedules, doctors work the queue
	apptRoutes := protected.Group("/appointments")
	apptRoutes.Get("", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception, models.RoleDoctor, models.RoleNurse), appointments.ListAppointmentsHandler())
	apptRoutes.Get("/export", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception), appointments.ExportAppointmentsHandler())
	apptRoutes.Get("/:id", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception, models.RoleDoctor, models.RoleNurse), appointments.GetAppointmentHandler())
	apptRoutes.Post("", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception), appointments.CreateAppointmentHandler())
	apptRoutes.Put("/:id", auth.RequireRole(models.RoleSuperAdmin, models.RoleReception, models.RoleDoctor), appointments.UpdateAppointmentHandler())

	// Website enquiries land on the reception desk
	enquiryRoutes := protected.Group("/enquiries")
	enquiryRoutes.Use(auth.RequireRole(models.RoleSuperAdmin, models.RoleReception))
	enquiryRoutes.Get("", web.ListEnquiriesHandler())
	enquiryRoutes.Put("/:id/handled", web.MarkEnquiryHandledHandler())

	// Billing desk
	billingRoutes := protected.Group("/billing")
	billingRoutes.Use(auth.RequireRole(models.RoleSuperAdmin, models.RoleCashier))
	billingRoutes.Post("/invoices", billing.CreateInvoiceHandler())
	billingRoutes.Get("/invoices", billing.ListInvoicesHandler())
	billingRoutes.Get("/invoices/:id", billing.GetInvoiceHandler())
	billingRoutes.Post("/invoices/:id/payments", billing.RecordPaymentHandler())
	billingRoutes.Get("/payments", billing.ListPaymentsHandler())
	billingRoutes.Get("/payments/:id/receipt", billing.ReceiptHandler())
	billingRoutes.Get("/summary/daily", billing.DailySummaryHandler())

	// Lab orders: doctors request, the lab works them
	labRoutes := protected.Group("/lab-orders")
	labRoutes.Post("", auth.RequireRole(models.RoleSuperAdmin, models.RoleDoctor), laboratory.CreateLabOrderHandler())
	labRoutes.Get("", auth.RequireRole(models.RoleSuperAdmin, models.RoleDoctor, models.RoleLaboratory), laboratory.ListLabOrdersHandler())
	labRoutes.Get("/pending-count", auth.RequireRole(models.RoleSuperAdmin, models.RoleLaboratory), laboratory.PendingCountHandler())
	labRoutes.Put("/:id", auth.RequireRole(models.RoleSuperAdmin, models.RoleLaboratory), laboratory.UpdateLabOrderHandler())

	// Prescriptions: doctors write, pharmacy dispenses
	rxRoutes := protected.Group("/prescriptions")
	rxRoutes.Post("", auth.RequireRole(models.RoleSuperAdmin, models.RoleDoctor), prescriptions.CreatePrescriptionHandler())
	rxRoutes.Get("", auth.RequireRole(models.RoleSuperAdmin, models.RoleDoctor, models.RolePharmacy), prescriptions.ListPrescriptionsHandler())

	// Pharmacy inventory
	pharmacyRoutes := protected.Group("/pharmacy")
	pharmacyRoutes.Use(auth.RequireRole(models.RoleSuperAdmin, models.RolePharmacy))
	pharmacyRoutes.Post("/drugs", pharmacy.CreateDrugHandler())
	pharmacyRoutes.Get("/drugs", pharmacy.ListDrugsHandler())
	pharmacyRoutes.Get("/drugs/low-stock-count", pharmacy.LowStockCountHandler())
	pharmacyRoutes.Put("/drugs/:id", pharmacy.UpdateDrugHandler())
	pharmacyRoutes.Post("/stock-entries", pharmacy.CreateStockEntryHandler())
	pharmacyRoutes.Get("/stock-entries", pharmacy.ListStockEntriesHandler())
	pharmacyRoutes.Post("/prescriptions/:id/dispense", pharmacy.DispenseHandler())

	// Nursing station
	vitalsRoutes := protected.Group("/vitals")
	vitalsRoutes.Post("", auth.RequireRole(models.RoleSuperAdmin, models.RoleNurse), nursing.RecordVitalsHandler())
	vitalsRoutes.Get("", auth.RequireRole(models.RoleSuperAdmin, models.RoleNurse, models.RoleDoctor), nursing.ListVitalsHandler())

	// Super admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	adminRoutes.Post("/departments", admin.CreateDepartmentHandler())
	adminRoutes.Get("/departments", admin.ListDepartmentsHandler())
	adminRoutes.Get("/departments/:id", admin.GetDepartmentHandler())
	adminRoutes.Put("/departments/:id", admin.UpdateDepartmentHandler())

	adminRoutes.Get("/staff", admin.ListStaffHandler())

	adminRoutes.Post("/notifications", notifications.CreateNotificationHandler())

	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())
	adminRoutes.Post("/audit-logs/:id/undo", audit.UndoAuditLogHandler())

	logger.Log.WithField("port", cfg.HTTPPort).Info("Server listening")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Log.Fatal(err)
	}
}
