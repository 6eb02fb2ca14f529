package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goldinkstudio/tattoo-booking-api/internal/audit"
	"github.com/goldinkstudio/tattoo-booking-api/internal/config"
	"github.com/goldinkstudio/tattoo-booking-api/internal/handlers"
	infraRepo "github.com/goldinkstudio/tattoo-booking-api/internal/infra/repository"
	"github.com/goldinkstudio/tattoo-booking-api/internal/middleware"
	"github.com/goldinkstudio/tattoo-booking-api/internal/storage"
	"github.com/goldinkstudio/tattoo-booking-api/internal/tokens"
	ucAppointment "github.com/goldinkstudio/tattoo-booking-api/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	objectStore storage.ObjectStore,
	denylist tokens.Denylist,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		objectStore,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)
	meHandler := handlers.NewMeHandler(db)
	catalogHandler := handlers.NewCatalogHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
	)

	adminAppointmentHandler := handlers.NewAdminAppointmentHandler(
		listAppointmentsUC,
		updateStatusUC,
		deleteAppointmentUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 CATÁLOGO (público)
		// ------------------------------
		catalog := api.Group("/catalog")
		{
			catalog.GET("/categories", catalogHandler.ListCategories)
			catalog.GET("/tattoos", catalogHandler.ListTattoos)
			catalog.GET("/featured", catalogHandler.ListFeatured)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.POST("/me/appointments", appointmentHandler.Create)

			// ------------------------------
			// 🛡️ ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/appointments", adminAppointmentHandler.List)
				admin.PATCH("/appointments/:id/status", adminAppointmentHandler.UpdateStatus)
				admin.DELETE("/appointments/:id", adminAppointmentHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
