package routes

import (
	"os"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// Public booking surface
	r.GET("/salons", controllers.GetSalons)
	r.GET("/salons/:slug", controllers.GetSalonBySlug)
	r.GET("/availability/:staffId", controllers.GetAvailability)
	r.POST("/appointments", controllers.CreateAppointment)
	r.POST("/clients", controllers.CreateClient)
	r.GET("/clients/phone/:phone", controllers.GetClientByPhone)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		manage := utils.RequireRole(models.RoleManager, models.RoleAdmin)
		adminOnly := utils.RequireRole(models.RoleAdmin)

		// Salon routes
		salon := api.Group("/salon")
		{
			salon.GET("", controllers.GetSalon)
			salon.PUT("", manage, controllers.UpdateSalon)
			salon.PUT("/hours", manage, controllers.UpdateOpeningHours)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.POST("", manage, controllers.CreateService)
			services.PUT("/:id", manage, controllers.UpdateService)
			services.DELETE("/:id", manage, controllers.DeleteService)
		}

		// Staff routes
		staff := api.Group("/staff")
		{
			staff.GET("", controllers.GetStaff)
			staff.POST("", adminOnly, controllers.AddStaff)
			staff.PUT("/:id", adminOnly, controllers.UpdateStaff)
			staff.DELETE("/:id", adminOnly, controllers.DeleteStaff)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.POST("/:id/loyalty", manage, controllers.AdjustLoyalty)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.CancelAppointment)
			appointments.POST("/block", manage, controllers.BlockWindow)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
