package dashboard

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	pages := app.Group("/dashboard")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	stats, err := database.GetDashboardStats(config.GetDB(), caller)
	if err != nil {
		log.Printf("Failed to load dashboard stats: %v", err)
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PMT",
			"CurrentPage":  "dashboard",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load the dashboard. Please try again later.",
			"caller":       caller,
		})
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - PMT",
		"CurrentPage": "dashboard",
		"caller":      caller,
		"stats":       stats,
		"Statuses":    models.AllStatuses,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	stats, err := database.GetDashboardStats(config.GetDB(), caller)
	if err != nil {
		log.Printf("Failed to fetch dashboard stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch statistics"})
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}
