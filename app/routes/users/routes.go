package users

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App) {
	pages := app.Group("/users")
	pages.Use(auth.AuthMiddleware)
	pages.Use(auth.RoleMiddleware(models.RoleAdmin))
	pages.Get("/", UsersPage)

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/", GetUsersAPI)
	api.Post("/action", UserActionAPI)
}

func UsersPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	users, err := database.GetUsers(config.GetDB(), database.UserFilters{})
	if err != nil {
		log.Printf("Failed to load users: %v", err)
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - PMT",
			"CurrentPage":  "users",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load users. Please try again later.",
			"caller":       caller,
		})
	}

	return c.Render("users/index", fiber.Map{
		"Title":       "User Management - PMT",
		"CurrentPage": "users",
		"caller":      caller,
		"users":       users,
	})
}

// GetUsersAPI lists directory accounts with the optional search/role/
// status filters. Deleted accounts stay hidden unless asked for.
func GetUsersAPI(c *fiber.Ctx) error {
	filters := database.UserFilters{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}

	users, err := database.GetUsers(config.GetDB(), filters)
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{"status": "success", "users": users, "count": len(users)})
}
