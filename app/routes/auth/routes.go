package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - PMT",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	caller := CallerFromCtx(c)
	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - PMT",
		"CurrentPage": "profile",
		"caller":      caller,
		"Name":        caller.Name,
		"Email":       caller.Email,
		"Role":        string(caller.Role),
	})
}

// CallerFromCtx returns the authenticated caller set by AuthMiddleware.
func CallerFromCtx(c *fiber.Ctx) models.Caller {
	return c.Locals("caller").(models.Caller)
}

// AuthMiddleware validates the JWT and threads the caller identity into
// the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	tokenString = c.Cookies("jwt_token")

	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("caller", claims.Caller())

	return c.Next()
}

// RoleMiddleware restricts a route to the named roles.
func RoleMiddleware(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFromCtx(c)

		for _, allowed := range allowedRoles {
			if caller.Role == allowed {
				return c.Next()
			}
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - PMT",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"caller":       caller,
		})
	}
}
