package users

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

var validate = validator.New()

// UserActionAPI dispatches the six directory actions on the posted
// action field. Every action answers the same {status, message} envelope
// and is recorded in the activity log.
func UserActionAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	switch action := c.FormValue("action"); action {
	case "add_user":
		return addUser(c, caller)
	case "edit_user":
		return editUser(c, caller)
	case "reset_password":
		return resetPassword(c, caller)
	case "delete_user":
		return deleteUser(c, caller)
	case "change_status":
		return changeStatus(c, caller)
	case "bulk_action":
		return bulkAction(c, caller)
	default:
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Unknown action %q", action)})
	}
}

type addUserRequest struct {
	Name          string `form:"name" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Password      string `form:"password" validate:"required,min=8"`
	Role          string `form:"role" validate:"required"`
	UserWithEmpID string `form:"userwithempid"`
	Department    string `form:"department"`
	Position      string `form:"position"`
}

func addUser(c *fiber.Ctx, caller models.Caller) error {
	var req addUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": validationMessage(err)})
	}
	if !models.IsValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Unknown role"})
	}

	user := &models.User{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Role:          models.Role(req.Role),
		UserWithEmpID: strings.TrimSpace(req.UserWithEmpID),
		Department:    strings.TrimSpace(req.Department),
		Position:      strings.TrimSpace(req.Position),
	}

	if err := database.CreateUser(config.GetDB(), user, req.Password); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return c.Status(409).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		log.Printf("Failed to create user: %v", err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to create user"})
	}

	logUserAction(caller, "add_user", user.ID, fiber.Map{"email": user.Email, "role": user.Role})
	return c.JSON(fiber.Map{"status": "success", "message": "User created"})
}

type editUserRequest struct {
	ID            string `form:"id" validate:"required"`
	Name          string `form:"name" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Role          string `form:"role" validate:"required"`
	UserWithEmpID string `form:"userwithempid"`
	Department    string `form:"department"`
	Position      string `form:"position"`
}

func editUser(c *fiber.Ctx, caller models.Caller) error {
	var req editUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": validationMessage(err)})
	}
	if !models.IsValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Unknown role"})
	}

	user := &models.User{
		ID:            req.ID,
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.TrimSpace(req.Email),
		Role:          models.Role(req.Role),
		UserWithEmpID: strings.TrimSpace(req.UserWithEmpID),
		Department:    strings.TrimSpace(req.Department),
		Position:      strings.TrimSpace(req.Position),
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		if strings.Contains(err.Error(), "already in use") {
			return c.Status(409).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		log.Printf("Failed to update user %s: %v", req.ID, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update user"})
	}

	logUserAction(caller, "edit_user", user.ID, fiber.Map{"email": user.Email})
	return c.JSON(fiber.Map{"status": "success", "message": "User updated"})
}

type resetPasswordRequest struct {
	ID       string `form:"id" validate:"required"`
	Password string `form:"password" validate:"required,min=8"`
}

func resetPassword(c *fiber.Ctx, caller models.Caller) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": validationMessage(err)})
	}

	if err := database.ResetUserPassword(config.GetDB(), req.ID, req.Password); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		log.Printf("Failed to reset password for user %s: %v", req.ID, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to reset password"})
	}

	logUserAction(caller, "reset_password", req.ID, nil)
	return c.JSON(fiber.Map{"status": "success", "message": "Password reset; user must change it on next login"})
}

func deleteUser(c *fiber.Ctx, caller models.Caller) error {
	id := c.FormValue("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Missing user id"})
	}

	if err := database.SoftDeleteUser(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		log.Printf("Failed to delete user %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to delete user"})
	}

	logUserAction(caller, "delete_user", id, nil)
	return c.JSON(fiber.Map{"status": "success", "message": "User deleted"})
}

func changeStatus(c *fiber.Ctx, caller models.Caller) error {
	id := c.FormValue("id")
	status := c.FormValue("status")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Missing user id"})
	}
	if status != string(models.UserActive) && status != string(models.UserInactive) {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Status must be active or inactive"})
	}

	if err := database.ChangeUserStatus(config.GetDB(), id, models.UserStatus(status)); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		log.Printf("Failed to change status of user %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to change status"})
	}

	logUserAction(caller, "change_status", id, fiber.Map{"status": status})
	return c.JSON(fiber.Map{"status": "success", "message": "Status updated"})
}

// bulkAction applies delete/activate/deactivate per id; missing ids are
// tolerated and the response reports the affected count.
func bulkAction(c *fiber.Ctx, caller models.Caller) error {
	bulk := c.FormValue("bulk_action")
	ids := splitIDs(c.FormValue("ids"))
	if len(ids) == 0 {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "No user ids supplied"})
	}

	count, err := database.BulkUserAction(config.GetDB(), bulk, ids)
	if err != nil {
		if strings.Contains(err.Error(), "unknown bulk action") {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		log.Printf("Bulk user action %q failed after %d users: %v", bulk, count, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Bulk action failed", "count": count})
	}

	logUserAction(caller, "bulk_action", "", fiber.Map{"action": bulk, "count": count})
	return c.JSON(fiber.Map{"status": "success", "count": count})
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func validationMessage(err error) string {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		field := invalid[0]
		return fmt.Sprintf("Field %s failed validation (%s)", strings.ToLower(field.Field()), field.Tag())
	}
	return "Invalid input"
}

// logUserAction records the directory action in the activity log; an
// audit failure is logged but never fails the action it describes.
func logUserAction(caller models.Caller, action, entityID string, details fiber.Map) {
	serialized := ""
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			serialized = string(b)
		}
	}
	if err := database.LogActivity(config.GetDB(), caller.Email, action, "user", entityID, serialized); err != nil {
		log.Printf("Failed to log activity %s: %v", action, err)
	}
}
