package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

const userColumns = `id, name, email, password, role, COALESCE(userwithempid, ''),
			  COALESCE(department, ''), COALESCE(position, ''), status, force_password_change,
			  created_at, updated_at, deleted_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.UserWithEmpID, &user.Department, &user.Position, &user.Status,
		&user.ForcePasswordChange, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetActiveUserByEmail resolves a login: only active accounts are
// eligible.
func GetActiveUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND status = 'active'`
	return scanUser(db.QueryRow(query, email))
}

// GetUserByID loads one account regardless of status.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id::text = $1`
	return scanUser(db.QueryRow(query, id))
}

// UserFilters represents the directory's optional filters.
type UserFilters struct {
	Search string
	Role   string
	Status string
}

// userConditions builds the directory's WHERE clause. Deleted rows stay
// out unless the status filter asks for them explicitly.
func userConditions(filters UserFilters) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	} else {
		conditions = append(conditions, "status != 'deleted'")
	}

	if filters.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIndex))
		args = append(args, filters.Role)
		argIndex++
	}

	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR LOWER(email) LIKE $%d)", argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}
	return conditions, args
}

// GetUsers lists directory accounts.
func GetUsers(db *sql.DB, filters UserFilters) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`

	conditions, args := userConditions(filters)
	query += " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// emailTaken reports whether a non-deleted account other than excludeID
// already uses the email. Uniqueness is only enforced among non-deleted
// rows; a deleted account's email may be reused.
func emailTaken(db *sql.DB, email, excludeID string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE LOWER(email) = LOWER($1) AND status != 'deleted' AND id::text != $2`,
		email, excludeID).Scan(&count)
	return count > 0, err
}

// CreateUser adds an account, rejecting a duplicate email.
func CreateUser(db *sql.DB, user *models.User, password string) error {
	taken, err := emailTaken(db, user.Email, "")
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("a user with email %s already exists", user.Email)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password, role, userwithempid, department, position, status, force_password_change, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, 'active', false, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, user.Name, user.Email, hashed, string(user.Role),
		user.UserWithEmpID, user.Department, user.Position).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdateUser edits an account's profile fields, rejecting an email
// collision with a different account.
func UpdateUser(db *sql.DB, user *models.User) error {
	taken, err := emailTaken(db, user.Email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("email %s is already in use by another user", user.Email)
	}

	result, err := db.Exec(`UPDATE users SET name = $1, email = $2, role = $3, userwithempid = $4,
			  department = $5, position = $6, updated_at = NOW() WHERE id::text = $7`,
		user.Name, user.Email, string(user.Role), user.UserWithEmpID,
		user.Department, user.Position, user.ID)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// ResetUserPassword stores a new hash and flags the account for a forced
// change on next login.
func ResetUserPassword(db *sql.DB, id, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	result, err := db.Exec(`UPDATE users SET password = $1, force_password_change = true, updated_at = NOW() WHERE id::text = $2`,
		hashed, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// UpdateUserPassword stores a caller-chosen password and clears the
// forced-change flag.
func UpdateUserPassword(db *sql.DB, id, hashedPassword string) error {
	result, err := db.Exec(`UPDATE users SET password = $1, force_password_change = false, updated_at = NOW() WHERE id::text = $2`,
		hashedPassword, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// SoftDeleteUser flips the account to deleted. The row is never
// physically removed; every other column keeps its value.
func SoftDeleteUser(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE users SET status = 'deleted', deleted_at = $1, updated_at = $1 WHERE id::text = $2 AND status != 'deleted'`,
		time.Now(), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// ChangeUserStatus activates or deactivates an account.
func ChangeUserStatus(db *sql.DB, id string, status models.UserStatus) error {
	result, err := db.Exec(`UPDATE users SET status = $1, updated_at = NOW() WHERE id::text = $2 AND status != 'deleted'`,
		string(status), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// BulkUserAction applies delete/activate/deactivate per id, tolerating
// ids that do not exist, and reports how many rows were affected.
func BulkUserAction(db *sql.DB, action string, ids []string) (int, error) {
	var apply func(id string) error
	switch action {
	case "delete":
		apply = func(id string) error { return SoftDeleteUser(db, id) }
	case "activate":
		apply = func(id string) error { return ChangeUserStatus(db, id, models.UserActive) }
	case "deactivate":
		apply = func(id string) error { return ChangeUserStatus(db, id, models.UserInactive) }
	default:
		return 0, fmt.Errorf("unknown bulk action %q", action)
	}
	return bulkApply(ids, apply)
}

// bulkApply runs apply per id, skipping rows that no longer exist and
// counting the rest. Any other error stops the loop with the partial
// count.
func bulkApply(ids []string, apply func(id string) error) (int, error) {
	affected := 0
	for _, id := range ids {
		err := apply(id)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return affected, err
		}
		affected++
	}
	return affected, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
