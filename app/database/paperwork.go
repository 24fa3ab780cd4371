package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// PaperworkFilters represents the optional filters of the list view. All
// fields are free-form request input; everything reaches the database
// through placeholders only.
type PaperworkFilters struct {
	Search          string
	StartDate       string
	EndDate         string
	DateType        string // created (default) or updated
	SubmittedBy     string
	Status          string
	Client          string
	JobTitle        string
	BusinessUnit    string
	DeliveryManager string
	AccountLead     string
	Location        string
	SortBy          string
	Limit           int
	Page            int
}

// PageSizes are the selectable page sizes; anything else falls back to
// the default.
var PageSizes = []int{10, 25, 50, 100}

// NormalizeLimit clamps a requested page size to the allowed set.
func NormalizeLimit(limit int) int {
	for _, size := range PageSizes {
		if limit == size {
			return limit
		}
	}
	return 10
}

// sortClauses whitelists the sort keys; unrecognized values fall back to
// created-descending.
var sortClauses = map[string]string{
	"created_asc":  "p.created_at ASC",
	"created_desc": "p.created_at DESC",
	"updated_asc":  "p.updated_at ASC",
	"updated_desc": "p.updated_at DESC",
	"name_asc":     "p.cfirstname ASC, p.clastname ASC",
	"name_desc":    "p.cfirstname DESC, p.clastname DESC",
}

func sortClause(sortBy string) string {
	if clause, ok := sortClauses[sortBy]; ok {
		return clause
	}
	return "p.created_at DESC"
}

// visibilityConditions compiles the caller's row-level scope into WHERE
// conditions. Admin and Contracts see everything; a caller with a team
// key sees records they submitted plus records naming their key in any
// collaboration column; everyone else sees only their own submissions.
func visibilityConditions(caller models.Caller, conditions []string, args []interface{}, argIndex int) ([]string, []interface{}, int) {
	if caller.FullAccess() {
		return conditions, args, argIndex
	}

	if caller.TeamKey != "" {
		clauses := make([]string, 0, len(models.CollaborationColumns)+1)
		clauses = append(clauses, fmt.Sprintf("p.submittedby = $%d", argIndex))
		args = append(args, caller.Email)
		argIndex++
		for _, col := range models.CollaborationColumns {
			clauses = append(clauses, fmt.Sprintf("p.%s = $%d", col, argIndex))
		}
		args = append(args, caller.TeamKey)
		argIndex++
		conditions = append(conditions, "("+strings.Join(clauses, " OR ")+")")
		return conditions, args, argIndex
	}

	conditions = append(conditions, fmt.Sprintf("p.submittedby = $%d", argIndex))
	args = append(args, caller.Email)
	argIndex++
	return conditions, args, argIndex
}

func filterConditions(filters PaperworkFilters, conditions []string, args []interface{}, argIndex int) ([]string, []interface{}, int) {
	if filters.Search != "" {
		pattern := "%" + strings.ToLower(filters.Search) + "%"
		conditions = append(conditions, fmt.Sprintf(`(
			LOWER(p.cfirstname) LIKE $%d
			OR LOWER(p.clastname) LIKE $%d
			OR LOWER(p.cemail) LIKE $%d
			OR CAST(p.id AS TEXT) LIKE $%d
		)`, argIndex, argIndex, argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}

	dateColumn := "p.created_at"
	if filters.DateType == "updated" {
		dateColumn = "p.updated_at"
	}
	if filters.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", dateColumn, argIndex))
		args = append(args, filters.StartDate)
		argIndex++
	}
	if filters.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("%s <= ($%d::date + INTERVAL '1 day')", dateColumn, argIndex))
		args = append(args, filters.EndDate)
		argIndex++
	}

	if filters.SubmittedBy != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(p.submittedby) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(filters.SubmittedBy)+"%")
		argIndex++
	}

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIndex))
		args = append(args, filters.Status)
		argIndex++
	}

	if filters.Client != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(p.client) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(filters.Client)+"%")
		argIndex++
	}

	if filters.JobTitle != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(p.job_title) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(filters.JobTitle)+"%")
		argIndex++
	}

	if filters.BusinessUnit != "" {
		conditions = append(conditions, fmt.Sprintf("p.business_unit = $%d", argIndex))
		args = append(args, filters.BusinessUnit)
		argIndex++
	}

	if filters.DeliveryManager != "" {
		conditions = append(conditions, fmt.Sprintf("(p.delivery_manager = $%d OR p.delivery_manager1 = $%d)", argIndex, argIndex))
		args = append(args, filters.DeliveryManager)
		argIndex++
	}

	if filters.AccountLead != "" {
		conditions = append(conditions, fmt.Sprintf("(p.delivery_account_lead = $%d OR p.delivery_account_lead1 = $%d)", argIndex, argIndex))
		args = append(args, filters.AccountLead)
		argIndex++
	}

	if filters.Location != "" {
		pattern := "%" + strings.ToLower(filters.Location) + "%"
		conditions = append(conditions, fmt.Sprintf("(LOWER(p.work_location) LIKE $%d OR LOWER(p.project_location) LIKE $%d)", argIndex, argIndex))
		args = append(args, pattern)
		argIndex++
	}

	return conditions, args, argIndex
}

func paperworkWhere(caller models.Caller, filters PaperworkFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	conditions, args, argIndex = visibilityConditions(caller, conditions, args, argIndex)
	conditions, args, _ = filterConditions(filters, conditions, args, argIndex)

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CountPaperwork returns the total records matching the caller's scope
// and filters, for page-count display.
func CountPaperwork(db *sql.DB, caller models.Caller, filters PaperworkFilters) (int, error) {
	where, args := paperworkWhere(caller, filters)
	query := `SELECT COUNT(p.id) FROM paperworkdetails p` + where

	var count int
	err := db.QueryRow(query, args...).Scan(&count)
	return count, err
}

// GetPaperworkPage returns one page of list rows annotated with the
// submitter's display name and a record-type label relative to the
// caller.
func GetPaperworkPage(db *sql.DB, caller models.Caller, filters PaperworkFilters) ([]*models.PaperworkRow, int, error) {
	totalCount, err := CountPaperwork(db, caller, filters)
	if err != nil {
		return nil, 0, err
	}

	limit := NormalizeLimit(filters.Limit)
	page := filters.Page
	pageCount := (totalCount + limit - 1) / limit
	if page < 1 || (pageCount > 0 && page > pageCount) {
		page = 1
	}
	offset := (page - 1) * limit

	where, args := paperworkWhere(caller, filters)
	query := fmt.Sprintf(`SELECT p.id, p.cfirstname, p.clastname, p.cemail, p.client, p.job_title,
			  p.business_unit, p.work_location, p.status, COALESCE(p.plc_code, ''),
			  p.submittedby, COALESCE(u.name, ''), p.created_at, p.updated_at
			  FROM paperworkdetails p
			  LEFT JOIN users u ON u.email = p.submittedby AND u.status != 'deleted'%s
			  ORDER BY %s
			  LIMIT %d OFFSET %d`, where, sortClause(filters.SortBy), limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*models.PaperworkRow
	for rows.Next() {
		var r models.PaperworkRow
		var first, last string
		if err := rows.Scan(&r.ID, &first, &last, &r.Email, &r.Client, &r.JobTitle,
			&r.BusinessUnit, &r.Location, &r.Status, &r.PLCCode,
			&r.SubmittedBy, &r.SubmitterName, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, 0, err
		}
		r.ConsultantName = strings.TrimSpace(first + " " + last)
		r.StatusLabel = r.Status.Label()
		r.RecordType = recordTypeLabel(caller, r.SubmittedBy, r.SubmitterName)
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, totalCount, nil
}

func recordTypeLabel(caller models.Caller, submittedBy, submitterName string) string {
	if strings.EqualFold(submittedBy, caller.Email) {
		return "Own Record"
	}
	if submitterName == "" {
		submitterName = submittedBy
	}
	return "Team Member: " + submitterName
}
