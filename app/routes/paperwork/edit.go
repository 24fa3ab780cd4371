package paperwork

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
	"github.com/Santhoshjk159/PMT-sub000/app/services"
)

// postedValues assembles the submitted state of every catalog column from
// the form. The composed fields normally arrive pre-built in their hidden
// inputs; when a hidden input is missing the value is rebuilt from the
// discrete components so the two paths cannot drift.
func postedValues(form func(string, ...string) string) map[string]string {
	values := make(map[string]string, len(models.FieldCatalog))
	for _, f := range models.FieldCatalog {
		values[f.Column] = strings.TrimSpace(form(f.FormKey))
	}

	if values["clientrate"] == "" {
		values["clientrate"] = models.ComposeRate(form("client_rate_amount"), form("client_rate_currency"),
			form("client_pay_type"), form("client_tax_term"))
	}
	if values["payrate"] == "" {
		values["payrate"] = models.ComposeRate(form("pay_rate_amount"), form("pay_rate_currency"),
			form("pay_pay_type"), form("pay_tax_term"))
	}
	if values["ccandidate_source"] == "" {
		kind := strings.TrimSpace(form("candidate_source"))
		detail := strings.TrimSpace(form("candidate_source_detail"))
		if kind == models.SourcingSource {
			detail = strings.TrimSpace(form("sourced_by"))
		}
		if kind != "" {
			values["ccandidate_source"] = models.CandidateSource{Kind: kind, Detail: detail}.String()
		}
	}
	return values
}

// computeChanges diffs the posted state against the stored state over
// the field catalog, in catalog order. One changed composed field counts
// as one change, never one per component.
func computeChanges(posted, stored map[string]string) []models.FieldChange {
	var changes []models.FieldChange
	for _, f := range models.FieldCatalog {
		newValue := posted[f.Column]
		oldValue := stored[f.Column]
		if newValue == oldValue {
			continue
		}
		changes = append(changes, models.FieldChange{
			Column:   f.Column,
			Label:    f.Label,
			OldValue: oldValue,
			NewValue: newValue,
		})
	}
	return changes
}

// validateStatusChange enforces the companion-data guards. Transitions
// themselves are unrestricted.
func validateStatusChange(oldStatus, newStatus models.Status, reason, startDate string) error {
	if oldStatus == newStatus {
		return nil
	}
	if !models.IsValidStatus(string(newStatus)) {
		return fmt.Errorf("unknown status %q", newStatus)
	}
	if models.StatusRequiresReason(newStatus) && strings.TrimSpace(reason) == "" {
		return fmt.Errorf("a reason is required when moving a record to %s", newStatus.Label())
	}
	if models.StatusRequiresStartDate(newStatus) && strings.TrimSpace(startDate) == "" {
		return fmt.Errorf("a start date is required when moving a record to %s", newStatus.Label())
	}
	return nil
}

// UpdateRecordAPI is the full-form submit of the record editor: load,
// authorize, validate, diff, persist transactionally, notify, redirect.
func UpdateRecordAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	if c.FormValue("action") != "update_record" {
		return c.Status(400).SendString("Unknown form action.")
	}

	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return c.Status(400).SendString("Missing or invalid record ID.")
	}

	record, err := database.GetPaperworkByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).SendString("Record not found.")
		}
		log.Printf("Failed to load record %d for update: %v", id, err)
		return c.Status(500).SendString("Failed to load record.")
	}

	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).SendString("You do not have permission to edit this record.")
	}

	posted := postedValues(c.FormValue)

	if missing := models.MissingRequired(posted); len(missing) > 0 {
		return c.Status(400).SendString("Required fields missing: " + strings.Join(missing, ", "))
	}

	statusReason := strings.TrimSpace(c.FormValue("status_reason"))
	startDate := posted["start_date"]
	if err := validateStatusChange(record.Status, models.Status(posted["status"]), statusReason, startDate); err != nil {
		return c.Status(400).SendString(err.Error())
	}

	changes := computeChanges(posted, record.Fields)
	if len(changes) == 0 {
		// Unchanged submission: no update, no history, still a success.
		return c.Redirect("/paperwork?success=1")
	}
	annotateStatusChange(changes, statusReason, startDate)

	if err := database.ApplyRecordUpdate(config.GetDB(), id, caller, changes); err != nil {
		log.Printf("Failed to update record %d: %v", id, err)
		return c.Status(500).SendString("Failed to save changes. No changes were applied.")
	}

	// Fire-and-forget: a notification failure is logged inside the
	// service and never affects the committed change.
	go services.NotifyRecordChanged(config.GetSMTP(), services.RecordChange{
		RecordID:      id,
		CandidateName: record.ConsultantName(),
		ChangedBy:     caller,
		Changes:       changes,
	})

	return c.Redirect("/paperwork?success=1")
}

// annotateStatusChange attaches the companion reason or start date to the
// status change's history value; the status column itself stores the
// bare value.
func annotateStatusChange(changes []models.FieldChange, statusReason, startDate string) {
	for i := range changes {
		if changes[i].Column != "status" {
			continue
		}
		newStatus := models.Status(changes[i].NewValue)
		if annotated := models.StatusHistoryValue(newStatus, statusReason, startDate); annotated != changes[i].NewValue {
			changes[i].HistoryNew = annotated
		}
	}
}

// CreateRecordAPI inserts a new record from the same form the editor
// uses.
func CreateRecordAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	posted := postedValues(c.FormValue)
	if missing := models.MissingRequired(posted); len(missing) > 0 {
		return c.Status(400).SendString("Required fields missing: " + strings.Join(missing, ", "))
	}

	id, err := database.CreatePaperwork(config.GetDB(), caller, posted)
	if err != nil {
		log.Printf("Failed to create record: %v", err)
		return c.Status(500).SendString("Failed to create record.")
	}

	log.Printf("Record %d created by %s", id, caller.Email)
	return c.Redirect("/paperwork?success=1")
}
