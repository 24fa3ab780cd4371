package paperwork

import (
	"database/sql"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

// GetPaperworkTableAPI returns one page of caller-visible rows plus the
// total match count for page-count display.
func GetPaperworkTableAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	filters := database.PaperworkFilters{
		Search:          c.Query("search"),
		StartDate:       c.Query("start_date"),
		EndDate:         c.Query("end_date"),
		DateType:        c.Query("date_type"),
		SubmittedBy:     c.Query("submitted_by"),
		Status:          c.Query("status"),
		Client:          c.Query("client"),
		JobTitle:        c.Query("job_title"),
		BusinessUnit:    c.Query("business_unit"),
		DeliveryManager: c.Query("delivery_manager"),
		AccountLead:     c.Query("account_lead"),
		Location:        c.Query("location"),
		SortBy:          c.Query("sort_by"),
		Limit:           c.QueryInt("limit", 10),
		Page:            c.QueryInt("page", 1),
	}

	records, totalCount, err := database.GetPaperworkPage(config.GetDB(), caller, filters)
	if err != nil {
		log.Printf("Failed to fetch paperwork table: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch records"})
	}

	limit := database.NormalizeLimit(filters.Limit)
	return c.JSON(fiber.Map{
		"records":     records,
		"count":       len(records),
		"total_count": totalCount,
		"page_count":  (totalCount + limit - 1) / limit,
	})
}

// GetRecordDetailsAPI is the on-demand projection behind an expanded
// row: PLC annotation, status and history, independent of the main page
// load.
func GetRecordDetailsAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid record ID"})
	}

	record, err := database.GetPaperworkByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to load record"})
	}
	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "No access to this record"})
	}

	detail, err := database.GetPaperworkDetail(config.GetDB(), id)
	if err != nil {
		log.Printf("Failed to fetch detail for record %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to load record details"})
	}

	return c.JSON(fiber.Map{"status": "success", "detail": detail})
}

// GetRecordHistoryAPI returns the record's audit trail.
func GetRecordHistoryAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid record ID"})
	}

	record, err := database.GetPaperworkByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to load record"})
	}
	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "No access to this record"})
	}

	history, err := database.GetRecordHistory(config.GetDB(), id)
	if err != nil {
		log.Printf("Failed to fetch history for record %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to load history"})
	}

	return c.JSON(fiber.Map{"status": "success", "history": history})
}

// UpdateStatusAPI is the status-only transition endpoint. Any status may
// follow any other; the guards cover only the companion data.
func UpdateStatusAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	type StatusRequest struct {
		ID        int    `json:"id" form:"id"`
		Status    string `json:"status" form:"status"`
		Reason    string `json:"reason" form:"reason"`
		StartDate string `json:"start_date" form:"start_date"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request"})
	}

	if !models.IsValidStatus(req.Status) {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Unknown status"})
	}
	newStatus := models.Status(req.Status)
	if models.StatusRequiresReason(newStatus) && strings.TrimSpace(req.Reason) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "A reason is required for this status"})
	}
	if models.StatusRequiresStartDate(newStatus) && strings.TrimSpace(req.StartDate) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "A start date is required for this status"})
	}

	record, err := database.GetPaperworkByID(config.GetDB(), req.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to load record"})
	}
	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).JSON(fiber.Map{"success": false, "message": "No access to this record"})
	}

	if err := database.UpdateStatus(config.GetDB(), req.ID, newStatus, strings.TrimSpace(req.Reason), strings.TrimSpace(req.StartDate), caller); err != nil {
		log.Printf("Failed to update status of record %d: %v", req.ID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Failed to update status"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// UpdatePLCAPI writes the PLC annotation triple.
func UpdatePLCAPI(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	type PLCRequest struct {
		PaperworkID int    `json:"paperwork_id" form:"paperwork_id"`
		PLCCode     string `json:"plc_code" form:"plc_code"`
	}

	var req PLCRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid request"})
	}

	record, err := database.GetPaperworkByID(config.GetDB(), req.PaperworkID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to load record"})
	}
	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "No access to this record"})
	}

	if err := database.UpdatePLCCode(config.GetDB(), req.PaperworkID, strings.TrimSpace(req.PLCCode), caller); err != nil {
		log.Printf("Failed to update PLC code of record %d: %v", req.PaperworkID, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update PLC code"})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// DeleteRecordAPI removes a single record.
func DeleteRecordAPI(c *fiber.Ctx) error {
	type DeleteRequest struct {
		ID int `json:"id" form:"id"`
	}

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid request"})
	}

	if err := database.DeletePaperwork(config.GetDB(), req.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Record not found"})
		}
		log.Printf("Failed to delete record %d: %v", req.ID, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to delete record"})
	}

	caller := auth.CallerFromCtx(c)
	if err := database.LogActivity(config.GetDB(), caller.Email, "delete_record", "paperwork", strconv.Itoa(req.ID), ""); err != nil {
		log.Printf("Failed to log record deletion: %v", err)
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Record deleted"})
}

// BulkDeleteRecordsAPI deletes each listed id, tolerating missing rows,
// and reports the affected count.
func BulkDeleteRecordsAPI(c *fiber.Ctx) error {
	type BulkDeleteRequest struct {
		IDs []int `json:"ids" form:"ids"`
	}

	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil || len(req.IDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "No record IDs supplied"})
	}

	count, err := database.BulkDeletePaperwork(config.GetDB(), req.IDs)
	if err != nil {
		log.Printf("Bulk delete failed after %d records: %v", count, err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Bulk delete failed", "count": count})
	}

	caller := auth.CallerFromCtx(c)
	if err := database.LogActivity(config.GetDB(), caller.Email, "bulk_delete_records", "paperwork", "", strconv.Itoa(count)+" records"); err != nil {
		log.Printf("Failed to log bulk deletion: %v", err)
	}

	return c.JSON(fiber.Map{"status": "success", "count": count})
}
