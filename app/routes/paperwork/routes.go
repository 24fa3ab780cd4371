package paperwork

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

func SetupPaperworkRoutes(app *fiber.App) {
	pages := app.Group("/paperwork")
	pages.Use(auth.AuthMiddleware)

	pages.Get("/", ListPage)
	pages.Get("/new", NewRecordPage)
	pages.Post("/new", CreateRecordAPI)
	pages.Get("/:id/edit", EditRecordPage)
	pages.Post("/update", UpdateRecordAPI)

	api := app.Group("/api/paperwork")
	api.Use(auth.AuthMiddleware)
	api.Get("/table", GetPaperworkTableAPI)
	api.Get("/:id/details", GetRecordDetailsAPI)
	api.Get("/:id/history", GetRecordHistoryAPI)
	api.Post("/status", UpdateStatusAPI)
	api.Post("/plc", UpdatePLCAPI)
	api.Post("/delete", auth.RoleMiddleware(models.RoleAdmin, models.RoleContracts), DeleteRecordAPI)
	api.Post("/bulk-delete", auth.RoleMiddleware(models.RoleAdmin, models.RoleContracts), BulkDeleteRecordsAPI)
}

// ListPage renders the paperwork table shell; rows arrive through the
// table API so filter changes never reload the page.
func ListPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	return c.Render("paperwork/index", fiber.Map{
		"Title":       "Paperwork - PMT",
		"CurrentPage": "paperwork",
		"caller":      caller,
		"Statuses":    models.AllStatuses,
		"PageSizes":   database.PageSizes,
		"Success":     c.Query("success"),
	})
}

// NewRecordPage renders an empty editor.
func NewRecordPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)
	empty := make(map[string]string, len(models.FieldCatalog))
	return c.Render("paperwork/edit", fiber.Map{
		"Title":       "New Paperwork - PMT",
		"CurrentPage": "paperwork",
		"caller":      caller,
		"IsNew":       true,
		"Fields":      empty,
		"Required":    models.RequiredFields(empty),
		"Statuses":    models.AllStatuses,
		"Sources":     models.MultiValuedSources,
	})
}

// EditRecordPage loads one record and renders the editor. The
// required/visible state and the hydrated rate selectors both derive
// from the stored values through the same functions the submit path
// validates with.
func EditRecordPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).SendString("Invalid record ID.")
	}

	record, err := database.GetPaperworkByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).SendString("Record not found.")
		}
		return c.Status(500).SendString("Failed to load record.")
	}

	if !database.CanAccessRecord(record, caller) {
		return c.Status(403).SendString("You do not have permission to edit this record.")
	}

	clientRate := models.ParseRate(record.Fields["clientrate"])
	payRate := models.ParseRate(record.Fields["payrate"])
	source := models.ParseCandidateSource(record.Fields["ccandidate_source"])

	return c.Render("paperwork/edit", fiber.Map{
		"Title":         "Edit Paperwork #" + strconv.Itoa(id) + " - PMT",
		"CurrentPage":   "paperwork",
		"caller":        caller,
		"IsNew":         false,
		"record":        record,
		"Fields":        record.Fields,
		"Required":      models.RequiredFields(record.Fields),
		"Statuses":      models.AllStatuses,
		"Sources":       models.MultiValuedSources,
		"ClientRate":    clientRate,
		"ClientPayType": models.PayTypeForUnit(clientRate.Unit),
		"PayRate":       payRate,
		"PayPayType":    models.PayTypeForUnit(payRate.Unit),
		"Source":        source,
	})
}
