package options

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/Santhoshjk159/PMT-sub000/app/routes/auth"
)

// optionLists are the dropdown choices used across the editor forms,
// kept in one place so the reference page and the CSV export can never
// disagree with each other.
var optionLists = map[string][]string{
	"statuses":           statusValues(),
	"work_authorization": {"H1B", "H4-EAD", "OPT", "CPT", "GC", "GC-EAD", "USC", "TN", "E3"},
	"tax_terms":          {"W2", "C2C", "1099"},
	"pay_types":          {"Hourly", "Daily", "Weekly", "Bi-Weekly", "Semi-Monthly", "Monthly", "Yearly"},
	"currencies":         {"USD", "CAD", "INR", "EUR", "GBP"},
	"candidate_sources":  sourceValues(),
	"business_units":     {"Digital", "Cloud & Infra", "Data & Analytics", "ERP", "QA & Testing"},
	"terms":              {"Contract", "Contract to Hire", "Full Time"},
	"payment_terms":      {"Net 15", "Net 30", "Net 45", "Net 60", "Net 90"},
}

func statusValues() []string {
	values := make([]string, len(models.AllStatuses))
	for i, s := range models.AllStatuses {
		values[i] = string(s)
	}
	return values
}

func sourceValues() []string {
	values := []string{models.SourcingSource, "Referral", "Vendor"}
	for kind, subs := range models.MultiValuedSources {
		for _, sub := range subs {
			values = append(values, models.CandidateSource{Kind: kind, Detail: sub}.String())
		}
	}
	sort.Strings(values)
	return values
}

func SetupOptionsRoutes(app *fiber.App) {
	pages := app.Group("/options")
	pages.Use(auth.AuthMiddleware)
	pages.Get("/", OptionsPage)
	pages.Get("/export", ExportOptionsCSV)
}

// OptionsPage renders the dropdown reference tool.
func OptionsPage(c *fiber.Ctx) error {
	caller := auth.CallerFromCtx(c)

	names := make([]string, 0, len(optionLists))
	for name := range optionLists {
		names = append(names, name)
	}
	sort.Strings(names)

	return c.Render("options/index", fiber.Map{
		"Title":       "Dropdown Options - PMT",
		"CurrentPage": "options",
		"caller":      caller,
		"Lists":       optionLists,
		"ListNames":   names,
	})
}

// ExportOptionsCSV streams one option list as a CSV download.
func ExportOptionsCSV(c *fiber.Ctx) error {
	name := c.Query("list")
	values, ok := optionLists[name]
	if !ok {
		return c.Status(400).SendString("Unknown option list.")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{name})
	for _, v := range values {
		_ = w.Write([]string{v})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).SendString("Failed to build CSV.")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))
	return c.Send(buf.Bytes())
}
