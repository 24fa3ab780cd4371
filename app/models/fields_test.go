package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseValues() map[string]string {
	return map[string]string{
		"cfirstname": "Asha",
		"clastname":  "Rao",
		"cemail":     "asha.rao@example.com",
		"client":     "Acme Corp",
		"job_title":  "Data Engineer",
		"status":     string(StatusCreated),
	}
}

func TestRequiredFieldsDependencies(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(map[string]string)
		required    []string
		notRequired []string
	}{
		{
			name:        "base record has no conditional requirements",
			mutate:      func(map[string]string) {},
			notRequired: []string{"vvalidate_status", "margin_deviation_reason", "ratecard_deviation_reason", "payment_term_deviation_reason"},
		},
		{
			name:     "H1B requires V-Validate status",
			mutate:   func(v map[string]string) { v["cwork_authorization_status"] = "H1B" },
			required: []string{"vvalidate_status"},
		},
		{
			name:        "other work auth does not require V-Validate",
			mutate:      func(v map[string]string) { v["cwork_authorization_status"] = "GC" },
			notRequired: []string{"vvalidate_status"},
		},
		{
			name:     "approved margin deviation requires its reason",
			mutate:   func(v map[string]string) { v["margin_deviation_approval"] = "Yes" },
			required: []string{"margin_deviation_reason"},
		},
		{
			name:        "declined margin deviation requires no reason",
			mutate:      func(v map[string]string) { v["margin_deviation_approval"] = "No" },
			notRequired: []string{"margin_deviation_reason"},
		},
		{
			name: "every approval flag controls its paired reason",
			mutate: func(v map[string]string) {
				v["ratecard_deviation_approved"] = "Yes"
				v["payment_term_approval"] = "Yes"
			},
			required: []string{"ratecard_deviation_reason", "payment_term_deviation_reason"},
		},
		{
			name:     "multi-valued source requires full composition",
			mutate:   func(v map[string]string) { v["ccandidate_source"] = "Job Portal" },
			required: []string{"ccandidate_source"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := baseValues()
			tt.mutate(values)
			required := RequiredFields(values)

			for _, col := range tt.required {
				assert.True(t, required[col], "expected %s to be required", col)
			}
			for _, col := range tt.notRequired {
				assert.False(t, required[col], "expected %s not to be required", col)
			}
		})
	}
}

func TestMissingRequired(t *testing.T) {
	t.Run("complete base record passes", func(t *testing.T) {
		assert.Empty(t, MissingRequired(baseValues()))
	})

	t.Run("empty and NA both count as missing", func(t *testing.T) {
		values := baseValues()
		values["client"] = ""
		values["job_title"] = "NA"
		missing := MissingRequired(values)
		assert.Contains(t, missing, "Client")
		assert.Contains(t, missing, "Job Title")
	})

	t.Run("H1B without V-Validate is flagged", func(t *testing.T) {
		values := baseValues()
		values["cwork_authorization_status"] = "H1B"
		assert.Contains(t, MissingRequired(values), "V-Validate Status")
	})

	t.Run("sourcing without a person is flagged", func(t *testing.T) {
		values := baseValues()
		values["ccandidate_source"] = "Sourcing"
		assert.Contains(t, MissingRequired(values), "Final Candidate Source")

		values["ccandidate_source"] = "Sourcing - Jane Smith"
		assert.NotContains(t, MissingRequired(values), "Final Candidate Source")
	})
}

func TestFieldCatalogIntegrity(t *testing.T) {
	seenForm := make(map[string]bool)
	seenColumn := make(map[string]bool)
	for _, f := range FieldCatalog {
		assert.NotEmpty(t, f.FormKey)
		assert.NotEmpty(t, f.Column)
		assert.NotEmpty(t, f.Label)
		assert.False(t, seenForm[f.FormKey], "duplicate form key %s", f.FormKey)
		assert.False(t, seenColumn[f.Column], "duplicate column %s", f.Column)
		seenForm[f.FormKey] = true
		seenColumn[f.Column] = true
	}

	// Every collaboration column must be an editable catalog column or
	// the access scope would reference a column the editor cannot set.
	for _, col := range CollaborationColumns {
		assert.True(t, seenColumn[col], "collaboration column %s missing from catalog", col)
	}
	assert.Len(t, CollaborationColumns, 14)
}

func TestLabelForColumn(t *testing.T) {
	assert.Equal(t, "Client Rate", LabelForColumn("clientrate"))
	assert.Equal(t, "Final Candidate Source", LabelForColumn("ccandidate_source"))
	assert.Equal(t, "nonexistent", LabelForColumn("nonexistent"))
}
