package paperwork

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

func storedFixture() map[string]string {
	stored := make(map[string]string, len(models.FieldCatalog))
	for _, f := range models.FieldCatalog {
		stored[f.Column] = ""
	}
	stored["cfirstname"] = "Asha"
	stored["clastname"] = "Rao"
	stored["cemail"] = "asha.rao@example.com"
	stored["client"] = "Acme Corp"
	stored["job_title"] = "Data Engineer"
	stored["status"] = string(models.StatusCreated)
	stored["clientrate"] = "90 USD /hour on C2C"
	stored["payrate"] = "70 USD /hour on W2"
	return stored
}

func TestComputeChangesCountsOnePerField(t *testing.T) {
	stored := storedFixture()
	posted := storedFixture()
	posted["client"] = "Globex"
	posted["payrate"] = "75 USD /hour on W2"
	posted["status"] = string(models.StatusInitiated)

	changes := computeChanges(posted, stored)
	assert.Len(t, changes, 3, "one change per differing field, composed fields count once")

	labels := make([]string, len(changes))
	for i, c := range changes {
		labels[i] = c.Label
	}
	assert.ElementsMatch(t, []string{"Client", "Pay Rate", "Status"}, labels)
}

func TestComputeChangesIdempotent(t *testing.T) {
	stored := storedFixture()
	posted := storedFixture()
	assert.Empty(t, computeChanges(posted, stored), "unchanged submission produces zero changes")
}

func TestComputeChangesRecordsOldAndNew(t *testing.T) {
	stored := storedFixture()
	posted := storedFixture()
	posted["client"] = "Globex"

	changes := computeChanges(posted, stored)
	assert.Len(t, changes, 1)
	assert.Equal(t, "client", changes[0].Column)
	assert.Equal(t, "Acme Corp", changes[0].OldValue)
	assert.Equal(t, "Globex", changes[0].NewValue)
}

func TestAnnotateStatusChange(t *testing.T) {
	t.Run("hold records the reason in history only", func(t *testing.T) {
		changes := []models.FieldChange{{
			Column:   "status",
			Label:    "Status",
			OldValue: string(models.StatusCreated),
			NewValue: string(models.StatusHold),
		}}
		annotateStatusChange(changes, "client paused hiring", "")
		assert.Equal(t, string(models.StatusHold), changes[0].NewValue, "column keeps the bare status")
		assert.Equal(t, "client_hold (Reason: client paused hiring)", changes[0].HistoryValue())
	})

	t.Run("started records the start date", func(t *testing.T) {
		changes := []models.FieldChange{{
			Column:   "status",
			Label:    "Status",
			OldValue: string(models.StatusCreated),
			NewValue: string(models.StatusStarted),
		}}
		annotateStatusChange(changes, "", "2024-06-01")
		assert.Equal(t, "started (Start Date: 2024-06-01)", changes[0].HistoryValue())
	})

	t.Run("plain transition is untouched", func(t *testing.T) {
		changes := []models.FieldChange{{
			Column:   "status",
			NewValue: string(models.StatusInitiated),
		}}
		annotateStatusChange(changes, "", "")
		assert.Equal(t, string(models.StatusInitiated), changes[0].HistoryValue())
	})
}

func TestValidateStatusChange(t *testing.T) {
	tests := []struct {
		name      string
		oldStatus models.Status
		newStatus models.Status
		reason    string
		startDate string
		wantErr   bool
	}{
		{
			name:      "hold without reason rejected",
			oldStatus: models.StatusCreated,
			newStatus: models.StatusHold,
			wantErr:   true,
		},
		{
			name:      "hold with reason accepted",
			oldStatus: models.StatusCreated,
			newStatus: models.StatusHold,
			reason:    "budget freeze",
		},
		{
			name:      "dropped without reason rejected",
			oldStatus: models.StatusStarted,
			newStatus: models.StatusDropped,
			wantErr:   true,
		},
		{
			name:      "started without start date rejected",
			oldStatus: models.StatusCreated,
			newStatus: models.StatusStarted,
			wantErr:   true,
		},
		{
			name:      "started with start date accepted",
			oldStatus: models.StatusCreated,
			newStatus: models.StatusStarted,
			startDate: "2024-06-01",
		},
		{
			name:      "backwards transition is legal",
			oldStatus: models.StatusStarted,
			newStatus: models.StatusCreated,
		},
		{
			name:      "unknown status rejected",
			oldStatus: models.StatusCreated,
			newStatus: models.Status("archived"),
			wantErr:   true,
		},
		{
			name:      "unchanged status needs nothing",
			oldStatus: models.StatusHold,
			newStatus: models.StatusHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStatusChange(tt.oldStatus, tt.newStatus, tt.reason, tt.startDate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostedValuesComposesHiddenFields(t *testing.T) {
	form := map[string]string{
		"cfirstname":            "Asha",
		"client_rate_amount":    "90",
		"client_rate_currency":  "USD",
		"client_pay_type":       "Hourly",
		"client_tax_term":       "C2C",
		"pay_rate_amount":       "70",
		"pay_rate_currency":     "USD",
		"pay_pay_type":          "Monthly",
		"pay_tax_term":          "W2",
		"candidate_source":      "Sourcing",
		"sourced_by":            "Jane Smith",
	}
	get := func(key string, _ ...string) string { return form[key] }

	values := postedValues(get)
	assert.Equal(t, "Asha", values["cfirstname"])
	assert.Equal(t, "90 USD /hour on C2C", values["clientrate"])
	assert.Equal(t, "70 USD /month on W2", values["payrate"])
	assert.Equal(t, "Sourcing - Jane Smith", values["ccandidate_source"])
}

func TestPostedValuesPrefersHiddenCombined(t *testing.T) {
	form := map[string]string{
		"client_rate_combined":   "95 USD /hour on C2C",
		"client_rate_amount":     "90",
		"final_candidate_source": "Job Portal - Dice",
		"candidate_source":       "Referral",
	}
	get := func(key string, _ ...string) string { return form[key] }

	values := postedValues(get)
	assert.Equal(t, "95 USD /hour on C2C", values["clientrate"])
	assert.Equal(t, "Job Portal - Dice", values["ccandidate_source"])
}
