package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateRoundTrip(t *testing.T) {
	composed := ComposeRate("50", "USD", "Hourly", "W2")
	assert.Equal(t, "50 USD /hour on W2", composed)

	parsed := ParseRate(composed)
	assert.Equal(t, "50", parsed.Amount)
	assert.Equal(t, "USD", parsed.Currency)
	assert.Equal(t, "/hour", parsed.Unit)
	assert.Equal(t, "W2", parsed.TaxTerm)

	// Recomposing from the parsed components yields the identical string.
	assert.Equal(t, composed, parsed.String())
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Rate
	}{
		{
			name:     "composed hourly W2",
			input:    "50 USD /hour on W2",
			expected: Rate{Amount: "50", Currency: "USD", Unit: "/hour", TaxTerm: "W2"},
		},
		{
			name:     "composed monthly C2C",
			input:    "9000 USD /month on C2C",
			expected: Rate{Amount: "9000", Currency: "USD", Unit: "/month", TaxTerm: "C2C"},
		},
		{
			name:     "composed bi-weekly",
			input:    "3200 CAD /bi-week on 1099",
			expected: Rate{Amount: "3200", Currency: "CAD", Unit: "/bi-week", TaxTerm: "1099"},
		},
		{
			name:     "bare numeric falls back to hourly USD",
			input:    "65",
			expected: Rate{Amount: "65", Currency: "USD", Unit: "/hour"},
		},
		{
			name:     "decimal numeric falls back to hourly USD",
			input:    "72.50",
			expected: Rate{Amount: "72.50", Currency: "USD", Unit: "/hour"},
		},
		{
			name:     "empty value",
			input:    "",
			expected: Rate{Currency: "USD", Unit: "/hour"},
		},
		{
			name:     "unknown unit token is not treated as composed",
			input:    "50 USD /fortnight on W2",
			expected: Rate{Amount: "50 USD /fortnight on W2", Currency: "USD", Unit: "/hour"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseRate(tt.input))
		})
	}
}

func TestRateString(t *testing.T) {
	assert.Equal(t, "", Rate{}.String(), "empty amount composes to empty string")
	assert.Equal(t, "80 USD /day", Rate{Amount: "80", Currency: "USD", Unit: "/day"}.String(),
		"missing tax term drops the on clause")
	assert.Equal(t, "80 USD /hour on W2", Rate{Amount: "80", TaxTerm: "W2"}.String(),
		"currency and unit default")
}

func TestPayTypeUnitMapping(t *testing.T) {
	for _, payType := range []string{"Hourly", "Daily", "Weekly", "Bi-Weekly", "Semi-Monthly", "Monthly", "Yearly"} {
		unit := UnitForPayType(payType)
		assert.Equal(t, payType, PayTypeForUnit(unit), "pay type should survive the round trip")
	}
	assert.Equal(t, "/hour", UnitForPayType("Fortnightly"))
	assert.Equal(t, "Hourly", PayTypeForUnit("/fortnight"))
}
