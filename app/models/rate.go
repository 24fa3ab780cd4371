package models

import (
	"fmt"
	"strings"
)

// Rate is the typed form of the composed rate string stored in the
// clientrate/payrate columns: "<amount> <CUR> <unit> on <tax_term>",
// e.g. "50 USD /hour on W2". Amount stays a string so stored values
// round-trip verbatim.
type Rate struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Unit     string `json:"unit"`
	TaxTerm  string `json:"tax_term"`
}

// RateUnits lists the billing units a rate string may carry.
var RateUnits = []string{"/hour", "/day", "/week", "/bi-week", "/semi-month", "/month", "/year"}

// payTypeUnits maps the pay-type selector shown on the edit form to the
// unit token encoded into the rate string.
var payTypeUnits = map[string]string{
	"Hourly":       "/hour",
	"Daily":        "/day",
	"Weekly":       "/week",
	"Bi-Weekly":    "/bi-week",
	"Semi-Monthly": "/semi-month",
	"Monthly":      "/month",
	"Yearly":       "/year",
}

var unitPayTypes = func() map[string]string {
	m := make(map[string]string, len(payTypeUnits))
	for payType, unit := range payTypeUnits {
		m[unit] = payType
	}
	return m
}()

// UnitForPayType resolves a pay-type selector value to its unit token,
// defaulting to hourly for anything unrecognized.
func UnitForPayType(payType string) string {
	if unit, ok := payTypeUnits[payType]; ok {
		return unit
	}
	return "/hour"
}

// PayTypeForUnit is the reverse of UnitForPayType, used to hydrate the
// selector when editing an existing record.
func PayTypeForUnit(unit string) string {
	if payType, ok := unitPayTypes[unit]; ok {
		return payType
	}
	return "Hourly"
}

func isRateUnit(s string) bool {
	_, ok := unitPayTypes[s]
	return ok
}

// ParseRate decodes a stored rate string. A value not matching the
// composed pattern is treated as a bare numeric hourly rate in USD; a
// value that is not numeric either comes back with only Amount set so
// the original text is preserved.
func ParseRate(s string) Rate {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rate{Currency: "USD", Unit: "/hour"}
	}

	head, taxTerm, hasTax := strings.Cut(s, " on ")
	parts := strings.Fields(head)
	if hasTax && len(parts) == 3 && isRateUnit(parts[2]) {
		return Rate{
			Amount:   parts[0],
			Currency: parts[1],
			Unit:     parts[2],
			TaxTerm:  strings.TrimSpace(taxTerm),
		}
	}

	// Legacy rows hold a bare numeric rate; anything else is carried in
	// Amount untouched so a later save does not corrupt it.
	return Rate{Amount: s, Currency: "USD", Unit: "/hour"}
}

// String composes the stored form of the rate. An empty amount composes
// to the empty string so untouched rate fields diff as unchanged.
func (r Rate) String() string {
	if strings.TrimSpace(r.Amount) == "" {
		return ""
	}
	currency := r.Currency
	if currency == "" {
		currency = "USD"
	}
	unit := r.Unit
	if unit == "" {
		unit = "/hour"
	}
	if strings.TrimSpace(r.TaxTerm) == "" {
		return fmt.Sprintf("%s %s %s", r.Amount, currency, unit)
	}
	return fmt.Sprintf("%s %s %s on %s", r.Amount, currency, unit, r.TaxTerm)
}

// ComposeRate builds the stored rate string from the four discrete form
// inputs (amount, currency, pay-type selector, tax term).
func ComposeRate(amount, currency, payType, taxTerm string) string {
	return Rate{
		Amount:   strings.TrimSpace(amount),
		Currency: strings.TrimSpace(currency),
		Unit:     UnitForPayType(payType),
		TaxTerm:  strings.TrimSpace(taxTerm),
	}.String()
}
