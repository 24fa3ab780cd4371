package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusHistoryValue(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		reason    string
		startDate string
		expected  string
	}{
		{"bare status", StatusClosed, "", "", "paperwork_closed"},
		{"hold carries the reason", StatusHold, "budget freeze", "", "client_hold (Reason: budget freeze)"},
		{"dropped carries the reason", StatusDropped, "position filled", "", "client_dropped (Reason: position filled)"},
		{"started carries the start date", StatusStarted, "", "2025-07-01", "started (Start Date: 2025-07-01)"},
		{"reason dropped when the status needs none", StatusClosed, "whatever", "", "paperwork_closed"},
		{"start date dropped when the status needs none", StatusHold, "", "2025-07-01", "client_hold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusHistoryValue(tt.status, tt.reason, tt.startDate))
		})
	}
}
