package models

import "fmt"

// Status defines the workflow states of a paperwork record.
//
// The lifecycle normally runs created -> initiated -> closed -> started,
// with client_hold, client_dropped and backout reachable as exception
// states. Transitions are intentionally unrestricted: any status may be
// set from any other; only the companion data (reason, start date) is
// enforced. See StatusRequiresReason and StatusRequiresStartDate.
type Status string

const (
	StatusCreated   Status = "paperwork_created"
	StatusInitiated Status = "initiated_agreement_bgv"
	StatusClosed    Status = "paperwork_closed"
	StatusStarted   Status = "started"
	StatusHold      Status = "client_hold"
	StatusDropped   Status = "client_dropped"
	StatusBackout   Status = "backout"
)

// AllStatuses lists every workflow state in display order.
var AllStatuses = []Status{
	StatusCreated,
	StatusInitiated,
	StatusClosed,
	StatusStarted,
	StatusHold,
	StatusDropped,
	StatusBackout,
}

var statusLabels = map[Status]string{
	StatusCreated:   "Paperwork Created",
	StatusInitiated: "Initiated - Agreement / BGV",
	StatusClosed:    "Paperwork Closed",
	StatusStarted:   "Started",
	StatusHold:      "Client Hold",
	StatusDropped:   "Client Dropped",
	StatusBackout:   "Backout",
}

// IsValidStatus reports whether s is one of the known workflow states.
func IsValidStatus(s string) bool {
	_, ok := statusLabels[Status(s)]
	return ok
}

// Label returns the human-readable form of a status, falling back to the
// raw value for anything unknown.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusRequiresReason reports whether moving to s needs a caller-supplied
// reason (hold and dropped both capture why the client pulled back).
func StatusRequiresReason(s Status) bool {
	return s == StatusHold || s == StatusDropped
}

// StatusRequiresStartDate reports whether moving to s needs a start date.
func StatusRequiresStartDate(s Status) bool {
	return s == StatusStarted
}

// StatusHistoryValue formats the history value recorded for a move to s.
// The companion reason or start date lives only in this annotation; the
// status column itself always stores the bare value.
func StatusHistoryValue(s Status, reason, startDate string) string {
	if reason != "" && StatusRequiresReason(s) {
		return fmt.Sprintf("%s (Reason: %s)", s, reason)
	}
	if startDate != "" && StatusRequiresStartDate(s) {
		return fmt.Sprintf("%s (Start Date: %s)", s, startDate)
	}
	return string(s)
}

// Role defines the application roles.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleContracts Role = "Contracts"
	RoleManager   Role = "Manager"
	RoleUser      Role = "User"
)

// IsValidRole reports whether r is one of the known application roles.
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleContracts, RoleManager, RoleUser:
		return true
	}
	return false
}

// UserStatus defines the lifecycle states of an application account.
// Deleted is a soft state: the row is never physically removed.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserDeleted  UserStatus = "deleted"
)
