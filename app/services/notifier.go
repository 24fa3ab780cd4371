package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// RecordChange is the notification payload assembled after a committed
// edit: the structured change list plus enough identity to describe it.
type RecordChange struct {
	RecordID      int
	CandidateName string
	ChangedBy     models.Caller
	Changes       []models.FieldChange
	Recipients    []string
}

// NotifyRecordChanged emails the change summary. Delivery is strictly
// fire-and-forget: the data change is already committed, so every
// failure here is logged and swallowed. There is no retry.
func NotifyRecordChanged(smtpCfg config.SMTPConfig, change RecordChange) {
	if len(change.Changes) == 0 {
		return
	}
	if smtpCfg.Host == "" || smtpCfg.Username == "" {
		log.Printf("Notification for record %d skipped: SMTP not configured", change.RecordID)
		return
	}

	recipients := change.Recipients
	if len(recipients) == 0 {
		recipients = []string{smtpCfg.From}
	}

	subject := fmt.Sprintf("Paperwork #%d updated", change.RecordID)
	if change.CandidateName != "" {
		subject = fmt.Sprintf("Paperwork #%d (%s) updated", change.RecordID, change.CandidateName)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Record #%d was updated by %s (%s).\r\n\r\n", change.RecordID, change.ChangedBy.Name, change.ChangedBy.Email)
	for _, fc := range change.Changes {
		oldValue := fc.OldValue
		if oldValue == "" {
			oldValue = "(empty)"
		}
		fmt.Fprintf(&body, "- %s: %s -> %s\r\n", fc.Label, oldValue, fc.HistoryValue())
	}

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		smtpCfg.From, strings.Join(recipients, ", "), subject, body.String())

	addr := fmt.Sprintf("%s:%d", smtpCfg.Host, smtpCfg.Port)
	authClient := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)
	if err := smtp.SendMail(addr, authClient, smtpCfg.From, recipients, []byte(message)); err != nil {
		log.Printf("Failed to send change notification for record %d: %v", change.RecordID, err)
		return
	}
	log.Printf("Change notification sent for record %d (%d fields)", change.RecordID, len(change.Changes))
}
