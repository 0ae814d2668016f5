package store

import (
	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

// Notifications returns the live notification log, newest first
func (tx *Tx) Notifications() []entity.Notification {
	return tx.state.Notifications
}

// Notify queues an advisory notification on the transaction outbox. It is
// materialized only after the owning mutation commits, so a notification can
// never become visible before the state change that caused it, and queueing
// can never fail the transaction.
func (tx *Tx) Notify(text string, severity enum.Severity) {
	tx.outbox = append(tx.outbox, pendingNotification{text: text, severity: severity})
}

// ClearNotifications empties the notification log
func (tx *Tx) ClearNotifications() {
	tx.state.Notifications = []entity.Notification{}
}

// MarkNotificationRead flips the display-only read flag
func (tx *Tx) MarkNotificationRead(id uuid.UUID) bool {
	for i := range tx.state.Notifications {
		if tx.state.Notifications[i].ID == id {
			tx.state.Notifications[i].Read = true
			return true
		}
	}
	return false
}
