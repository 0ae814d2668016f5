package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

// Notification represents an advisory alert shown to the user. The read
// flag is display-only and carries no logic.
type Notification struct {
	ID        uuid.UUID     `json:"id"`
	Text      string        `json:"text"`
	Severity  enum.Severity `json:"severity"`
	Time      string        `json:"time"` // Localized display time rendered at creation
	CreatedAt time.Time     `json:"created_at"`
	Read      bool          `json:"read"`
}

// NewNotification builds a notification stamped with the current time
func NewNotification(id uuid.UUID, text string, severity enum.Severity) Notification {
	now := time.Now()
	return Notification{
		ID:        id,
		Text:      text,
		Severity:  severity,
		Time:      now.Format("3:04:05 PM"),
		CreatedAt: now,
		Read:      false,
	}
}
