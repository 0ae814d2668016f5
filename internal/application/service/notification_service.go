package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
)

// NotificationService exposes the append-only alert log
type NotificationService struct {
	store *store.Store
}

// NewNotificationService creates a new notification service
func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

// ListNotifications returns the log, newest first
func (s *NotificationService) ListNotifications(ctx context.Context) []entity.Notification {
	notes := []entity.Notification{}
	s.store.View(func(st *entity.AppState) {
		notes = append(notes, st.Notifications...)
	})
	return notes
}

// Emit appends an advisory notification
func (s *NotificationService) Emit(ctx context.Context, text string, severity enum.Severity) error {
	return s.store.Update(func(tx *store.Tx) error {
		tx.Notify(text, severity)
		return nil
	})
}

// Clear empties the log
func (s *NotificationService) Clear(ctx context.Context) error {
	return s.store.Update(func(tx *store.Tx) error {
		tx.ClearNotifications()
		return nil
	})
}

// MarkRead flips the display-only read flag on one notification
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(func(tx *store.Tx) error {
		if !tx.MarkNotificationRead(id) {
			return apperror.NewNotFoundError("Notification")
		}
		return nil
	})
}
