package service

import (
	"context"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// SettingsService handles application preferences. Password hashes and the
// raw license token never leave this layer.
type SettingsService struct {
	store *store.Store
}

// NewSettingsService creates a new settings service
func NewSettingsService(st *store.Store) *SettingsService {
	return &SettingsService{store: st}
}

// SettingsView is the externally visible settings shape
type SettingsView struct {
	Theme    string                 `json:"theme"`
	Receipt  entity.ReceiptSettings `json:"receipt"`
	Licensed bool                   `json:"licensed"`
}

// GetSettings returns the current preferences without secrets
func (s *SettingsService) GetSettings(ctx context.Context) SettingsView {
	var view SettingsView
	s.store.View(func(st *entity.AppState) {
		view = SettingsView{
			Theme:    st.Settings.Theme,
			Receipt:  st.Settings.Receipt,
			Licensed: st.Settings.License != nil,
		}
	})
	return view
}

// UpdateTheme switches between the light and dark theme
func (s *SettingsService) UpdateTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return apperror.NewBadRequestError("Theme must be light or dark")
	}
	return s.store.Update(func(tx *store.Tx) error {
		tx.Settings().Theme = theme
		return nil
	})
}

// UpdateReceipt replaces the receipt header and footer fields
func (s *SettingsService) UpdateReceipt(ctx context.Context, receipt entity.ReceiptSettings) error {
	if receipt.Title == "" {
		return apperror.NewBadRequestError("Receipt title is required")
	}
	return s.store.Update(func(tx *store.Tx) error {
		tx.Settings().Receipt = receipt
		return nil
	})
}

// ChangePassword replaces the login or admin password with a bcrypt hash of
// the new value
func (s *SettingsService) ChangePassword(ctx context.Context, kind, newPassword string) error {
	if newPassword == "" {
		return apperror.NewBadRequestError("Password must not be empty")
	}
	if kind != "login" && kind != "admin" {
		return apperror.NewBadRequestError("Password kind must be login or admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.store.Update(func(tx *store.Tx) error {
		if kind == "admin" {
			tx.Settings().AdminPassword = string(hash)
		} else {
			tx.Settings().LoginPassword = string(hash)
		}
		return nil
	})
}
