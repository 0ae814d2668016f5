package store

import "github.com/partsledger/partsledger-api/internal/domain/entity"

// Settings returns a pointer to the stored settings for in-place edits
func (tx *Tx) Settings() *entity.Settings {
	return &tx.state.Settings
}
