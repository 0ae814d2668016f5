package entity

import "time"

// StateBlob is the single durable row holding the serialized AppState.
// The whole state is written as one opaque value under a versioned key.
type StateBlob struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Data      []byte    `gorm:"type:blob" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the StateBlob model
func (StateBlob) TableName() string {
	return "state_blobs"
}
