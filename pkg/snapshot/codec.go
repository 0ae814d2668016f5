// Package snapshot implements the portable backup format: the full
// application state serialized to JSON and wrapped in a base64 token that is
// safe to ship through plain text files regardless of the scripts used in
// names and addresses.
package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
)

// ErrInvalidSnapshot is returned when a backup token cannot be decoded or
// does not carry a recognizable state payload.
var ErrInvalidSnapshot = errors.New("invalid or corrupted backup token")

// Encode serializes a deep copy of the state, with the license stripped,
// into a backup token. The input state is never modified.
func Encode(state *entity.AppState) (string, error) {
	backup, err := state.Clone()
	if err != nil {
		return "", err
	}
	backup.Settings.License = nil

	data, err := json.Marshal(backup)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a backup token back into a full state. The caller's current
// license is restored into the result: importing a backup never overwrites
// an active license. Malformed tokens yield ErrInvalidSnapshot, never a
// panic.
func Decode(token string, currentLicense *string) (*entity.AppState, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidSnapshot
	}

	// Required-field sanity check before committing to the full parse
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ErrInvalidSnapshot
	}
	if _, ok := raw["operations"]; !ok {
		return nil, ErrInvalidSnapshot
	}

	state := entity.DefaultState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, ErrInvalidSnapshot
	}
	state.MergeDefaults()
	state.Settings.License = currentLicense
	return state, nil
}
