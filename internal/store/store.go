package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/repository"
	"github.com/partsledger/partsledger-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// StateKey is the durable storage key holding the serialized state blob
const StateKey = "workshop_db_v3"

// defaultPassword seeds both the login and admin password on first boot
const defaultPassword = "1"

// Store owns the full application state. It is the only mutation surface:
// every change goes through Update, which runs the mutation to completion
// under the store lock, flushes notifications queued during the mutation,
// and then schedules a durable write. Readers use View.
type Store struct {
	mu     sync.Mutex
	state  *entity.AppState
	repo   repository.StateRepository
	writes chan []byte
}

// Open loads the persisted state, falling back to defaults when no blob
// exists or the stored payload cannot be parsed. Startup never fails on a
// corrupt blob.
func Open(repo repository.StateRepository) (*Store, error) {
	s := &Store{repo: repo, writes: make(chan []byte, 1)}
	go s.writeLoop()

	data, err := repo.Load(context.Background(), StateKey)
	if err != nil {
		return nil, err
	}

	state := entity.DefaultState()
	if len(data) > 0 {
		if err := json.Unmarshal(data, state); err != nil {
			log.Printf("Warning: stored state is unreadable, starting from defaults: %v", err)
			state = entity.DefaultState()
		} else {
			state.MergeDefaults()
		}
	}
	s.state = state

	s.mu.Lock()
	seeded, err := s.seedPasswordsLocked()
	if err == nil && seeded {
		s.persistLocked()
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// seedPasswordsLocked hashes the default password into any empty password
// slot. Pre-seeded hashes from a restored backup are left untouched.
func (s *Store) seedPasswordsLocked() (bool, error) {
	seeded := false
	if s.state.Settings.LoginPassword == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		s.state.Settings.LoginPassword = string(hash)
		seeded = true
	}
	if s.state.Settings.AdminPassword == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		s.state.Settings.AdminPassword = string(hash)
		seeded = true
	}
	return seeded, nil
}

// View runs fn with read access to the current state. The callback must not
// retain or mutate the state.
func (s *Store) View(fn func(st *entity.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Update runs fn inside a transaction. The mutation is applied start to
// finish under the store lock; notifications emitted through the transaction
// outbox become visible only after fn returns successfully, and the durable
// write happens off the critical path. Callbacks must validate before
// mutating so a returned error leaves prior state intact.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{state: s.state}
	if err := fn(tx); err != nil {
		return err
	}

	// Flush the outbox after the state mutation has committed, newest first
	for _, pending := range tx.outbox {
		note := entity.NewNotification(utils.NewUUID(), pending.text, pending.severity)
		s.state.Notifications = append([]entity.Notification{note}, s.state.Notifications...)
	}

	s.persistLocked()
	return nil
}

// Snapshot returns a deep copy of the current state for export
func (s *Store) Snapshot() (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Replace swaps in a fully restored state (backup import path) and persists
// it. Empty password slots in the restored payload are seeded the same way a
// fresh boot seeds them, so an import can never lock the user out.
func (s *Store) Replace(state *entity.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state.MergeDefaults()
	s.state = state
	if _, err := s.seedPasswordsLocked(); err != nil {
		return err
	}
	s.persistLocked()
	return nil
}

// License returns the currently stored license token, if any
func (s *Store) License() *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings.License
}

// persistLocked serializes the state under the lock and hands the blob to
// the writer goroutine, replacing any queued write that has not started yet.
// A failed write is logged and never touches the in-memory state.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("Error: failed to serialize state for persistence: %v", err)
		return
	}

	select {
	case s.writes <- data:
	default:
		// Drop the superseded queued blob and enqueue the newest one.
		// Producers all hold the store lock, so the drained slot cannot
		// be refilled underneath us.
		select {
		case <-s.writes:
		default:
		}
		s.writes <- data
	}
}

// writeLoop applies durable writes one at a time in mutation order, so a
// slow write can never land after, and clobber, a newer one.
func (s *Store) writeLoop() {
	for data := range s.writes {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repo.Save(ctx, StateKey, data); err != nil {
			log.Printf("Error: failed to persist state: %v", err)
		}
		cancel()
	}
}
