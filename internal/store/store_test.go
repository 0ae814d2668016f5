package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

// memoryRepo is an in-memory StateRepository for tests. Saves happen on a
// background goroutine, so access is mutex-guarded.
type memoryRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{data: make(map[string][]byte)}
}

func (r *memoryRepo) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memoryRepo) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = data
	return nil
}

func (r *memoryRepo) get(key string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key]
}

func TestOpenFreshInstall(t *testing.T) {
	repo := newMemoryRepo()

	s, err := Open(repo)
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		assert.Empty(t, st.Operations)
		assert.Empty(t, st.Parts)
		assert.Empty(t, st.Customers)
		assert.Empty(t, st.Notifications)
		assert.Equal(t, "dark", st.Settings.Theme)
		assert.Equal(t, "My Workshop", st.Settings.Receipt.Title)
		assert.Nil(t, st.Settings.License)

		// Both passwords are seeded to the default on first boot
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.LoginPassword), []byte("1")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.AdminPassword), []byte("1")))
	})
}

func TestOpenCorruptBlobFallsBackToDefaults(t *testing.T) {
	repo := newMemoryRepo()
	repo.data[StateKey] = []byte("this is not json{{{")

	s, err := Open(repo)
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		assert.Empty(t, st.Operations)
		assert.Equal(t, "dark", st.Settings.Theme)
	})
}

func TestOpenPartialBlobMergesDefaults(t *testing.T) {
	repo := newMemoryRepo()
	// An older payload missing whole sections: nil collections, no theme
	repo.data[StateKey] = []byte(`{"operations":[],"settings":{}}`)

	s, err := Open(repo)
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		assert.NotNil(t, st.Parts)
		assert.NotNil(t, st.Customers)
		assert.NotNil(t, st.Notifications)
		assert.Equal(t, "dark", st.Settings.Theme)
		assert.Equal(t, "My Workshop", st.Settings.Receipt.Title)
	})
}

func TestOpenKeepsRestoredPasswords(t *testing.T) {
	repo := newMemoryRepo()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	state := entity.DefaultState()
	state.Settings.LoginPassword = string(hash)
	data, err := json.Marshal(state)
	require.NoError(t, err)
	repo.data[StateKey] = data

	s, err := Open(repo)
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.LoginPassword), []byte("secret")))
		// The untouched admin slot still gets the default
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.AdminPassword), []byte("1")))
	})
}

func TestUpdateFlushesOutboxAfterCommit(t *testing.T) {
	s, err := Open(newMemoryRepo())
	require.NoError(t, err)

	err = s.Update(func(tx *Tx) error {
		tx.Notify("first", enum.SeverityInfo)
		tx.Notify("second", enum.SeverityDanger)
		// Nothing is materialized while the mutation is still running
		assert.Empty(t, tx.Notifications())
		return nil
	})
	require.NoError(t, err)

	s.View(func(st *entity.AppState) {
		require.Len(t, st.Notifications, 2)
		// Newest first
		assert.Equal(t, "second", st.Notifications[0].Text)
		assert.Equal(t, enum.SeverityDanger, st.Notifications[0].Severity)
		assert.Equal(t, "first", st.Notifications[1].Text)
		assert.False(t, st.Notifications[0].Read)
		assert.NotEqual(t, st.Notifications[0].ID, st.Notifications[1].ID)
	})
}

func TestUpdateErrorDropsOutbox(t *testing.T) {
	s, err := Open(newMemoryRepo())
	require.NoError(t, err)

	wantErr := errors.New("validation failed")
	err = s.Update(func(tx *Tx) error {
		tx.Notify("should never appear", enum.SeverityWarning)
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	s.View(func(st *entity.AppState) {
		assert.Empty(t, st.Notifications)
	})
}

func TestUpdatePersistsState(t *testing.T) {
	repo := newMemoryRepo()
	s, err := Open(repo)
	require.NoError(t, err)

	err = s.Update(func(tx *Tx) error {
		tx.AddPart(entity.Part{Name: "Brake pad", Quantity: 10})
		return nil
	})
	require.NoError(t, err)

	// The durable write runs off the critical path
	require.Eventually(t, func() bool {
		data := repo.get(StateKey)
		if data == nil {
			return false
		}
		var st entity.AppState
		if err := json.Unmarshal(data, &st); err != nil {
			return false
		}
		return len(st.Parts) == 1 && st.Parts[0].Name == "Brake pad"
	}, 2*time.Second, 10*time.Millisecond)
}

// gatedRepo blocks every Save until the gate is opened, simulating a slow
// storage backend with writes in flight.
type gatedRepo struct {
	mu   sync.Mutex
	data map[string][]byte
	gate chan struct{}
}

func newGatedRepo() *gatedRepo {
	return &gatedRepo{data: make(map[string][]byte), gate: make(chan struct{})}
}

func (r *gatedRepo) Load(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *gatedRepo) Save(ctx context.Context, key string, data []byte) error {
	<-r.gate
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = data
	return nil
}

func (r *gatedRepo) get(key string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key]
}

func TestPersistenceAppliesWritesInMutationOrder(t *testing.T) {
	repo := newGatedRepo()
	s, err := Open(repo)
	require.NoError(t, err)

	// Mutations pile up while the storage backend is stalled
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.AddPart(entity.Part{Name: "Brake pad", Quantity: 10})
		return nil
	}))
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.AddPart(entity.Part{Name: "Oil filter", Quantity: 5})
		return nil
	}))

	close(repo.gate)

	// However the stalled writes resolve, durable state must settle on the
	// newest mutation, never a stale snapshot
	require.Eventually(t, func() bool {
		data := repo.get(StateKey)
		if data == nil {
			return false
		}
		var st entity.AppState
		if err := json.Unmarshal(data, &st); err != nil {
			return false
		}
		return len(st.Parts) == 2
	}, 2*time.Second, 10*time.Millisecond)

	// And stay there once the queue drains
	time.Sleep(50 * time.Millisecond)
	var st entity.AppState
	require.NoError(t, json.Unmarshal(repo.get(StateKey), &st))
	require.Len(t, st.Parts, 2)
	assert.Equal(t, "Oil filter", st.Parts[1].Name)
}

func TestReplaceSeedsMissingPasswords(t *testing.T) {
	s, err := Open(newMemoryRepo())
	require.NoError(t, err)

	// A restored payload with no password hashes at all
	require.NoError(t, s.Replace(entity.DefaultState()))

	s.View(func(st *entity.AppState) {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.LoginPassword), []byte("1")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.AdminPassword), []byte("1")))
	})
}

func TestReplaceKeepsRestoredPasswords(t *testing.T) {
	s, err := Open(newMemoryRepo())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	restored := entity.DefaultState()
	restored.Settings.LoginPassword = string(hash)
	require.NoError(t, s.Replace(restored))

	s.View(func(st *entity.AppState) {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.LoginPassword), []byte("secret")))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(st.Settings.AdminPassword), []byte("1")))
	})
}

func TestReplaceSwapsStateAndPersists(t *testing.T) {
	repo := newMemoryRepo()
	s, err := Open(repo)
	require.NoError(t, err)

	restored := entity.DefaultState()
	restored.Customers = append(restored.Customers, entity.Customer{Name: "Restored customer"})
	require.NoError(t, s.Replace(restored))

	s.View(func(st *entity.AppState) {
		require.Len(t, st.Customers, 1)
		assert.Equal(t, "Restored customer", st.Customers[0].Name)
	})

	require.Eventually(t, func() bool {
		data := repo.get(StateKey)
		if data == nil {
			return false
		}
		var st entity.AppState
		return json.Unmarshal(data, &st) == nil && len(st.Customers) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
