package store

import (
	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

// Tx gives a mutation callback access to the entity collections and to the
// notification outbox. Each collection exposes plain create/update/delete
// primitives with no cross-entity knowledge; coupling them is the job of the
// ledger service.
type Tx struct {
	state  *entity.AppState
	outbox []pendingNotification
}

type pendingNotification struct {
	text     string
	severity enum.Severity
}

// State exposes the raw state for read access inside a transaction
func (tx *Tx) State() *entity.AppState {
	return tx.state
}
