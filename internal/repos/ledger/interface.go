// Package ledger defines the deposit history the dispute flow operates on.
// Only deposits are recorded; withdrawals leave no disputable trace.
package ledger

import (
	"github.com/mkravchenko/payments-engine/internal/domain"
)

// DepositRecord is the stored state of one deposit: who made it, for how
// much, and whether it is currently under dispute.
type DepositRecord struct {
	Client   domain.ClientID
	Amount   domain.Amount
	Disputed bool
}

// Ledger remembers every deposit processed during a run, keyed by
// transaction id. Entries are never deleted: a chargeback leaves the record
// in place with its disputed flag set.
//
// State validation (existence, ownership, dispute state) is the caller's
// responsibility; MarkDisputed and MarkResolved are no-ops for unknown ids.
type Ledger interface {
	// RecordDeposit stores a fresh, undisputed record under tx. It returns
	// domain.ErrDuplicateTransaction if tx is already present.
	RecordDeposit(tx domain.TransactionID, client domain.ClientID, amount domain.Amount) error

	// Lookup returns the record stored under tx, if any.
	Lookup(tx domain.TransactionID) (DepositRecord, bool)

	MarkDisputed(tx domain.TransactionID)
	MarkResolved(tx domain.TransactionID)
}
