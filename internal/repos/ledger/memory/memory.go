// Package memory provides the in-memory Ledger implementation. Account and
// deposit state live only for the duration of a run, so a map is the whole
// store.
package memory

import (
	"fmt"

	"github.com/mkravchenko/payments-engine/internal/domain"
	"github.com/mkravchenko/payments-engine/internal/repos/ledger"
)

type Ledger struct {
	deposits map[domain.TransactionID]*ledger.DepositRecord
}

func New() *Ledger {
	return &Ledger{
		deposits: make(map[domain.TransactionID]*ledger.DepositRecord),
	}
}

func (l *Ledger) RecordDeposit(tx domain.TransactionID, client domain.ClientID, amount domain.Amount) error {
	_, ok := l.deposits[tx]
	if ok {
		return fmt.Errorf("record deposit %d: %w", tx, domain.ErrDuplicateTransaction)
	}

	l.deposits[tx] = &ledger.DepositRecord{
		Client: client,
		Amount: amount,
	}

	return nil
}

func (l *Ledger) Lookup(tx domain.TransactionID) (ledger.DepositRecord, bool) {
	record, ok := l.deposits[tx]
	if !ok {
		return ledger.DepositRecord{}, false
	}

	return *record, true
}

func (l *Ledger) MarkDisputed(tx domain.TransactionID) {
	record, ok := l.deposits[tx]
	if ok {
		record.Disputed = true
	}
}

func (l *Ledger) MarkResolved(tx domain.TransactionID) {
	record, ok := l.deposits[tx]
	if ok {
		record.Disputed = false
	}
}
