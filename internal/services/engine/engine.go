// Package engine applies a sequence of transaction records to a set of
// client accounts and produces the final per-client summaries.
package engine

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mkravchenko/payments-engine/internal/domain"
	"github.com/mkravchenko/payments-engine/internal/repos/ledger"
)

// Summary is one output row: the final state of a client account.
type Summary struct {
	Client    domain.ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Engine applies records one at a time, in arrival order. It exclusively
// owns all account state and the deposit ledger for the duration of a run.
// Engine is not safe for concurrent use; correctness depends on strict
// sequential application, so callers serialize access.
type Engine struct {
	accounts map[domain.ClientID]*account
	deposits ledger.Ledger
	logger   *slog.Logger
}

func New(deposits ledger.Ledger, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		accounts: make(map[domain.ClientID]*account),
		deposits: deposits,
		logger:   logger,
	}
}

// Process applies a single record to the target client's account, creating
// the account on first sight.
//
// An error is returned only for the reportable conditions: locked account,
// duplicate deposit id, insufficient funds. A dispute, resolve or
// chargeback referencing an unknown deposit, another client's deposit, or a
// deposit in the wrong dispute state is dropped without error — upstream
// streams may legitimately reference transactions this engine never saw.
// Every outcome leaves the engine ready for the next record.
func (e *Engine) Process(record domain.Transaction) error {
	acct := e.account(record.Client())

	if acct.locked {
		return fmt.Errorf("client %d tx %d: %w", record.Client(), record.Tx(), domain.ErrAccountLocked)
	}

	switch rec := record.(type) {
	case domain.Deposit:
		return e.deposit(acct, rec)
	case domain.Withdrawal:
		return e.withdraw(acct, rec)
	case domain.Dispute:
		e.dispute(acct, rec)
	case domain.Resolve:
		e.resolve(acct, rec)
	case domain.Chargeback:
		e.chargeback(acct, rec)
	}

	return nil
}

// Summaries returns one row per client seen, sorted by client id.
func (e *Engine) Summaries() []Summary {
	out := make([]Summary, 0, len(e.accounts))
	for client, acct := range e.accounts {
		out = append(out, summarize(client, acct))
	}

	slices.SortFunc(out, func(a, b Summary) int {
		return cmp.Compare(a.Client, b.Client)
	})

	return out
}

// Summary returns the current state of one client's account.
func (e *Engine) Summary(client domain.ClientID) (Summary, bool) {
	acct, ok := e.accounts[client]
	if !ok {
		return Summary{}, false
	}

	return summarize(client, acct), true
}

func summarize(client domain.ClientID, acct *account) Summary {
	return Summary{
		Client:    client,
		Available: acct.available,
		Held:      acct.held,
		Total:     acct.total(),
		Locked:    acct.locked,
	}
}

func (e *Engine) account(client domain.ClientID) *account {
	acct, ok := e.accounts[client]
	if !ok {
		acct = newAccount()
		e.accounts[client] = acct
	}

	return acct
}

func (e *Engine) deposit(acct *account, rec domain.Deposit) error {
	err := e.deposits.RecordDeposit(rec.TxID, rec.ClientID, rec.Amount)
	if err != nil {
		return fmt.Errorf("deposit for client %d: %w", rec.ClientID, err)
	}

	acct.available = acct.available.Add(rec.Amount.Decimal())

	return nil
}

func (e *Engine) withdraw(acct *account, rec domain.Withdrawal) error {
	amount := rec.Amount.Decimal()

	// Held funds are not spendable: the check is against available, not
	// total. Failure leaves the account untouched.
	if acct.available.LessThan(amount) {
		return fmt.Errorf("withdrawal tx %d for client %d: %w", rec.TxID, rec.ClientID, domain.ErrInsufficientFunds)
	}

	acct.available = acct.available.Sub(amount)

	return nil
}

func (e *Engine) dispute(acct *account, rec domain.Dispute) {
	dep, ok := e.referenced(rec, false)
	if !ok {
		return
	}

	amount := dep.Amount.Decimal()

	// Funds only move between available and held; the total is unchanged.
	// No solvency pre-check: available may go negative here if the deposit
	// was already spent.
	acct.available = acct.available.Sub(amount)
	acct.held = acct.held.Add(amount)
	e.deposits.MarkDisputed(rec.TxID)
}

func (e *Engine) resolve(acct *account, rec domain.Resolve) {
	dep, ok := e.referenced(rec, true)
	if !ok {
		return
	}

	amount := dep.Amount.Decimal()

	acct.held = acct.held.Sub(amount)
	acct.available = acct.available.Add(amount)
	e.deposits.MarkResolved(rec.TxID)
}

func (e *Engine) chargeback(acct *account, rec domain.Chargeback) {
	dep, ok := e.referenced(rec, true)
	if !ok {
		return
	}

	// The held amount leaves the account entirely and the account locks.
	// The ledger entry stays disputed; the lock makes it unreachable anyway.
	acct.held = acct.held.Sub(dep.Amount.Decimal())
	acct.locked = true
}

// referenced resolves the deposit a dispute-family record points at. It
// returns false when the reference is unknown, belongs to another client,
// or is not in the wanted dispute state; such records are dropped silently.
func (e *Engine) referenced(rec domain.Transaction, wantDisputed bool) (ledger.DepositRecord, bool) {
	dep, ok := e.deposits.Lookup(rec.Tx())
	if !ok {
		e.logger.Debug("dropping reference to unknown deposit",
			"client", rec.Client(), "tx", rec.Tx())

		return ledger.DepositRecord{}, false
	}

	if dep.Client != rec.Client() {
		e.logger.Debug("dropping reference to another client's deposit",
			"client", rec.Client(), "tx", rec.Tx(), "owner", dep.Client)

		return ledger.DepositRecord{}, false
	}

	if dep.Disputed != wantDisputed {
		e.logger.Debug("dropping reference to deposit in wrong dispute state",
			"client", rec.Client(), "tx", rec.Tx(), "disputed", dep.Disputed)

		return ledger.DepositRecord{}, false
	}

	return dep, true
}
