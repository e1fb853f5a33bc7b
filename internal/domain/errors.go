package domain

import "errors"

var (
	// ErrInvalidAmount is returned when constructing an Amount from a value
	// that is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrDuplicateTransaction is returned when a deposit reuses a
	// transaction id already present in the ledger.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the
	// available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountLocked is returned for any transaction targeting an account
	// locked by a prior chargeback.
	ErrAccountLocked = errors.New("account is locked")
)
