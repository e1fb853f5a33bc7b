package engine

import (
	"github.com/shopspring/decimal"
)

// account is the per-client balance state. The total balance is always
// derived as available + held, never stored.
type account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

func newAccount() *account {
	return &account{
		available: decimal.Zero,
		held:      decimal.Zero,
	}
}

func (a *account) total() decimal.Decimal {
	return a.available.Add(a.held)
}
