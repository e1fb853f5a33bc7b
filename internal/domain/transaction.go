package domain

// Transaction is the closed set of record kinds the engine accepts. Each
// kind is its own struct so that "amount required" is a property of the
// type: dispute-family records simply have no amount field.
type Transaction interface {
	Client() ClientID
	Tx() TransactionID

	// sealed restricts implementations to this package.
	sealed()
}

// Deposit credits the client's available balance.
type Deposit struct {
	ClientID ClientID
	TxID     TransactionID
	Amount   Amount
}

// Withdrawal debits the client's available balance.
type Withdrawal struct {
	ClientID ClientID
	TxID     TransactionID
	Amount   Amount
}

// Dispute claims a prior deposit, moving its amount from available to held.
type Dispute struct {
	ClientID ClientID
	TxID     TransactionID
}

// Resolve cancels a dispute, returning held funds to available.
type Resolve struct {
	ClientID ClientID
	TxID     TransactionID
}

// Chargeback finalizes a dispute against the depositor, removing the held
// funds and locking the account.
type Chargeback struct {
	ClientID ClientID
	TxID     TransactionID
}

func (d Deposit) Client() ClientID { return d.ClientID }

func (d Deposit) Tx() TransactionID { return d.TxID }

func (d Deposit) sealed() {}

func (w Withdrawal) Client() ClientID { return w.ClientID }

func (w Withdrawal) Tx() TransactionID { return w.TxID }

func (w Withdrawal) sealed() {}

func (d Dispute) Client() ClientID { return d.ClientID }

func (d Dispute) Tx() TransactionID { return d.TxID }

func (d Dispute) sealed() {}

func (r Resolve) Client() ClientID { return r.ClientID }

func (r Resolve) Tx() TransactionID { return r.TxID }

func (r Resolve) sealed() {}

func (c Chargeback) Client() ClientID { return c.ClientID }

func (c Chargeback) Tx() TransactionID { return c.TxID }

func (c Chargeback) sealed() {}
