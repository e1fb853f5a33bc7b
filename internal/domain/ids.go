package domain

// ClientID identifies a client account. It is an opaque identifier: equality
// and ordering only, never arithmetic.
type ClientID uint16

// TransactionID identifies a single deposit or withdrawal. Assumed globally
// unique by the input source.
type TransactionID uint32
