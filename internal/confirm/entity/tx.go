package entity

import "github.com/shopspring/decimal"

// Transaction is one externally produced transaction event.
//
// Reference is informational; pairing with confirmations is positional.
type Transaction struct {
	Reference string
	Value     decimal.Decimal
}

// Confirmation is the confirmation event at the same position as a Transaction.
type Confirmation struct {
	Reference string
	Confirmed bool
}
