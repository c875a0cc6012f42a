package entity

import "github.com/shopspring/decimal"

// SummaryMeta tracks one submitted statement pair and its latest run.
type SummaryMeta struct {
	ID        string
	Label     string
	Status    SummaryStatus
	Err       string
	Runs      int
	StartedAt int64
	EndedAt   int64

	Paired    int64
	Confirmed int64
}

// Payload holds the raw uploaded statements a summary is computed from.
//
// It is kept so every run can open fresh sources over the same bytes.
type Payload struct {
	Transactions  []byte
	Confirmations []byte
}

// Result is what a successful run stores next to the meta.
type Result struct {
	Total       decimal.Decimal
	Paired      int64
	Confirmed   int64
	Unconfirmed []Transaction
}

// SummaryFailedEvent is published when a run ends with a summarization error.
type SummaryFailedEvent struct {
	EventID   int64
	SummaryID string
	Run       int
	Reason    string
}
