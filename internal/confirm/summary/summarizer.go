package summary

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

var (
	errNoTransactions  = errors.New("transaction source returned no sequence")
	errNoConfirmations = errors.New("confirmation source returned no sequence")
)

// TransactionSource returns a fresh, ordered, finite transaction sequence on every call.
type TransactionSource func(ctx context.Context) iter.Seq2[entity.Transaction, error]

// ConfirmationSource returns a fresh, ordered, finite confirmation sequence on every call.
type ConfirmationSource func(ctx context.Context) iter.Seq2[entity.Confirmation, error]

// Report is the outcome of a successful run.
type Report struct {
	Total       decimal.Decimal
	Paired      int64
	Confirmed   int64
	Unconfirmed []entity.Transaction
}

// Summarizer computes the total value of confirmed transactions.
type Summarizer struct {
	transactions  TransactionSource
	confirmations ConfirmationSource
}

func New(transactions TransactionSource, confirmations ConfirmationSource) *Summarizer {
	return &Summarizer{
		transactions:  transactions,
		confirmations: confirmations,
	}
}

// SummarizeConfirmedTransactions returns the sum of the values of all
// transactions whose positional confirmation is positive.
func (s *Summarizer) SummarizeConfirmedTransactions(ctx context.Context) (decimal.Decimal, error) {
	report, err := s.Summarize(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	return report.Total, nil
}

// Summarize runs the pipeline and also reports how many pairs were formed
// and which transactions were paired with a negative confirmation.
//
// Pairing stops at the end of the shorter sequence; the rest of the longer
// one is never read.
func (s *Summarizer) Summarize(ctx context.Context) (report Report, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			report = Report{}
			err = wrap(fmt.Errorf("summarization panicked: %v", rvr))
		}
	}()

	if s.transactions == nil {
		return Report{}, wrap(errNoTransactions)
	}
	if s.confirmations == nil {
		return Report{}, wrap(errNoConfirmations)
	}

	txs := s.transactions(ctx)
	if txs == nil {
		return Report{}, wrap(errNoTransactions)
	}
	confs := s.confirmations(ctx)
	if confs == nil {
		return Report{}, wrap(errNoConfirmations)
	}

	acc := Report{Total: decimal.Zero}
	for p, err := range zip(ctx, txs, confs) {
		if err != nil {
			return Report{}, wrap(err)
		}

		acc.Paired++
		if !p.confirmation.Confirmed {
			acc.Unconfirmed = append(acc.Unconfirmed, p.transaction)
			continue
		}

		acc.Confirmed++
		acc.Total = acc.Total.Add(p.transaction.Value)
	}

	return acc, nil
}
