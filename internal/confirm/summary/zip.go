package summary

import (
	"context"
	"iter"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

type pair struct {
	transaction  entity.Transaction
	confirmation entity.Confirmation
}

// zip pairs txs and confs by position and stops at the shorter one.
//
// The first error from either side, or from ctx, is yielded once and ends
// the sequence.
func zip(
	ctx context.Context,
	txs iter.Seq2[entity.Transaction, error],
	confs iter.Seq2[entity.Confirmation, error],
) iter.Seq2[pair, error] {
	return func(yield func(pair, error) bool) {
		nextTx, stopTx := iter.Pull2(txs)
		defer stopTx()
		nextConf, stopConf := iter.Pull2(confs)
		defer stopConf()

		for {
			if err := ctx.Err(); err != nil {
				yield(pair{}, err)
				return
			}

			tx, err, ok := nextTx()
			if !ok {
				return
			}
			if err != nil {
				yield(pair{}, err)
				return
			}

			conf, err, ok := nextConf()
			if !ok {
				return
			}
			if err != nil {
				yield(pair{}, err)
				return
			}

			if !yield(pair{transaction: tx, confirmation: conf}, nil) {
				return
			}
		}
	}
}
