package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
	"github.com/shandysiswandi/goconfirm/internal/confirm/summary"
)

// csvSource returns a factory that decodes data from the start on every call.
//
// Rows are split into at most two fields. A malformed row ends the sequence
// with an error naming its line.
func csvSource[T any](data []byte, decode func(fields []string) (T, error)) func(context.Context) iter.Seq2[T, error] {
	return func(context.Context) iter.Seq2[T, error] {
		return func(yield func(T, error) bool) {
			var zero T

			reader := csv.NewReader(bytes.NewReader(data))
			reader.TrimLeadingSpace = true
			reader.ReuseRecord = true
			reader.FieldsPerRecord = -1

			for {
				record, err := reader.Read()
				if errors.Is(err, io.EOF) {
					return
				}
				if err != nil {
					yield(zero, fmt.Errorf("read csv: %w", err))
					return
				}

				line, _ := reader.FieldPos(0)
				for i := range record {
					record[i] = strings.TrimSpace(record[i])
				}

				item, err := decode(record)
				if err != nil {
					yield(zero, fmt.Errorf("line %d: %w", line, err))
					return
				}

				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

func transactionSource(data []byte) summary.TransactionSource {
	return csvSource(data, parseTransaction)
}

func confirmationSource(data []byte) summary.ConfirmationSource {
	return csvSource(data, parseConfirmation)
}

// parseTransaction accepts "value" or "reference,value".
func parseTransaction(fields []string) (entity.Transaction, error) {
	var reference, raw string
	switch len(fields) {
	case 1:
		raw = fields[0]
	case 2:
		reference, raw = fields[0], fields[1]
	default:
		return entity.Transaction{}, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("invalid value %q", raw)
	}

	return entity.Transaction{Reference: reference, Value: value}, nil
}

// parseConfirmation accepts "confirmed" or "reference,confirmed".
func parseConfirmation(fields []string) (entity.Confirmation, error) {
	var reference, raw string
	switch len(fields) {
	case 1:
		raw = fields[0]
	case 2:
		reference, raw = fields[0], fields[1]
	default:
		return entity.Confirmation{}, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
	}

	confirmed, err := strconv.ParseBool(raw)
	if err != nil {
		return entity.Confirmation{}, fmt.Errorf("invalid confirmation flag %q", raw)
	}

	return entity.Confirmation{Reference: reference, Confirmed: confirmed}, nil
}
