package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

func TestFromSliceIsReusable(t *testing.T) {
	source := FromSlice([]int{1, 2, 3})

	for range 2 {
		var got []int
		for v, err := range source(context.Background()) {
			require.NoError(t, err)
			got = append(got, v)
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	}
}

func TestAsyncYieldsInEmissionOrder(t *testing.T) {
	source := Async(func(ctx context.Context, emit func(int) error) error {
		for i := range 5 {
			if err := emit(i); err != nil {
				return err
			}
		}
		return nil
	})

	var got []int
	for v, err := range source(context.Background()) {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestAsyncYieldsProducerErrorLast(t *testing.T) {
	boom := errors.New("network down")
	source := Async(func(ctx context.Context, emit func(int) error) error {
		if err := emit(7); err != nil {
			return err
		}
		return boom
	})

	var got []int
	var gotErr error
	for v, err := range source(context.Background()) {
		if err != nil {
			gotErr = err
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []int{7}, got)
	assert.ErrorIs(t, gotErr, boom)
}

func TestAsyncStopsProducerWhenConsumerStops(t *testing.T) {
	exited := make(chan error, 1)
	source := Async(func(ctx context.Context, emit func(int) error) error {
		for i := 0; ; i++ {
			if err := emit(i); err != nil {
				exited <- err
				return err
			}
		}
	})

	for v, err := range source(context.Background()) {
		require.NoError(t, err)
		if v == 2 {
			break
		}
	}

	select {
	case err := <-exited:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("producer still running after consumer stopped")
	}
}

func TestAsyncRecoversProducerPanic(t *testing.T) {
	source := Async(func(context.Context, func(int) error) error {
		panic("kaboom")
	})

	var gotErr error
	for _, err := range source(context.Background()) {
		gotErr = err
	}

	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), "kaboom")
}

func TestSummarizerWithAsyncSources(t *testing.T) {
	values := []int64{10, 20, 30}
	flags := []bool{true, false, true}

	transactions := Async(func(ctx context.Context, emit func(entity.Transaction) error) error {
		for _, v := range values {
			if err := emit(entity.Transaction{Value: decimal.NewFromInt(v)}); err != nil {
				return err
			}
		}
		return nil
	})
	confirmations := Async(func(ctx context.Context, emit func(entity.Confirmation) error) error {
		for _, f := range flags {
			if err := emit(entity.Confirmation{Confirmed: f}); err != nil {
				return err
			}
		}
		return nil
	})

	s := New(transactions, confirmations)
	for range 2 {
		total, err := s.SummarizeConfirmedTransactions(context.Background())
		require.NoError(t, err)
		requireTotal(t, "40", total)
	}
}

func TestSummarizerWithFailingAsyncSource(t *testing.T) {
	transactions := Async(func(ctx context.Context, emit func(entity.Transaction) error) error {
		return errors.New("network down")
	})

	total, err := New(transactions, FromSlice(confs(true))).SummarizeConfirmedTransactions(context.Background())

	var serr *SummarizationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "network down", serr.Error())
	assert.True(t, total.IsZero())
}
