package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
	"github.com/shandysiswandi/goconfirm/internal/confirm/summary"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkglog"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkguid"
)

var errSummaryRunning = errors.New("summary is still running")

type Store interface {
	CreateSummary(ctx context.Context, meta entity.SummaryMeta, payload entity.Payload) error
	UpdateMeta(ctx context.Context, summaryID string, fn func(meta *entity.SummaryMeta) error) error
	SaveResult(ctx context.Context, summaryID string, result entity.Result) error
	GetSummary(ctx context.Context, summaryID string) (entity.SummaryMeta, entity.Result, error)
	GetPayload(ctx context.Context, summaryID string) (entity.Payload, error)
	ListUnconfirmed(ctx context.Context, summaryID string, page, pageSize int) ([]entity.Transaction, int, entity.SummaryMeta, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.SummaryFailedEvent) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store   Store
	Events  EventPublisher
	Runner  Runner
	Clock   Clock
	ID      pkguid.StringID
	EventID pkguid.NumberID
	RootCtx context.Context

	// MaxPayloadBytes bounds each uploaded statement; zero disables the check.
	MaxPayloadBytes int64
}

type Usecase struct {
	store      Store
	events     EventPublisher
	runner     Runner
	clock      Clock
	id         pkguid.StringID
	eventID    pkguid.NumberID
	rootCtx    context.Context
	maxPayload int64
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store:      dep.Store,
		events:     dep.Events,
		runner:     dep.Runner,
		clock:      clock,
		id:         dep.ID,
		eventID:    dep.EventID,
		rootCtx:    root,
		maxPayload: dep.MaxPayloadBytes,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Submit stores a statement pair and schedules its first summarization run.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if u.store == nil || u.id == nil || u.runner == nil {
		return SubmitResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	if err := validateInput(ctx, in); err != nil {
		return SubmitResult{}, err
	}

	if u.maxPayload > 0 && (int64(len(in.Transactions)) > u.maxPayload || int64(len(in.Confirmations)) > u.maxPayload) {
		return SubmitResult{}, pkgerror.NewTooLarge(u.maxPayload)
	}

	summaryID := u.id.Generate()
	if err := u.store.CreateSummary(ctx, entity.SummaryMeta{
		ID:     summaryID,
		Label:  in.Label,
		Status: entity.SummaryStatusQueued,
	}, entity.Payload{
		Transactions:  in.Transactions,
		Confirmations: in.Confirmations,
	}); err != nil {
		return SubmitResult{}, normalizeErr(err)
	}

	u.schedule(ctx, summaryID)

	return SubmitResult{SummaryID: summaryID, Status: entity.SummaryStatusQueued}, nil
}

// Recompute runs the summarizer again over the stored statements.
//
// It is rejected while a previous run has not settled.
func (u *Usecase) Recompute(ctx context.Context, summaryID string) (SubmitResult, error) {
	if summaryID == "" {
		return SubmitResult{}, pkgerror.NewInvalidInput(errors.New("summary_id is required"))
	}

	if err := u.store.UpdateMeta(ctx, summaryID, func(meta *entity.SummaryMeta) error {
		if !meta.Status.Settled() {
			return errSummaryRunning
		}
		meta.Status = entity.SummaryStatusQueued
		return nil
	}); err != nil {
		return SubmitResult{}, mapStoreErr(err)
	}

	u.schedule(ctx, summaryID)

	return SubmitResult{SummaryID: summaryID, Status: entity.SummaryStatusQueued}, nil
}

func (u *Usecase) Summary(ctx context.Context, summaryID string) (SummaryResult, error) {
	if summaryID == "" {
		return SummaryResult{}, pkgerror.NewInvalidInput(errors.New("summary_id is required"))
	}

	meta, result, err := u.store.GetSummary(ctx, summaryID)
	if err != nil {
		return SummaryResult{}, mapStoreErr(err)
	}

	return SummaryResult{
		SummaryID: meta.ID,
		Label:     meta.Label,
		Status:    meta.Status,
		Err:       meta.Err,
		Runs:      meta.Runs,
		Total:     result.Total,
		Paired:    meta.Paired,
		Confirmed: meta.Confirmed,
		StartedAt: meta.StartedAt,
		EndedAt:   meta.EndedAt,
	}, nil
}

// Unconfirmed pages through the transactions whose positional confirmation was negative.
func (u *Usecase) Unconfirmed(ctx context.Context, summaryID string, page, pageSize int) (UnconfirmedResult, error) {
	if err := validateInput(ctx, pageQuery{SummaryID: summaryID, Page: page, PageSize: pageSize}); err != nil {
		return UnconfirmedResult{}, err
	}

	txs, total, meta, err := u.store.ListUnconfirmed(ctx, summaryID, page, pageSize)
	if err != nil {
		return UnconfirmedResult{}, mapStoreErr(err)
	}

	return UnconfirmedResult{
		SummaryID:    summaryID,
		Status:       meta.Status,
		Transactions: txs,
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
	}, nil
}

func (u *Usecase) schedule(reqCtx context.Context, summaryID string) {
	ctx := pkglog.DetachCorrelationID(u.rootCtx, reqCtx)
	u.runner.Go(ctx, func(ctx context.Context) error {
		if err := u.process(ctx, summaryID); err != nil {
			slog.ErrorContext(ctx, "summary processing failed", "summary_id", summaryID, "error", err)
			return err
		}
		return nil
	})
}

// process runs one summarization and records its single outcome.
//
// A summarization error is recorded on the summary and is not returned;
// only storage failures are.
func (u *Usecase) process(ctx context.Context, summaryID string) error {
	payload, err := u.store.GetPayload(ctx, summaryID)
	if err != nil {
		return err
	}

	var run int
	startedAt := u.clock.Now().Unix()
	if err := u.store.UpdateMeta(ctx, summaryID, func(meta *entity.SummaryMeta) error {
		meta.Runs++
		meta.Status = entity.SummaryStatusProcessing
		meta.StartedAt = startedAt
		meta.EndedAt = 0
		meta.Err = ""
		run = meta.Runs
		return nil
	}); err != nil {
		return err
	}

	summarizer := summary.New(transactionSource(payload.Transactions), confirmationSource(payload.Confirmations))
	report, sumErr := summarizer.Summarize(ctx)

	status := entity.SummaryStatusDone
	errMsg := ""
	result := entity.Result{
		Total:       report.Total,
		Paired:      report.Paired,
		Confirmed:   report.Confirmed,
		Unconfirmed: report.Unconfirmed,
	}
	if sumErr != nil {
		status = entity.SummaryStatusFailed
		errMsg = sumErr.Error()
		result = entity.Result{}
		slog.WarnContext(ctx, "summarization failed", "summary_id", summaryID, "run", run, "error", sumErr)
		u.publishFailure(ctx, summaryID, run, errMsg)
	}

	if err := u.store.SaveResult(ctx, summaryID, result); err != nil {
		return err
	}

	endedAt := u.clock.Now().Unix()
	return u.store.UpdateMeta(ctx, summaryID, func(meta *entity.SummaryMeta) error {
		meta.Status = status
		meta.Err = errMsg
		meta.EndedAt = endedAt
		meta.Paired = result.Paired
		meta.Confirmed = result.Confirmed
		return nil
	})
}

func (u *Usecase) publishFailure(ctx context.Context, summaryID string, run int, reason string) {
	if u.events == nil {
		return
	}

	event := entity.SummaryFailedEvent{
		SummaryID: summaryID,
		Run:       run,
		Reason:    reason,
	}
	if u.eventID != nil {
		event.EventID = u.eventID.Generate()
	}

	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "summary_id", summaryID, "event_id", event.EventID, "error", err)
	}
}

func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		return pkgerror.NewBusiness("summary not found", pkgerror.CodeNotFound)
	case errors.Is(err, errSummaryRunning):
		return pkgerror.NewBusiness(errSummaryRunning.Error(), pkgerror.CodeConflict)
	default:
		return normalizeErr(err)
	}
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
