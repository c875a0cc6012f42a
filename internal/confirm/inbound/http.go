package inbound

import (
	"context"

	"github.com/shandysiswandi/goconfirm/internal/confirm/usecase"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgrouter"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (usecase.SubmitResult, error)
	Recompute(ctx context.Context, summaryID string) (usecase.SubmitResult, error)
	Summary(ctx context.Context, summaryID string) (usecase.SummaryResult, error)
	Unconfirmed(ctx context.Context, summaryID string, page, pageSize int) (usecase.UnconfirmedResult, error)
}

// RegisterHTTPEndpoint mounts the summary API; maxPayload bounds each uploaded file.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, maxPayload int64) {
	end := &HTTPEndpoint{uc: uc, maxPayload: maxPayload}

	r.POST("/summaries", end.Submit, pkgrouter.MaxBodyBytes(requestLimit(maxPayload)))
	r.GET("/summaries/:id", end.Summary)
	r.POST("/summaries/:id/recompute", end.Recompute)
	r.GET("/summaries/:id/unconfirmed", end.Unconfirmed) // ?page=&page_size=
}

// requestLimit bounds the whole multipart body: two files, the label and framing.
func requestLimit(maxPayload int64) int64 {
	if maxPayload <= 0 {
		return 0
	}
	return 2*maxPayload + maxLabelBytes + multipartOverhead
}
