package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

// SubmitInput is a statement pair uploaded for summarization.
type SubmitInput struct {
	Label         string `name:"label" validate:"omitempty,max=64"`
	Transactions  []byte
	Confirmations []byte
}

type SubmitResult struct {
	SummaryID string
	Status    entity.SummaryStatus
}

type SummaryResult struct {
	SummaryID string
	Label     string
	Status    entity.SummaryStatus
	Err       string
	Runs      int
	Total     decimal.Decimal
	Paired    int64
	Confirmed int64
	StartedAt int64
	EndedAt   int64
}

type UnconfirmedResult struct {
	SummaryID    string
	Status       entity.SummaryStatus
	Transactions []entity.Transaction
	Page         int
	PageSize     int
	Total        int
}

type pageQuery struct {
	SummaryID string `name:"summary_id" validate:"required"`
	Page      int    `name:"page" validate:"min=1"`
	PageSize  int    `name:"page_size" validate:"min=1,max=100"`
}
