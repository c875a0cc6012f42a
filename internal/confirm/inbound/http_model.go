package inbound

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
)

type Transaction struct {
	Reference string          `json:"reference,omitempty"`
	Value     decimal.Decimal `json:"value"`
}

type SubmitResponse struct {
	SummaryID string               `json:"summary_id"`
	Status    entity.SummaryStatus `json:"status"`
}

func (SubmitResponse) StatusCode() int {
	return http.StatusAccepted
}

func (SubmitResponse) Message() string {
	return "summary queued"
}

type SummaryResponse struct {
	SummaryID string               `json:"summary_id"`
	Label     string               `json:"label,omitempty"`
	Status    entity.SummaryStatus `json:"status"`
	Total     decimal.Decimal      `json:"total"`
	Paired    int64                `json:"paired"`
	Confirmed int64                `json:"confirmed"`
	Runs      int                  `json:"runs"`
	Error     string               `json:"error,omitempty"`
	StartedAt int64                `json:"started_at,omitempty"`
	EndedAt   int64                `json:"ended_at,omitempty"`
}

type UnconfirmedResponse struct {
	SummaryID    string               `json:"summary_id"`
	Status       entity.SummaryStatus `json:"status"`
	Transactions []Transaction        `json:"transactions"`
	page         int
	pageSize     int
	total        int
}

func (r UnconfirmedResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}
