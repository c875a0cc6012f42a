package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
	"github.com/shandysiswandi/goconfirm/internal/confirm/usecase"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgrouter"
)

const (
	partTransactions  = "transactions"
	partConfirmations = "confirmations"
	partLabel         = "label"

	maxLabelBytes     = 1024
	multipartOverhead = 64 << 10
)

type HTTPEndpoint struct {
	uc         uc
	maxPayload int64
}

func (h *HTTPEndpoint) Submit(ctx context.Context, r *http.Request) (any, error) {
	in, err := h.readStatements(r)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Submit(ctx, in)
	if err != nil {
		return nil, err
	}

	return SubmitResponse{SummaryID: result.SummaryID, Status: result.Status}, nil
}

func (h *HTTPEndpoint) Recompute(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Recompute(ctx, pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return SubmitResponse{SummaryID: result.SummaryID, Status: result.Status}, nil
}

func (h *HTTPEndpoint) Summary(ctx context.Context, _ *http.Request) (any, error) {
	result, err := h.uc.Summary(ctx, pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return SummaryResponse{
		SummaryID: result.SummaryID,
		Label:     result.Label,
		Status:    result.Status,
		Total:     result.Total,
		Paired:    result.Paired,
		Confirmed: result.Confirmed,
		Runs:      result.Runs,
		Error:     result.Err,
		StartedAt: result.StartedAt,
		EndedAt:   result.EndedAt,
	}, nil
}

func (h *HTTPEndpoint) Unconfirmed(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Unconfirmed(ctx, pkgrouter.GetParam(ctx, "id"), page, pageSize)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, toHTTPTransaction(tx))
	}

	return UnconfirmedResponse{
		SummaryID:    result.SummaryID,
		Status:       result.Status,
		Transactions: transactions,
		page:         result.Page,
		pageSize:     result.PageSize,
		total:        result.Total,
	}, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		pageSize = min(value, 100)
	}

	return page, pageSize, nil
}

func toHTTPTransaction(tx entity.Transaction) Transaction {
	return Transaction{
		Reference: tx.Reference,
		Value:     tx.Value,
	}
}

// readStatements reads both statement files and the optional label from a
// multipart body. Both files must be present; either may be empty.
func (h *HTTPEndpoint) readStatements(r *http.Request) (usecase.SubmitInput, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return usecase.SubmitInput{}, pkgerror.NewInvalidFormat()
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return usecase.SubmitInput{}, pkgerror.NewInvalidFormat()
	}

	var in usecase.SubmitInput
	var haveTxs, haveConfs bool
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return usecase.SubmitInput{}, readErr(err)
		}

		switch part.FormName() {
		case partTransactions:
			in.Transactions, err = readLimited(part, h.maxPayload)
			haveTxs = true
		case partConfirmations:
			in.Confirmations, err = readLimited(part, h.maxPayload)
			haveConfs = true
		case partLabel:
			var label []byte
			label, err = readLimited(part, maxLabelBytes)
			in.Label = strings.TrimSpace(string(label))
		}
		_ = part.Close()
		if err != nil {
			return usecase.SubmitInput{}, err
		}
	}

	if !haveTxs {
		return usecase.SubmitInput{}, pkgerror.NewInvalidInput(errors.New("transactions file is required"))
	}
	if !haveConfs {
		return usecase.SubmitInput{}, pkgerror.NewInvalidInput(errors.New("confirmations file is required"))
	}

	return in, nil
}

func readLimited(src io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		data, err := io.ReadAll(src)
		if err != nil {
			return nil, readErr(err)
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, readErr(err)
	}
	if int64(len(data)) > limit {
		return nil, pkgerror.NewTooLarge(limit)
	}

	return data, nil
}

func readErr(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return pkgerror.NewTooLarge(maxErr.Limit)
	}
	return pkgerror.NewInvalidFormat()
}
