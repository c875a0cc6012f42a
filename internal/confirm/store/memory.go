package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/goconfirm/internal/confirm/entity"
	"github.com/shandysiswandi/goconfirm/internal/pkg/pkgerror"
)

// InMemoryStore keeps summaries, their payloads and results in process memory.
type InMemoryStore struct {
	mu        sync.RWMutex
	summaries map[string]*summaryRecord
}

type summaryRecord struct {
	mu      sync.RWMutex
	meta    entity.SummaryMeta
	payload entity.Payload
	result  entity.Result
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		summaries: make(map[string]*summaryRecord),
	}
}

func (s *InMemoryStore) CreateSummary(_ context.Context, meta entity.SummaryMeta, payload entity.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.summaries[meta.ID]; exists {
		return pkgerror.NewBusiness("summary already exists", pkgerror.CodeConflict)
	}

	s.summaries[meta.ID] = &summaryRecord{
		meta:    meta,
		payload: payload,
	}

	return nil
}

// UpdateMeta applies fn to the stored meta atomically; when fn fails the meta is left unchanged.
func (s *InMemoryStore) UpdateMeta(_ context.Context, summaryID string, fn func(meta *entity.SummaryMeta) error) error {
	rec, err := s.get(summaryID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	next := rec.meta
	if err := fn(&next); err != nil {
		return err
	}
	rec.meta = next

	return nil
}

func (s *InMemoryStore) SaveResult(_ context.Context, summaryID string, result entity.Result) error {
	rec, err := s.get(summaryID)
	if err != nil {
		return err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.result = result

	return nil
}

func (s *InMemoryStore) GetSummary(_ context.Context, summaryID string) (entity.SummaryMeta, entity.Result, error) {
	rec, err := s.get(summaryID)
	if err != nil {
		return entity.SummaryMeta{}, entity.Result{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.meta, rec.result, nil
}

func (s *InMemoryStore) GetPayload(_ context.Context, summaryID string) (entity.Payload, error) {
	rec, err := s.get(summaryID)
	if err != nil {
		return entity.Payload{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return rec.payload, nil
}

func (s *InMemoryStore) ListUnconfirmed(_ context.Context, summaryID string, page, pageSize int) ([]entity.Transaction, int, entity.SummaryMeta, error) {
	rec, err := s.get(summaryID)
	if err != nil {
		return nil, 0, entity.SummaryMeta{}, err
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	all := rec.result.Unconfirmed
	total := len(all)
	if page < 1 || pageSize < 1 {
		return []entity.Transaction{}, total, rec.meta, nil
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	items := make([]entity.Transaction, end-start)
	copy(items, all[start:end])

	return items, total, rec.meta, nil
}

func (s *InMemoryStore) get(summaryID string) (*summaryRecord, error) {
	s.mu.RLock()
	rec, ok := s.summaries[summaryID]
	s.mu.RUnlock()
	if !ok {
		return nil, pkgerror.ErrNotFound
	}

	return rec, nil
}
