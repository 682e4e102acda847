package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/interview-odds/internal/types"
)

// MemoryStore is an in-process store with the same create-once, read-many contract as DB.
// Records are copied on the way in and out so callers can never mutate stored state.
type MemoryStore struct {
	mu       sync.RWMutex
	matches  map[uuid.UUID]*types.MatchResult
	feedback map[uuid.UUID]*types.MatchFeedback
	points   []types.TrainingDataPoint
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches:  make(map[uuid.UUID]*types.MatchResult),
		feedback: make(map[uuid.UUID]*types.MatchFeedback),
	}
}

// CreateMatch stores a match result.
func (s *MemoryStore) CreateMatch(_ context.Context, m *types.MatchResult) error {
	stored, err := copyMatch(m)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[m.ID]; ok {
		return fmt.Errorf("match %s: %w", m.ID, ErrDuplicate)
	}
	s.matches[m.ID] = stored
	return nil
}

// GetMatch returns the match with id, or (nil, nil) if there is none.
func (s *MemoryStore) GetMatch(_ context.Context, id uuid.UUID) (*types.MatchResult, error) {
	s.mu.RLock()
	m, ok := s.matches[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return copyMatch(m)
}

// CreateFeedback stores a feedback record. The referenced match must exist.
func (s *MemoryStore) CreateFeedback(_ context.Context, f *types.MatchFeedback) error {
	stored := *f

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[f.MatchID]; !ok {
		return fmt.Errorf("feedback references unknown match %s", f.MatchID)
	}
	if _, ok := s.feedback[f.ID]; ok {
		return fmt.Errorf("feedback %s: %w", f.ID, ErrDuplicate)
	}
	s.feedback[f.ID] = &stored
	return nil
}

// GetFeedback returns the feedback with id, or (nil, nil) if there is none.
func (s *MemoryStore) GetFeedback(_ context.Context, id uuid.UUID) (*types.MatchFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.feedback[id]
	if !ok {
		return nil, nil
	}
	out := *f
	return &out, nil
}

// AppendTrainingPoint adds a point to the training corpus.
func (s *MemoryStore) AppendTrainingPoint(_ context.Context, p *types.TrainingDataPoint) error {
	stored, err := copyPoint(p)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, stored)
	return nil
}

// RecordFeedback stores a feedback record and its training point under one lock.
// Either both are stored or neither is.
func (s *MemoryStore) RecordFeedback(_ context.Context, f *types.MatchFeedback, p *types.TrainingDataPoint) error {
	if err := checkFeedbackPoint(f, p); err != nil {
		return err
	}
	point, err := copyPoint(p)
	if err != nil {
		return err
	}
	stored := *f

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[f.MatchID]; !ok {
		return fmt.Errorf("feedback references unknown match %s", f.MatchID)
	}
	if _, ok := s.feedback[f.ID]; ok {
		return fmt.Errorf("feedback %s: %w", f.ID, ErrDuplicate)
	}
	s.feedback[f.ID] = &stored
	s.points = append(s.points, point)
	return nil
}

// copyPoint rejects points a durable store could not encode.
func copyPoint(p *types.TrainingDataPoint) (types.TrainingDataPoint, error) {
	if _, err := json.Marshal(p); err != nil {
		return types.TrainingDataPoint{}, fmt.Errorf("failed to marshal training point: %w", err)
	}
	return *p, nil
}

// ListTrainingPoints returns a copy of the training corpus in insertion order.
func (s *MemoryStore) ListTrainingPoints(_ context.Context) ([]types.TrainingDataPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.TrainingDataPoint(nil), s.points...), nil
}

// copyMatch deep-copies a match. Metadata goes through JSON, the same shape a durable store returns.
func copyMatch(m *types.MatchResult) (*types.MatchResult, error) {
	out := *m
	out.CriticalGaps = append([]string(nil), m.CriticalGaps...)
	out.MinorGaps = append([]string(nil), m.MinorGaps...)
	out.Strengths = append([]string(nil), m.Strengths...)
	if m.Metadata != nil {
		raw, err := json.Marshal(m.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to copy match metadata: %w", err)
		}
		out.Metadata = nil
		if err := json.Unmarshal(raw, &out.Metadata); err != nil {
			return nil, fmt.Errorf("failed to copy match metadata: %w", err)
		}
	}
	return &out, nil
}
