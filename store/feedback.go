package store

import (
	"fmt"

	"smart-table-api/models"
)

// RecordFeedback stores a post-completion rating. Feedback is keyed by
// table and timestamp only; it carries no link into order records.
func (s *Store) RecordFeedback(table, name string, rating int, message string) (*models.Feedback, error) {
	if !s.known[table] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}

	fb := models.Feedback{
		Table:   table,
		Name:    name,
		Rating:  rating,
		Message: message,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.db.Create(&fb).Error; err != nil {
		return nil, fmt.Errorf("record feedback: %w", err)
	}
	return &fb, nil
}

// ListFeedback returns all feedback, newest first.
func (s *Store) ListFeedback() ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := s.db.Order("created_at desc, id desc").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	return feedback, nil
}

// ListPayments returns all recorded payments, newest first.
func (s *Store) ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Order("created_at desc, id desc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	return payments, nil
}
