package statemachine

import (
	"errors"
	"fmt"

	"smart-table-api/models"
)

// ErrInvalidTransition is wrapped by every rejection so callers can match
// with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// validTransitions is the authoritative state machine definition. Staff
// may move an order between any non-terminal states (forward skips such
// as Pending → Completed included); Completed and Cancelled are terminal.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending: {
		models.StatusPreparing, models.StatusReady,
		models.StatusCompleted, models.StatusCancelled,
	},
	models.StatusPreparing: {
		models.StatusPending, models.StatusReady,
		models.StatusCompleted, models.StatusCancelled,
	},
	models.StatusReady: {
		models.StatusPending, models.StatusPreparing,
		models.StatusCompleted, models.StatusCancelled,
	},
	models.StatusCompleted: nil,
	models.StatusCancelled: nil,
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for from, tos := range validTransitions {
		for _, to := range tos {
			m[transitionKey{from, to}] = true
		}
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, to := range models.AllStatuses {
		if transitionMap[transitionKey{status, to}] {
			nexts = append(nexts, to)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to
// another. Requesting the state the order is already in is the caller's
// no-op case and is not validated here.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s is not allowed; valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// Transition is one edge of the state machine, for documentation
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	var all []Transition
	for _, from := range models.AllStatuses {
		for _, to := range models.AllStatuses {
			if transitionMap[transitionKey{from, to}] {
				all = append(all, Transition{From: from, To: to})
			}
		}
	}
	return all
}
