package statemachine

import (
	"errors"
	"testing"

	"smart-table-api/models"
)

var nonTerminal = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
}

var terminal = []models.OrderStatus{
	models.StatusCompleted,
	models.StatusCancelled,
}

func TestNonTerminalStatesMayMoveAnywhere(t *testing.T) {
	for _, from := range nonTerminal {
		for _, to := range models.AllStatuses {
			if to == from {
				continue // same-state requests are the caller's no-op
			}
			if err := CanTransition(from, to); err != nil {
				t.Errorf("%s → %s should be legal: %v", from, to, err)
			}
		}
	}
}

func TestTerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	for _, from := range terminal {
		for _, to := range models.AllStatuses {
			if to == from {
				continue
			}
			err := CanTransition(from, to)
			if err == nil {
				t.Errorf("%s → %s should be rejected", from, to)
				continue
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("%s → %s: error should wrap ErrInvalidTransition, got %v", from, to, err)
			}
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	for _, from := range nonTerminal {
		if got := len(ValidTransitionsFrom(from)); got != 4 {
			t.Errorf("expected 4 transitions from %s, got %d", from, got)
		}
	}
	for _, from := range terminal {
		if got := ValidTransitionsFrom(from); len(got) != 0 {
			t.Errorf("expected no transitions from %s, got %v", from, got)
		}
	}
}

func TestGetAllTransitions(t *testing.T) {
	all := GetAllTransitions()
	if len(all) != 12 {
		t.Fatalf("expected 12 edges (3 non-terminal states × 4 targets), got %d", len(all))
	}
	for _, tr := range all {
		if tr.From.Terminal() {
			t.Errorf("terminal state %s must not appear as a source", tr.From)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if st, err := models.ParseStatus("Preparing"); err != nil || st != models.StatusPreparing {
		t.Errorf("ParseStatus(Preparing) = %v, %v", st, err)
	}
	if _, err := models.ParseStatus("Cooking"); !errors.Is(err, models.ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}
