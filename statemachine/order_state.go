package statemachine

import (
	"fmt"
	"strings"

	"restaurant-orders-api/models"
)

// Transition defines a valid status change
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Kitchen picks up a fresh booking, or the customer backs out
	{From: models.StatusBooked, To: models.StatusPreparing},
	{From: models.StatusBooked, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	// Dine-in orders are served straight from Ready
	{From: models.StatusReady, To: models.StatusOutForDelivery},
	{From: models.StatusReady, To: models.StatusDelivered},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

var knownStatuses = []models.OrderStatus{
	models.StatusBooked,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

// Known reports whether status is one of the named states.
func Known(status models.OrderStatus) bool {
	for _, s := range knownStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return Known(status) && len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks if an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%s → %s is not allowed. Valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Policy decides whether a status change is acceptable. Permissive policies
// take any non-blank label, as the service always has; strict ones consult
// the transition table.
type Policy struct {
	Strict bool
}

func (p Policy) Check(from, to models.OrderStatus) error {
	if !p.Strict {
		return nil
	}
	return CanTransition(from, to)
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}

// TerminalStates lists the named states with no way out.
func TerminalStates() []models.OrderStatus {
	var out []models.OrderStatus
	for _, s := range knownStatuses {
		if IsTerminal(s) {
			out = append(out, s)
		}
	}
	return out
}
