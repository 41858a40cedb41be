package statemachine

import (
	"errors"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"
)

// Transition defines a valid status change
type Transition struct {
	From models.DeliveryStatus
	To   models.DeliveryStatus
}

// validTransitions is the authoritative state machine definition:
// a delivery moves forward only, processing → shipped → delivered.
var validTransitions = []Transition{
	{From: models.StatusProcessing, To: models.StatusShipped},
	{From: models.StatusShipped, To: models.StatusDelivered},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s models.DeliveryStatus) bool {
	switch s {
	case models.StatusProcessing, models.StatusShipped, models.StatusDelivered:
		return true
	}
	return false
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.DeliveryStatus) []models.DeliveryStatus {
	var nexts []models.DeliveryStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether a delivery may move from one state to another
func CanTransition(from, to models.DeliveryStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.DeliveryStatus) string {
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
