package orders

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

type Action string

const (
	ActionApproveReturn Action = "approve_return"
	ActionRejectReturn  Action = "reject_return"
)

// ReturnDecision is the operator's answer to a pending return request.
type ReturnDecision string

const (
	DecisionApprove ReturnDecision = "approve"
	DecisionReject  ReturnDecision = "reject"
)

func ParseDecision(s string) (ReturnDecision, error) {
	switch d := ReturnDecision(s); d {
	case DecisionApprove, DecisionReject:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown decision %q", ErrInvalidAction, s)
	}
}

func (d ReturnDecision) Action() Action {
	if d == DecisionApprove {
		return ActionApproveReturn
	}
	return ActionRejectReturn
}

// Decision is an approve/reject intent for an external collaborator to carry out.
type Decision struct {
	OrderCode string         `json:"order_code"`
	Decision  ReturnDecision `json:"decision"`
	FromState ReturnState    `json:"from_state"`
}

// AvailableActions lists the actions offered for an order in the given merged
// return state. Only a pending request can be approved or rejected.
func AvailableActions(state ReturnState) []Action {
	if state != ReturnRequested {
		return []Action{}
	}
	return []Action{ActionApproveReturn, ActionRejectReturn}
}

// Decide validates an approve/reject decision against the view and returns the
// intent. Nothing is mutated; a rejected call leaves no trace.
func Decide(v View, decision ReturnDecision) (Decision, error) {
	if _, err := ParseDecision(string(decision)); err != nil {
		return Decision{}, err
	}
	if v.Return.State != ReturnRequested {
		return Decision{}, fmt.Errorf("%w: order %s return state is %q, want %q",
			ErrInvalidAction, v.Code, v.Return.State, ReturnRequested)
	}
	return Decision{OrderCode: v.Code, Decision: decision, FromState: v.Return.State}, nil
}
