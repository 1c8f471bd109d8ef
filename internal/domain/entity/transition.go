package entity

import "time"

// TransitionOutcome resultado de un intento de cambio de estado.
type TransitionOutcome string

const (
	OutcomePending     TransitionOutcome = "PENDING"
	OutcomeApplied     TransitionOutcome = "APPLIED"
	OutcomeUnsupported TransitionOutcome = "UNSUPPORTED"
	OutcomeFailed      TransitionOutcome = "FAILED"
)

// StatusTransition registro de auditoría de un avance de estado de liquidación.
type StatusTransition struct {
	ID            string            `json:"id"`
	LiquidationID int64             `json:"liquidationId"`
	FromStatus    LiquidationStatus `json:"fromStatus"`
	ToStatus      LiquidationStatus `json:"toStatus"`
	OperatorID    string            `json:"operatorId"`
	Outcome       TransitionOutcome `json:"outcome"`
	Detail        string            `json:"detail,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
}
