package entities

import "fmt"

type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "OPEN"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusCompleted, WorkOrderStatusCancelled:
		return true
	}
	return false
}

func (s WorkOrderStatus) IsClosed() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}

// TransitionContext is everything the update path knows when it evaluates a
// status change.
type TransitionContext struct {
	Current              WorkOrderStatus
	Target               WorkOrderStatus
	HasActiveLineItems   bool
	FinalValueResolvable bool
}

// CanTransition evaluates the status change requested through update.
// Rules:
//   - a cancelled order never changes again
//   - CANCELLED is only reachable through Cancel
//   - COMPLETED needs an active line item and a final value
//
// COMPLETED -> OPEN and COMPLETED -> IN_PROGRESS stay allowed; the caller clears
// the close timestamp in that case.
func CanTransition(ctx TransitionContext) error {
	if !ctx.Target.IsValid() {
		return NewValidation("status", fmt.Sprintf("unknown status %q", ctx.Target))
	}
	if ctx.Current == WorkOrderStatusCancelled {
		return ErrCancelledOrderImmutable
	}

	switch ctx.Target {
	case WorkOrderStatusCancelled:
		return ErrCancelThroughUpdate
	case WorkOrderStatusCompleted:
		if !ctx.HasActiveLineItems {
			return ErrCompleteWithoutLineItems
		}
		if !ctx.FinalValueResolvable {
			return ErrFinalValueRequired
		}
	}
	return nil
}
