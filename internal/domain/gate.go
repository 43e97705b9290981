package domain

// GateState enumerates the safety gate states for one parse attempt.
// Approved and Rejected are terminal.
type GateState string

const (
	GateStart               GateState = "start"
	GatePendingConfirmation GateState = "pending_confirmation"
	GateApproved            GateState = "approved"
	GateRejected            GateState = "rejected"
)
