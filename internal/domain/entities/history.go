package entities

import "time"

type HistoryAction string

const (
	ActionSubmitted          HistoryAction = "Submitted"
	ActionApproved           HistoryAction = "Approved"
	ActionRejected           HistoryAction = "Rejected"
	ActionReturned           HistoryAction = "Returned for Modification"
	ActionResubmitted        HistoryAction = "Resubmitted"
	ActionMarkedAsPurchased  HistoryAction = "Marked as Purchased"
	ActionProcessedInvoice   HistoryAction = "Processed Invoice"
	ActionBankRoundCompleted HistoryAction = "Bank Round Completed"
)

// ApprovalHistoryEntry is one append-only audit record.
type ApprovalHistoryEntry struct {
	Actor     UserSnapshot  `json:"actor"`
	Action    HistoryAction `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
	Comment   string        `json:"comment,omitempty"`
}
