package entities

import "time"

// TransitionEvent is published after a request changes status.
type TransitionEvent struct {
	RequestID       string        `json:"requestId"`
	ReferenceNumber int64         `json:"referenceNumber"`
	BranchID        string        `json:"branchId"`
	From            RequestStatus `json:"from"`
	To              RequestStatus `json:"to"`
	Action          HistoryAction `json:"action"`
	Actor           UserSnapshot  `json:"actor"`
	OccurredAt      time.Time     `json:"occurredAt"`
}
