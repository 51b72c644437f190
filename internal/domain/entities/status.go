package entities

// RequestStatus is the lifecycle position of a purchase request.
//
// Domain notes:
//   - DRAFT is re-entrant (return for modification sends a request back to it).
//   - COMPLETED and REJECTED are terminal.
//   - Only the workflow engine moves a request between statuses.
type RequestStatus string

const (
	StatusDraft             RequestStatus = "draft"
	StatusPendingHMApproval RequestStatus = "pending_hm_approval"
	StatusPendingQSApproval RequestStatus = "pending_qs_approval"
	StatusPendingQMApproval RequestStatus = "pending_qm_approval"
	StatusPendingPAApproval RequestStatus = "pending_pa_approval"
	StatusPendingFAApproval RequestStatus = "pending_fa_approval"
	StatusPendingPurchase   RequestStatus = "pending_purchase"
	StatusPendingPMApproval RequestStatus = "pending_pm_approval"
	StatusPendingInvoice    RequestStatus = "pending_invoice"
	StatusPendingAMApproval RequestStatus = "pending_am_approval"
	StatusPendingBankRounds RequestStatus = "pending_bank_rounds"
	StatusCompleted         RequestStatus = "completed"
	StatusRejected          RequestStatus = "rejected"
)

var allStatuses = []RequestStatus{
	StatusDraft,
	StatusPendingHMApproval,
	StatusPendingQSApproval,
	StatusPendingQMApproval,
	StatusPendingPAApproval,
	StatusPendingFAApproval,
	StatusPendingPurchase,
	StatusPendingPMApproval,
	StatusPendingInvoice,
	StatusPendingAMApproval,
	StatusPendingBankRounds,
	StatusCompleted,
	StatusRejected,
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []RequestStatus {
	out := make([]RequestStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s RequestStatus) Valid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// IsPendingApproval reports whether the status waits on a single approver's
// sign-off, i.e. the statuses from which reject and return are allowed.
func (s RequestStatus) IsPendingApproval() bool {
	switch s {
	case StatusPendingHMApproval,
		StatusPendingQSApproval,
		StatusPendingQMApproval,
		StatusPendingPAApproval,
		StatusPendingFAApproval,
		StatusPendingPMApproval,
		StatusPendingAMApproval:
		return true
	}
	return false
}

// Department drives which approval path a request follows.
type Department string

const (
	DepartmentProjects     Department = "Projects"
	DepartmentHousekeeping Department = "Housekeeping"
	DepartmentMaintenance  Department = "Maintenance"
	DepartmentFnB          Department = "F&B"
	DepartmentManagement   Department = "Management"
)

var allDepartments = []Department{
	DepartmentProjects,
	DepartmentHousekeeping,
	DepartmentMaintenance,
	DepartmentFnB,
	DepartmentManagement,
}

func AllDepartments() []Department {
	out := make([]Department, len(allDepartments))
	copy(out, allDepartments)
	return out
}

func (d Department) Valid() bool {
	for _, v := range allDepartments {
		if v == d {
			return true
		}
	}
	return false
}
