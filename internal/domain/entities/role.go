package entities

// Role is a role name. The built-in roles below drive the workflow; admins may
// define additional roles whose only effect is visibility.
type Role string

const (
	RoleRequester          Role = "requester"
	RoleHotelManager       Role = "hotel_manager"
	RoleQualitySupervisor  Role = "quality_supervisor"
	RoleQualityManager     Role = "quality_manager"
	RoleProjectsAccountant Role = "projects_accountant"
	RoleFinalApprover      Role = "final_approver"
	RolePurchasingRep      Role = "purchasing_rep"
	RolePurchasingManager  Role = "purchasing_manager"
	RoleAccountant         Role = "accountant"
	RoleAccountingManager  Role = "accounting_manager"
	RoleBankRoundsOfficer  Role = "bank_rounds_officer"
	RoleAuditor            Role = "auditor"
	RoleAdmin              Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// SeesAllBranches reports whether the role bypasses branch scoping on reads.
func (r Role) SeesAllBranches() bool {
	return r == RoleAdmin || r == RoleAuditor
}

// RoleDefinition maps a role to the statuses it is permitted to see.
//
// Role identity, not this list, gates workflow transitions.
type RoleDefinition struct {
	Name        Role            `json:"name"`
	Permissions []RequestStatus `json:"permissions"`
}

// DefaultRoleDefinitions is the seed role table.
func DefaultRoleDefinitions() []RoleDefinition {
	return []RoleDefinition{
		{Name: RoleRequester, Permissions: []RequestStatus{StatusDraft, StatusPendingHMApproval, StatusRejected, StatusCompleted}},
		{Name: RoleHotelManager, Permissions: []RequestStatus{StatusPendingHMApproval}},
		{Name: RoleQualitySupervisor, Permissions: []RequestStatus{StatusPendingQSApproval}},
		{Name: RoleQualityManager, Permissions: []RequestStatus{StatusPendingQMApproval}},
		{Name: RoleProjectsAccountant, Permissions: []RequestStatus{StatusPendingPAApproval}},
		{Name: RoleFinalApprover, Permissions: []RequestStatus{StatusPendingFAApproval}},
		{Name: RolePurchasingRep, Permissions: []RequestStatus{StatusPendingPurchase}},
		{Name: RolePurchasingManager, Permissions: []RequestStatus{StatusPendingPMApproval}},
		{Name: RoleAccountant, Permissions: []RequestStatus{StatusPendingInvoice}},
		{Name: RoleAccountingManager, Permissions: []RequestStatus{StatusPendingAMApproval}},
		{Name: RoleBankRoundsOfficer, Permissions: []RequestStatus{StatusPendingBankRounds}},
		{Name: RoleAuditor, Permissions: AllStatuses()},
		{Name: RoleAdmin, Permissions: AllStatuses()},
	}
}
