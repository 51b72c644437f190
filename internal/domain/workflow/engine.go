package workflow

import (
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultEscalationThreshold is the purchase total above which a purchasing
// manager must sign off.
var DefaultEscalationThreshold = decimal.NewFromInt(5000)

// Path is the approval chain a request follows, selected by department.
type Path string

const (
	PathProjects Path = "projects"
	PathStandard Path = "standard"
)

func PathFor(d entities.Department) Path {
	if d == entities.DepartmentProjects {
		return PathProjects
	}
	return PathStandard
}

// FirstPendingStatus is where a submitted request enters its path.
func FirstPendingStatus(d entities.Department) entities.RequestStatus {
	if PathFor(d) == PathProjects {
		return entities.StatusPendingQSApproval
	}
	return entities.StatusPendingHMApproval
}

type approvalKey struct {
	status entities.RequestStatus
	path   Path
}

type approvalRule struct {
	role entities.Role
	next entities.RequestStatus
}

var approvals = map[approvalKey]approvalRule{
	{entities.StatusPendingHMApproval, PathStandard}: {entities.RoleHotelManager, entities.StatusPendingPurchase},

	{entities.StatusPendingQSApproval, PathProjects}: {entities.RoleQualitySupervisor, entities.StatusPendingQMApproval},
	{entities.StatusPendingQMApproval, PathProjects}: {entities.RoleQualityManager, entities.StatusPendingPAApproval},
	{entities.StatusPendingPAApproval, PathProjects}: {entities.RoleProjectsAccountant, entities.StatusPendingFAApproval},
	{entities.StatusPendingFAApproval, PathProjects}: {entities.RoleFinalApprover, entities.StatusPendingPurchase},

	{entities.StatusPendingPMApproval, PathStandard}: {entities.RolePurchasingManager, entities.StatusPendingInvoice},
	{entities.StatusPendingPMApproval, PathProjects}: {entities.RolePurchasingManager, entities.StatusPendingInvoice},
	{entities.StatusPendingAMApproval, PathStandard}: {entities.RoleAccountingManager, entities.StatusPendingBankRounds},
	{entities.StatusPendingAMApproval, PathProjects}: {entities.RoleAccountingManager, entities.StatusPendingBankRounds},
}

// actors maps every actionable status to the single role that may act on it.
var actors = map[entities.RequestStatus]entities.Role{
	entities.StatusPendingHMApproval: entities.RoleHotelManager,
	entities.StatusPendingQSApproval: entities.RoleQualitySupervisor,
	entities.StatusPendingQMApproval: entities.RoleQualityManager,
	entities.StatusPendingPAApproval: entities.RoleProjectsAccountant,
	entities.StatusPendingFAApproval: entities.RoleFinalApprover,
	entities.StatusPendingPurchase:   entities.RolePurchasingRep,
	entities.StatusPendingPMApproval: entities.RolePurchasingManager,
	entities.StatusPendingInvoice:    entities.RoleAccountant,
	entities.StatusPendingAMApproval: entities.RoleAccountingManager,
	entities.StatusPendingBankRounds: entities.RoleBankRoundsOfficer,
}

// AuthorizedRole returns the role that acts on status, if any.
func AuthorizedRole(status entities.RequestStatus) (entities.Role, bool) {
	r, ok := actors[status]
	return r, ok
}

// CanAct reports whether role may act on a request in status. Admin acts on every actionable status.
func CanAct(status entities.RequestStatus, role entities.Role) bool {
	r, ok := actors[status]
	if !ok {
		return false
	}
	return role.IsAdmin() || role == r
}

// Engine owns every status change of a purchase request. Each method either
// applies the transition together with its history entry or returns an error
// and leaves the request untouched.
type Engine struct {
	threshold decimal.Decimal
	now       func() time.Time
}

func NewEngine(threshold decimal.Decimal) *Engine {
	return &Engine{threshold: threshold, now: time.Now}
}

// WithClock replaces the time source.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

func (e *Engine) Threshold() decimal.Decimal {
	return e.threshold
}

// Submit moves a DRAFT into the first pending status of its department. The
// first submission is recorded as "Submitted", every later one as "Resubmitted".
// An admin submitting on someone else's behalf becomes the requester.
func (e *Engine) Submit(r *entities.PurchaseRequest, actor entities.User) error {
	if r.Status != entities.StatusDraft {
		return entities.InvalidTransitionf("request %s cannot be submitted from %s", r.ID, r.Status)
	}
	if !r.CanModify(actor) {
		return entities.Authorizationf("user %s cannot submit request %s", actor.ID, r.ID)
	}
	if !r.Department.Valid() {
		return entities.Validationf("unknown department %q", r.Department)
	}
	if err := entities.ValidateItems(r.Items, true); err != nil {
		return err
	}

	action := entities.ActionSubmitted
	if r.WasSubmitted() {
		action = entities.ActionResubmitted
	}
	if actor.Role.IsAdmin() && actor.ID != r.Requester.ID {
		r.Requester = actor.Snapshot()
	}
	r.Transition(FirstPendingStatus(r.Department), e.entry(actor, action, ""))
	return nil
}

// Approve advances a pending-approval request one step along its path.
func (e *Engine) Approve(r *entities.PurchaseRequest, actor entities.User, comment string) error {
	rule, ok := approvals[approvalKey{r.Status, PathFor(r.Department)}]
	if !ok {
		return entities.InvalidTransitionf("no approval step for status %s on %s path", r.Status, PathFor(r.Department))
	}
	if !actor.Role.IsAdmin() && actor.Role != rule.role {
		return entities.Authorizationf("role %s cannot approve a request in %s", actor.Role, r.Status)
	}
	r.Transition(rule.next, e.entry(actor, entities.ActionApproved, comment))
	return nil
}

// Reject ends the request. A reason is mandatory.
func (e *Engine) Reject(r *entities.PurchaseRequest, actor entities.User, reason string) error {
	if err := e.checkPendingApproval(r, actor, reason); err != nil {
		return err
	}
	r.Transition(entities.StatusRejected, e.entry(actor, entities.ActionRejected, strings.TrimSpace(reason)))
	return nil
}

// ReturnForModification sends the request back to DRAFT so the requester can fix and resubmit it.
func (e *Engine) ReturnForModification(r *entities.PurchaseRequest, actor entities.User, reason string) error {
	if err := e.checkPendingApproval(r, actor, reason); err != nil {
		return err
	}
	r.Transition(entities.StatusDraft, e.entry(actor, entities.ActionReturned, strings.TrimSpace(reason)))
	return nil
}

// MarkAsPurchased routes by total: above the threshold to the purchasing
// manager, otherwise straight to invoicing.
func (e *Engine) MarkAsPurchased(r *entities.PurchaseRequest, actor entities.User, comment string) error {
	if err := e.checkAction(r, actor, entities.StatusPendingPurchase, "mark as purchased"); err != nil {
		return err
	}
	next := entities.StatusPendingInvoice
	if r.TotalEstimatedCost.GreaterThan(e.threshold) {
		next = entities.StatusPendingPMApproval
	}
	r.Transition(next, e.entry(actor, entities.ActionMarkedAsPurchased, comment))
	return nil
}

// ProcessInvoice attaches the reconciled invoice and hands the request to the accounting manager.
func (e *Engine) ProcessInvoice(r *entities.PurchaseRequest, actor entities.User, invoice entities.Invoice) error {
	if err := e.checkAction(r, actor, entities.StatusPendingInvoice, "process an invoice"); err != nil {
		return err
	}
	inv := invoice
	r.Invoice = &inv
	r.Transition(entities.StatusPendingAMApproval, e.entry(actor, entities.ActionProcessedInvoice, ""))
	return nil
}

func (e *Engine) CompleteBankRound(r *entities.PurchaseRequest, actor entities.User, comment string) error {
	if err := e.checkAction(r, actor, entities.StatusPendingBankRounds, "complete the bank round"); err != nil {
		return err
	}
	r.Transition(entities.StatusCompleted, e.entry(actor, entities.ActionBankRoundCompleted, comment))
	return nil
}

func (e *Engine) checkPendingApproval(r *entities.PurchaseRequest, actor entities.User, reason string) error {
	if !r.Status.IsPendingApproval() {
		return entities.InvalidTransitionf("request %s is not awaiting approval (status %s)", r.ID, r.Status)
	}
	if !CanAct(r.Status, actor.Role) {
		return entities.Authorizationf("role %s cannot act on a request in %s", actor.Role, r.Status)
	}
	if strings.TrimSpace(reason) == "" {
		return entities.Validationf("a reason is required")
	}
	return nil
}

func (e *Engine) checkAction(r *entities.PurchaseRequest, actor entities.User, want entities.RequestStatus, what string) error {
	if r.Status != want {
		return entities.InvalidTransitionf("cannot %s for request %s in %s", what, r.ID, r.Status)
	}
	if !CanAct(want, actor.Role) {
		return entities.Authorizationf("role %s cannot %s", actor.Role, what)
	}
	return nil
}

func (e *Engine) entry(actor entities.User, action entities.HistoryAction, comment string) entities.ApprovalHistoryEntry {
	return entities.ApprovalHistoryEntry{
		Actor:     actor.Snapshot(),
		Action:    action,
		Timestamp: e.now().UTC(),
		Comment:   comment,
	}
}
