package usecase

import (
	"context"
	"errors"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/domain/workflow"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// ActionFlags tell a client which workflow buttons to offer the viewer.
type ActionFlags struct {
	CanEdit              bool `json:"canEdit"`
	CanSubmit            bool `json:"canSubmit"`
	CanApprove           bool `json:"canApprove"`
	CanReject            bool `json:"canReject"`
	CanReturn            bool `json:"canReturn"`
	CanMarkPurchased     bool `json:"canMarkPurchased"`
	CanProcessInvoice    bool `json:"canProcessInvoice"`
	CanCompleteBankRound bool `json:"canCompleteBankRound"`
	CanManageAttachments bool `json:"canManageAttachments"`
}

// RequestView is a request as seen by one user.
type RequestView struct {
	Request *entities.PurchaseRequest
	Actions ActionFlags
}

// ActionsFor derives the flags from the request status and the viewer's role.
func ActionsFor(r *entities.PurchaseRequest, viewer entities.User) ActionFlags {
	if !query.Visible(r, viewer) {
		return ActionFlags{}
	}
	var f ActionFlags
	canAct := workflow.CanAct(r.Status, viewer.Role)

	if r.Status == entities.StatusDraft && r.CanModify(viewer) {
		f.CanEdit = true
		f.CanSubmit = true
	}
	if r.Status.IsPendingApproval() && canAct {
		f.CanApprove = true
		f.CanReject = true
		f.CanReturn = true
	}
	f.CanMarkPurchased = r.Status == entities.StatusPendingPurchase && canAct
	f.CanProcessInvoice = r.Status == entities.StatusPendingInvoice && canAct
	f.CanCompleteBankRound = r.Status == entities.StatusPendingBankRounds && canAct
	f.CanManageAttachments = canManageAttachments(r.Status, viewer.Role)
	return f
}

// Quotes and receipts are attached by purchasing while the order is being placed.
func canManageAttachments(status entities.RequestStatus, role entities.Role) bool {
	if role.IsAdmin() {
		return true
	}
	if role != entities.RolePurchasingRep && role != entities.RolePurchasingManager {
		return false
	}
	return status == entities.StatusPendingPurchase || status == entities.StatusPendingPMApproval
}

func viewOf(r *entities.PurchaseRequest, viewer entities.User) RequestView {
	return RequestView{Request: r, Actions: ActionsFor(r, viewer)}
}

// publishTransition is fire-and-forget: a failed publish is logged and never
// undoes the committed transition.
func publishTransition(ctx context.Context, events interfaces.IEventPublisher, r *entities.PurchaseRequest, from entities.RequestStatus) {
	if events == nil || len(r.ApprovalHistory) == 0 {
		return
	}
	last := r.ApprovalHistory[len(r.ApprovalHistory)-1]
	e := entities.TransitionEvent{
		RequestID:       r.ID,
		ReferenceNumber: r.ReferenceNumber,
		BranchID:        r.Branch.ID,
		From:            from,
		To:              r.Status,
		Action:          last.Action,
		Actor:           last.Actor,
		OccurredAt:      last.Timestamp,
	}
	if err := events.PublishTransition(ctx, e); err != nil {
		logging.GetLogger().WithFields(logrus.Fields{
			"request_id": r.ID,
			"status":     r.Status,
		}).WithError(err).Warn("[requests][usecase] failed to publish transition event")
	}
}

// callExternal bounds fn by timeout and maps cancellation or failure to ErrExternalService.
func callExternal[T any](ctx context.Context, timeout time.Duration, service string, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	out, err := fn(ctx)
	if err == nil || errors.Is(err, entities.ErrExternalService) {
		return out, err
	}
	return out, entities.ExternalServiceError(service, err)
}
