package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/domain/workflow"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestInput carries the editable part of a request.
type RequestInput struct {
	BranchID   string
	Department entities.Department
	Items      []entities.PurchaseRequestItem
}

// FileUpload is an uploaded document held in memory.
type FileUpload struct {
	FileName string
	MimeType string
	Data     []byte
}

// IPurchaseRequestUseCase exposes the request lifecycle.
//
//   - POST /requests                    => Create()
//   - PUT /requests/{id}                => Edit()
//   - POST /requests/{id}/resubmit      => Resubmit()
//   - POST /requests/{id}/approve|reject|return|purchase|bank-round
//   - POST|DELETE /requests/{id}/attachments
type IPurchaseRequestUseCase interface {
	Create(ctx context.Context, actor entities.User, in RequestInput, submit bool) (RequestView, error)
	Get(ctx context.Context, actor entities.User, id string) (RequestView, error)
	Edit(ctx context.Context, actor entities.User, id string, in RequestInput) (RequestView, error)
	Resubmit(ctx context.Context, actor entities.User, id string) (RequestView, error)
	Approve(ctx context.Context, actor entities.User, id, comment string) (RequestView, error)
	Reject(ctx context.Context, actor entities.User, id, reason string) (RequestView, error)
	ReturnForModification(ctx context.Context, actor entities.User, id, reason string) (RequestView, error)
	MarkAsPurchased(ctx context.Context, actor entities.User, id, comment string) (RequestView, error)
	CompleteBankRound(ctx context.Context, actor entities.User, id, comment string) (RequestView, error)
	AddAttachment(ctx context.Context, actor entities.User, id string, file FileUpload) (RequestView, error)
	RemoveAttachment(ctx context.Context, actor entities.User, id, attachmentID string) (RequestView, error)
}

type PurchaseRequestUseCase struct {
	repo     interfaces.IPurchaseRequestRepository
	branches interfaces.IBranchRepository
	blobs    interfaces.IBlobStore
	events   interfaces.IEventPublisher
	engine   *workflow.Engine
	now      func() time.Time
}

var _ IPurchaseRequestUseCase = (*PurchaseRequestUseCase)(nil)

func NewPurchaseRequestUseCase(
	repo interfaces.IPurchaseRequestRepository,
	branches interfaces.IBranchRepository,
	blobs interfaces.IBlobStore,
	events interfaces.IEventPublisher,
	engine *workflow.Engine,
) *PurchaseRequestUseCase {
	return &PurchaseRequestUseCase{
		repo:     repo,
		branches: branches,
		blobs:    blobs,
		events:   events,
		engine:   engine,
		now:      time.Now,
	}
}

func (u *PurchaseRequestUseCase) Create(ctx context.Context, actor entities.User, in RequestInput, submit bool) (RequestView, error) {
	branch, err := u.resolveBranch(ctx, actor, in.BranchID)
	if err != nil {
		return RequestView{}, err
	}
	r, err := entities.NewDraft(uuid.NewString(), actor.Snapshot(), branch, in.Department, withItemIDs(in.Items), u.now().UTC())
	if err != nil {
		return RequestView{}, err
	}
	if submit {
		if err := u.engine.Submit(r, actor); err != nil {
			return RequestView{}, err
		}
	}
	if err := u.repo.Create(ctx, r); err != nil {
		logging.LogError("requests", "Create", "persist request", r.ID, err)
		return RequestView{}, err
	}
	if submit {
		publishTransition(ctx, u.events, r, entities.StatusDraft)
	}
	logging.GetLogger().WithFields(logrus.Fields{
		"request_id": r.ID,
		"actor_id":   actor.ID,
		"status":     r.Status,
	}).Info("[requests][usecase] request created")
	return viewOf(r, actor), nil
}

func (u *PurchaseRequestUseCase) Get(ctx context.Context, actor entities.User, id string) (RequestView, error) {
	r, err := u.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return RequestView{}, err
	}
	if !query.Visible(r, actor) {
		return RequestView{}, entities.NotFoundf("request %s", id)
	}
	return viewOf(r, actor), nil
}

func (u *PurchaseRequestUseCase) Edit(ctx context.Context, actor entities.User, id string, in RequestInput) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		if !r.CanModify(actor) {
			return entities.Authorizationf("only the requester or an admin can edit request %s", r.ID)
		}
		if r.Status != entities.StatusDraft {
			return entities.InvalidTransitionf("request %s can only be edited in draft, current status %s", r.ID, r.Status)
		}
		branch, err := u.resolveBranch(ctx, actor, in.BranchID)
		if err != nil {
			return err
		}
		return r.Edit(withItemIDs(in.Items), branch, in.Department, u.now().UTC())
	})
}

func (u *PurchaseRequestUseCase) Resubmit(ctx context.Context, actor entities.User, id string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.Submit(r, actor)
	})
}

func (u *PurchaseRequestUseCase) Approve(ctx context.Context, actor entities.User, id, comment string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.Approve(r, actor, strings.TrimSpace(comment))
	})
}

func (u *PurchaseRequestUseCase) Reject(ctx context.Context, actor entities.User, id, reason string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.Reject(r, actor, reason)
	})
}

func (u *PurchaseRequestUseCase) ReturnForModification(ctx context.Context, actor entities.User, id, reason string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.ReturnForModification(r, actor, reason)
	})
}

func (u *PurchaseRequestUseCase) MarkAsPurchased(ctx context.Context, actor entities.User, id, comment string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.MarkAsPurchased(r, actor, strings.TrimSpace(comment))
	})
}

func (u *PurchaseRequestUseCase) CompleteBankRound(ctx context.Context, actor entities.User, id, comment string) (RequestView, error) {
	return u.mutate(ctx, actor, id, func(r *entities.PurchaseRequest) error {
		return u.engine.CompleteBankRound(r, actor, strings.TrimSpace(comment))
	})
}

// AddAttachment stores the payload first and removes it again if the request
// write fails, so no attachment points at a missing blob.
func (u *PurchaseRequestUseCase) AddAttachment(ctx context.Context, actor entities.User, id string, file FileUpload) (RequestView, error) {
	name := strings.TrimSpace(path.Base(file.FileName))
	if name == "" || name == "." || name == "/" {
		return RequestView{}, entities.Validationf("file name is required")
	}
	if len(file.Data) == 0 {
		return RequestView{}, entities.Validationf("file %s is empty", name)
	}

	r, err := u.load(ctx, actor, id)
	if err != nil {
		return RequestView{}, err
	}
	if !ActionsFor(r, actor).CanManageAttachments {
		return RequestView{}, entities.Authorizationf("user %s cannot add attachments to request %s", actor.ID, r.ID)
	}

	attachmentID := uuid.NewString()
	uri, err := u.blobs.Put(ctx, fmt.Sprintf("requests/%s/attachments/%s-%s", r.ID, attachmentID, name), file.Data, file.MimeType)
	if err != nil {
		return RequestView{}, err
	}
	r.AddAttachment(entities.Attachment{
		ID:         attachmentID,
		FileName:   name,
		URI:        uri,
		MimeType:   file.MimeType,
		Size:       int64(len(file.Data)),
		UploadedBy: actor.Snapshot(),
		UploadedAt: u.now().UTC(),
	})
	if err := u.repo.Update(ctx, r); err != nil {
		if delErr := u.blobs.Delete(ctx, uri); delErr != nil {
			logging.LogError("requests", "AddAttachment", "cleanup blob", uri, delErr)
		}
		return RequestView{}, err
	}
	return viewOf(r, actor), nil
}

func (u *PurchaseRequestUseCase) RemoveAttachment(ctx context.Context, actor entities.User, id, attachmentID string) (RequestView, error) {
	r, err := u.load(ctx, actor, id)
	if err != nil {
		return RequestView{}, err
	}
	removed, err := r.RemoveAttachment(attachmentID, actor, u.now().UTC())
	if err != nil {
		return RequestView{}, err
	}
	if err := u.repo.Update(ctx, r); err != nil {
		return RequestView{}, err
	}
	if err := u.blobs.Delete(ctx, removed.URI); err != nil {
		logging.LogError("requests", "RemoveAttachment", "delete blob", removed.URI, err)
	}
	return viewOf(r, actor), nil
}

// mutate is the read-modify-write cycle shared by every state change. A stale
// version surfaces as ErrConflict from the repository.
func (u *PurchaseRequestUseCase) mutate(ctx context.Context, actor entities.User, id string, fn func(r *entities.PurchaseRequest) error) (RequestView, error) {
	r, err := u.load(ctx, actor, id)
	if err != nil {
		return RequestView{}, err
	}
	from := r.Status
	historyLen := len(r.ApprovalHistory)
	if err := fn(r); err != nil {
		return RequestView{}, err
	}
	if err := u.repo.Update(ctx, r); err != nil {
		if errors.Is(err, entities.ErrConflict) {
			logging.GetLogger().WithFields(logrus.Fields{
				"request_id": r.ID,
				"actor_id":   actor.ID,
			}).Warn("[requests][usecase] concurrent modification rejected")
		}
		return RequestView{}, err
	}
	if len(r.ApprovalHistory) > historyLen {
		publishTransition(ctx, u.events, r, from)
		logging.GetLogger().WithFields(logrus.Fields{
			"request_id": r.ID,
			"actor_id":   actor.ID,
			"from":       from,
			"status":     r.Status,
		}).Info("[requests][usecase] request transitioned")
	}
	return viewOf(r, actor), nil
}

func (u *PurchaseRequestUseCase) load(ctx context.Context, actor entities.User, id string) (*entities.PurchaseRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, entities.Validationf("request id is required")
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !query.Visible(r, actor) {
		return nil, entities.NotFoundf("request %s", id)
	}
	return r, nil
}

// resolveBranch snapshots the branch; non-admins may only file for their own branches.
func (u *PurchaseRequestUseCase) resolveBranch(ctx context.Context, actor entities.User, branchID string) (entities.Branch, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return entities.Branch{}, entities.Validationf("branch is required")
	}
	branch, err := u.branches.Get(ctx, branchID)
	if errors.Is(err, entities.ErrNotFound) {
		return entities.Branch{}, entities.Validationf("unknown branch %q", branchID)
	}
	if err != nil {
		return entities.Branch{}, err
	}
	if !actor.Role.IsAdmin() && !actor.HasBranch(branchID) {
		return entities.Branch{}, entities.Authorizationf("user %s is not assigned to branch %s", actor.ID, branchID)
	}
	return branch, nil
}

func withItemIDs(items []entities.PurchaseRequestItem) []entities.PurchaseRequestItem {
	out := make([]entities.PurchaseRequestItem, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = uuid.NewString()
		}
		it.Name = strings.TrimSpace(it.Name)
		out[i] = it
	}
	return out
}
