package usecase

import (
	"context"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/domain/query"
	"hotel_procurement/internal/usecase/interfaces"
)

// IQueryUseCase is the read side: filtered request lists and the dashboard.
type IQueryUseCase interface {
	List(ctx context.Context, actor entities.User, f query.Filter) ([]RequestView, error)
	Analytics(ctx context.Context, actor entities.User) (query.Analytics, error)
}

type QueryUseCase struct {
	repo              interfaces.IPurchaseRequestRepository
	completionActions []entities.HistoryAction
	now               func() time.Time
}

var _ IQueryUseCase = (*QueryUseCase)(nil)

func NewQueryUseCase(repo interfaces.IPurchaseRequestRepository, completionActions []entities.HistoryAction) *QueryUseCase {
	return &QueryUseCase{repo: repo, completionActions: completionActions, now: time.Now}
}

func (u *QueryUseCase) List(ctx context.Context, actor entities.User, f query.Filter) ([]RequestView, error) {
	if f.MinTotal != nil && f.MaxTotal != nil && f.MinTotal.GreaterThan(*f.MaxTotal) {
		return nil, entities.Validationf("minTotal must not exceed maxTotal")
	}
	for _, s := range f.Statuses {
		if !s.Valid() {
			return nil, entities.Validationf("unknown status %q", s)
		}
	}
	if f.Department != "" && !f.Department.Valid() {
		return nil, entities.Validationf("unknown department %q", f.Department)
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := query.Apply(all, actor, f)
	out := make([]RequestView, 0, len(matched))
	for _, r := range matched {
		out = append(out, viewOf(r, actor))
	}
	return out, nil
}

func (u *QueryUseCase) Analytics(ctx context.Context, actor entities.User) (query.Analytics, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return query.Analytics{}, err
	}
	return query.ComputeAnalytics(all, actor, u.now(), u.completionActions), nil
}
