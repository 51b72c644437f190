package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_procurement/internal/domain/entities"
	mock_interfaces "hotel_procurement/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func seedCompleted(t *testing.T, e *env, id string, dept entities.Department, total string, created time.Time, status entities.RequestStatus) {
	t.Helper()
	r := &entities.PurchaseRequest{
		ID:                 id,
		Requester:          requester.Snapshot(),
		Branch:             entities.Branch{ID: "b1", Name: "Riyadh Downtown"},
		Department:         dept,
		Status:             status,
		TotalEstimatedCost: decimal.RequireFromString(total),
		CreatedAt:          created,
		UpdatedAt:          created,
	}
	if err := e.requests.Create(context.Background(), r); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestReportUseCase_Monthly(t *testing.T) {
	ctx := context.Background()
	march := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) *env {
		e := newEnv(t)
		seedCompleted(t, e, "r1", entities.DepartmentHousekeeping, "300", march, entities.StatusCompleted)
		seedCompleted(t, e, "r2", entities.DepartmentMaintenance, "900", march.AddDate(0, 0, 5), entities.StatusCompleted)
		seedCompleted(t, e, "r3", entities.DepartmentHousekeeping, "200", march.AddDate(0, 0, 7), entities.StatusCompleted)
		seedCompleted(t, e, "r4", entities.DepartmentMaintenance, "5000", march, entities.StatusPendingBankRounds)
		seedCompleted(t, e, "r5", entities.DepartmentMaintenance, "700", march.AddDate(0, 1, 0), entities.StatusCompleted)
		return e
	}

	t.Run("aggregates completed requests of the month", func(t *testing.T) {
		e := setup(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		writer := mock_interfaces.NewMockIReportWriter(ctrl)
		uc := NewReportUseCase(e.requests, e.branches, writer, nil, time.Second)

		writer.EXPECT().Summarize(gomock.Any(), gomock.Len(3), "Riyadh Downtown", "March 2026").Return("Spend is stable.", nil)

		report, err := uc.Monthly(ctx, hotelMgr, "b1", "2026-03")
		if err != nil {
			t.Fatalf("monthly: %v", err)
		}
		if report.RequestCount != 3 || !report.TotalSpend.Equal(decimal.NewFromInt(1400)) {
			t.Fatalf("unexpected totals: %+v", report)
		}
		if len(report.DepartmentBreakdown) != 2 || report.DepartmentBreakdown[0].Department != entities.DepartmentMaintenance {
			t.Fatalf("expected maintenance first, got %+v", report.DepartmentBreakdown)
		}
		if report.DepartmentBreakdown[1].Count != 2 || !report.DepartmentBreakdown[1].Total.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("unexpected housekeeping row: %+v", report.DepartmentBreakdown[1])
		}
		if report.AIAnalysis != "Spend is stable." {
			t.Fatalf("unexpected analysis: %q", report.AIAnalysis)
		}
	})

	t.Run("empty month", func(t *testing.T) {
		e := setup(t)
		uc := NewReportUseCase(e.requests, e.branches, nil, nil, time.Second)
		if _, err := uc.Monthly(ctx, hotelMgr, "b1", "2025-12"); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("bad input and access", func(t *testing.T) {
		e := setup(t)
		uc := NewReportUseCase(e.requests, e.branches, nil, nil, time.Second)
		if _, err := uc.Monthly(ctx, hotelMgr, "b1", "March"); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := uc.Monthly(ctx, otherHM, "b1", "2026-03"); !errors.Is(err, entities.ErrAuthorization) {
			t.Fatalf("expected ErrAuthorization, got %v", err)
		}
		if _, err := uc.Monthly(ctx, admin, "nowhere", "2026-03"); !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for unknown branch, got %v", err)
		}
	})

	t.Run("writer failure", func(t *testing.T) {
		e := setup(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		writer := mock_interfaces.NewMockIReportWriter(ctrl)
		uc := NewReportUseCase(e.requests, e.branches, writer, nil, time.Second)
		writer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota"))
		if _, err := uc.Monthly(ctx, admin, "b1", "2026-03"); !errors.Is(err, entities.ErrExternalService) {
			t.Fatalf("expected ErrExternalService, got %v", err)
		}
	})
}

func TestReportUseCase_Export(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	seedCompleted(t, e, "r1", entities.DepartmentFnB, "450", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), entities.StatusCompleted)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	writer := mock_interfaces.NewMockIReportWriter(ctrl)
	exporter := mock_interfaces.NewMockIReportExporter(ctrl)
	uc := NewReportUseCase(e.requests, e.branches, writer, exporter, time.Second)

	writer.EXPECT().Summarize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("ok", nil)
	exporter.EXPECT().Export(gomock.Any(), gomock.Len(1)).Return([]byte("xlsx"), nil)

	name, data, err := uc.Export(ctx, admin, "b1", "2026-02")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if name != "procurement-b1-2026-02.xlsx" || string(data) != "xlsx" {
		t.Fatalf("unexpected export: %s %q", name, data)
	}
}
