package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

// IReportUseCase builds the monthly branch report and its spreadsheet export.
type IReportUseCase interface {
	Monthly(ctx context.Context, actor entities.User, branchID, month string) (entities.MonthlyReport, error)
	Export(ctx context.Context, actor entities.User, branchID, month string) (fileName string, data []byte, err error)
}

type ReportUseCase struct {
	requests interfaces.IPurchaseRequestRepository
	branches interfaces.IBranchRepository
	writer   interfaces.IReportWriter
	exporter interfaces.IReportExporter
	timeout  time.Duration
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(requests interfaces.IPurchaseRequestRepository, branches interfaces.IBranchRepository, writer interfaces.IReportWriter, exporter interfaces.IReportExporter, timeout time.Duration) *ReportUseCase {
	return &ReportUseCase{requests: requests, branches: branches, writer: writer, exporter: exporter, timeout: timeout}
}

func (u *ReportUseCase) Monthly(ctx context.Context, actor entities.User, branchID, month string) (entities.MonthlyReport, error) {
	report, _, err := u.build(ctx, actor, branchID, month)
	return report, err
}

func (u *ReportUseCase) Export(ctx context.Context, actor entities.User, branchID, month string) (string, []byte, error) {
	report, requests, err := u.build(ctx, actor, branchID, month)
	if err != nil {
		return "", nil, err
	}
	data, err := u.exporter.Export(report, requests)
	if err != nil {
		logging.LogError("reports", "Export", "render workbook", branchID, err)
		return "", nil, err
	}
	return fmt.Sprintf("procurement-%s-%s.xlsx", report.BranchID, report.Month), data, nil
}

// build selects the branch's COMPLETED requests created in month (UTC),
// totals them per department and asks the writer for the narrative.
func (u *ReportUseCase) build(ctx context.Context, actor entities.User, branchID, month string) (entities.MonthlyReport, []*entities.PurchaseRequest, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return entities.MonthlyReport{}, nil, entities.Validationf("branch is required")
	}
	start, err := time.Parse(monthLayout, strings.TrimSpace(month))
	if err != nil {
		return entities.MonthlyReport{}, nil, entities.Validationf("month must be formatted as YYYY-MM")
	}
	if !actor.Role.SeesAllBranches() && !actor.HasBranch(branchID) {
		return entities.MonthlyReport{}, nil, entities.Authorizationf("user %s is not assigned to branch %s", actor.ID, branchID)
	}
	branch, err := u.branches.Get(ctx, branchID)
	if err != nil {
		return entities.MonthlyReport{}, nil, err
	}

	all, err := u.requests.List(ctx)
	if err != nil {
		return entities.MonthlyReport{}, nil, err
	}
	end := start.AddDate(0, 1, 0)
	var selected []*entities.PurchaseRequest
	for _, r := range all {
		created := r.CreatedAt.UTC()
		if r.Branch.ID == branchID && r.Status == entities.StatusCompleted && !created.Before(start) && created.Before(end) {
			selected = append(selected, r)
		}
	}
	if len(selected) == 0 {
		return entities.MonthlyReport{}, nil, entities.NotFoundf("no completed requests for branch %s in %s", branchID, start.Format(monthLayout))
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].ReferenceNumber < selected[j].ReferenceNumber })

	report := entities.MonthlyReport{
		BranchID:     branch.ID,
		BranchName:   branch.Name,
		Month:        start.Format(monthLayout),
		TotalSpend:   decimal.Zero,
		RequestCount: len(selected),
	}
	byDept := map[entities.Department]*entities.DepartmentSpend{}
	for _, r := range selected {
		report.TotalSpend = report.TotalSpend.Add(r.TotalEstimatedCost)
		d, ok := byDept[r.Department]
		if !ok {
			d = &entities.DepartmentSpend{Department: r.Department, Total: decimal.Zero}
			byDept[r.Department] = d
		}
		d.Total = d.Total.Add(r.TotalEstimatedCost)
		d.Count++
	}
	for _, d := range byDept {
		report.DepartmentBreakdown = append(report.DepartmentBreakdown, *d)
	}
	sort.Slice(report.DepartmentBreakdown, func(i, j int) bool {
		a, b := report.DepartmentBreakdown[i], report.DepartmentBreakdown[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Department < b.Department
	})

	analysis, err := callExternal(ctx, u.timeout, "report-writer", func(ctx context.Context) (string, error) {
		return u.writer.Summarize(ctx, selected, branch.Name, start.Format("January 2006"))
	})
	if err != nil {
		logging.LogError("reports", "build", "summarize month", branchID, err)
		return entities.MonthlyReport{}, nil, err
	}
	report.AIAnalysis = analysis
	return report, selected, nil
}
