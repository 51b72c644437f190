package request

// MonthlyReportQuery selects a branch and a YYYY-MM month.
type MonthlyReportQuery struct {
	BranchID string `form:"branchId" binding:"required"`
	Month    string `form:"month" binding:"required"`
}
