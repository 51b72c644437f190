package entities

import "github.com/shopspring/decimal"

type DepartmentSpend struct {
	Department Department      `json:"department"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
}

// MonthlyReport summarizes a branch's requests for one calendar month.
type MonthlyReport struct {
	BranchID            string            `json:"branchId"`
	BranchName          string            `json:"branchName"`
	Month               string            `json:"month"`
	TotalSpend          decimal.Decimal   `json:"totalSpend"`
	RequestCount        int               `json:"requestCount"`
	DepartmentBreakdown []DepartmentSpend `json:"departmentBreakdown"`
	AIAnalysis          string            `json:"aiAnalysis"`
}
