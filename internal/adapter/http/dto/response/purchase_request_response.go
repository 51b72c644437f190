package response

import (
	"time"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase"
)

// PurchaseRequestResponse is a request plus the viewer's action flags.
type PurchaseRequestResponse struct {
	*entities.PurchaseRequest
	Actions usecase.ActionFlags `json:"actions"`
}

func FromRequestView(v usecase.RequestView) PurchaseRequestResponse {
	return PurchaseRequestResponse{PurchaseRequest: v.Request, Actions: v.Actions}
}

func FromRequestViews(views []usecase.RequestView) []PurchaseRequestResponse {
	out := make([]PurchaseRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRequestView(v))
	}
	return out
}

// InvoicePreviewResponse omits the stored document bytes.
type InvoicePreviewResponse struct {
	PreviewID      string                   `json:"previewId"`
	RequestID      string                   `json:"requestId"`
	RequestVersion int64                    `json:"requestVersion"`
	Analysis       entities.InvoiceAnalysis `json:"analysis"`
	FileName       string                   `json:"fileName"`
	MimeType       string                   `json:"mimeType"`
	CreatedAt      time.Time                `json:"createdAt"`
	ExpiresAt      time.Time                `json:"expiresAt"`
}

func FromInvoicePreview(p entities.InvoicePreview) InvoicePreviewResponse {
	return InvoicePreviewResponse{
		PreviewID:      p.ID,
		RequestID:      p.RequestID,
		RequestVersion: p.RequestVersion,
		Analysis:       p.Analysis,
		FileName:       p.FileName,
		MimeType:       p.MimeType,
		CreatedAt:      p.CreatedAt,
		ExpiresAt:      p.ExpiresAt,
	}
}
