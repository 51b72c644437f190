package routes

import (
	"hotel_procurement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathRequests  = "/requests"
	PathAnalytics = "/analytics"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST(PathAuth+"/login", authHandler.Login)
}

func addRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.PurchaseRequestHandler, invoiceHandler *handlers.InvoiceHandler, queryHandler *handlers.QueryHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", requestHandler.CreateRequest)
		requests.GET("", queryHandler.ListRequests)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PUT("/:id", requestHandler.EditRequest)
		requests.POST("/:id/resubmit", requestHandler.ResubmitRequest)

		requests.POST("/:id/approve", requestHandler.ApproveRequest)
		requests.POST("/:id/reject", requestHandler.RejectRequest)
		requests.POST("/:id/return", requestHandler.ReturnRequest)
		requests.POST("/:id/purchase", requestHandler.MarkPurchased)
		requests.POST("/:id/bank-round", requestHandler.CompleteBankRound)

		requests.POST("/:id/attachments", requestHandler.AddAttachment)
		requests.DELETE("/:id/attachments/:attachment_id", requestHandler.RemoveAttachment)

		requests.POST("/:id/invoice/preview", invoiceHandler.PreviewInvoice)
		requests.POST("/:id/invoice/confirm", invoiceHandler.ConfirmInvoice)
	}

	rg.GET(PathAnalytics, queryHandler.Analytics)
}
