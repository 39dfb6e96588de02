package routes

import (
	"quotely/internal/adapter/http/handlers"
	"quotely/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotation  = "/quotation"
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
)

// Every quotation route needs a confirmed tenant host.
func addQuotationRoutes(rg *gin.RouterGroup, draftHandler *handlers.QuotationDraftHandler, quotationHandler *handlers.QuotationHandler, paymentHandler *handlers.QuotationPaymentHandler) {
	rg = rg.Group("", middleware.RequireTenant())

	draft := rg.Group(PathQuotation)
	{
		draft.GET("", draftHandler.GetDraft)
		draft.DELETE("", draftHandler.ClearDraft)
		draft.POST("/lines", draftHandler.AddLine)
		draft.DELETE("/lines/:index", draftHandler.RemoveLine)
		draft.POST("/lines/:index/increment", draftHandler.IncrementLine)
		draft.POST("/lines/:index/decrement", draftHandler.DecrementLine)
		draft.PUT("/details", draftHandler.UpdateDetails)
		draft.POST("/pdf", draftHandler.ExportPDF)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.SaveDraft)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.PATCH("/:id/approve", quotationHandler.ApproveQuotation)
		quotations.PATCH("/:id/reject", quotationHandler.RejectQuotation)
		quotations.PATCH("/:id/cancel", quotationHandler.CancelQuotation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quotation_id", paymentHandler.CreatePayment)
		payments.GET("/:quotation_id", paymentHandler.GetLatestPayment)
		payments.GET("/:quotation_id/:payment_id", paymentHandler.GetPayment)
	}
}
