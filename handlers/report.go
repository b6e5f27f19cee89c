package handlers

import (
	"net/http"

	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// GetSalesReport aggregates orders per day over ?period=daily|weekly|monthly
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	period := services.Period(c.DefaultQuery("period", string(services.PeriodDaily)))

	report, err := h.Reports.GetSalesReport(c.Request.Context(), period)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	if len(report) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No sales data found for the specified period"})
		return
	}
	c.JSON(http.StatusOK, report)
}
