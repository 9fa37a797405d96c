package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Painel gerencial
// @Description  Totais de produtos, valor de estoque, alertas, vendas do período e locações ativas.
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        period query int false "Janela em dias (padrão 30)"
// @Success      200 {object} dto.DashboardResponse
// @Router       /v1/reports/dashboard [get]
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	var query dto.ReportQuery
	if !bindQuery(c, &query) {
		return
	}
	resp, err := h.svc.Dashboard(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) KPIs(c *gin.Context) {
	var query dto.ReportQuery
	if !bindQuery(c, &query) {
		return
	}
	resp, err := h.svc.KPIs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
