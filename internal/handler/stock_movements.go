package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/middleware"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type MovementsHandler struct{ svc service.StockService }

func NewMovementsHandler(svc service.StockService) *MovementsHandler {
	return &MovementsHandler{svc: svc}
}

// List godoc
// @Summary      Histórico de movimentações
// @Description  Lista movimentações de estoque com filtros por produto, local, tipo e período.
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        product_id query string false "UUID do produto"
// @Param        location_id query string false "UUID do local"
// @Param        type query string false "entrada|saida|transferencia|venda|locacao|devolucao|perda"
// @Param        page query int false "Página"
// @Param        limit query int false "Itens por página"
// @Success      200 {object} dto.Paginated[dto.MovementResponse]
// @Failure      400 {object} apierror.APIError
// @Router       /v1/stock-movements [get]
func (h *MovementsHandler) List(c *gin.Context) {
	var filter dto.MovementFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary      Movimentação manual
// @Description  Registra um ajuste manual de estoque. Saídas exigem saldo disponível.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateMovementRequest true "Movimentação"
// @Success      201 {object} dto.MovementResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/stock-movements [post]
func (h *MovementsHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterMovement(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
