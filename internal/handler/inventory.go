package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/middleware"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct{ svc service.StockService }

func NewInventoryHandler(svc service.StockService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.InventoryFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListInventory(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Entry godoc
// @Summary      Entrada de mercadoria
// @Description  Registra a chegada de estoque, criando o registro de inventário quando ainda não existe.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.StockEntryRequest true "Entrada"
// @Success      201 {object} dto.InventoryResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/inventory/entry [post]
func (h *InventoryHandler) Entry(c *gin.Context) {
	var req dto.StockEntryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterEntry(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	var req dto.UpdateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateInventory(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
