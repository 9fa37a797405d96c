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

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler {
	return &SalesHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar venda
// @Description  Cria a venda, deduz o estoque dos itens e enfileira o recibo por e-mail.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateSaleRequest true "Venda"
// @Success      201 {object} dto.SaleResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSale(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	resp, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      Listar vendas
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        customer_id query string false "UUID do cliente"
// @Param        start_date query string false "AAAA-MM-DD"
// @Param        end_date query string false "AAAA-MM-DD"
// @Param        page query int false "Página"
// @Param        limit query int false "Itens por página"
// @Success      200 {object} dto.Paginated[dto.SaleResponse]
// @Router       /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
