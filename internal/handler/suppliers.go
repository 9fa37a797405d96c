package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SuppliersHandler struct{ svc service.PartyService }

func NewSuppliersHandler(svc service.PartyService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SuppliersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	resp, err := h.svc.GetSupplier(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SuppliersHandler) List(c *gin.Context) {
	var filter dto.SupplierFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListSuppliers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
