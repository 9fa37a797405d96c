package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomersHandler struct{ svc service.PartyService }

func NewCustomersHandler(svc service.PartyService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CustomersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	resp, err := h.svc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomersHandler) List(c *gin.Context) {
	var filter dto.CustomerFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
