package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompaniesHandler covers companies and their inventory locations.
type CompaniesHandler struct{ svc service.PartyService }

func NewCompaniesHandler(svc service.PartyService) *CompaniesHandler {
	return &CompaniesHandler{svc: svc}
}

func (h *CompaniesHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CompaniesHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.ListCompanies(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompaniesHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateLocation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CompaniesHandler) ListLocations(c *gin.Context) {
	var companyID *uuid.UUID
	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Validation("company_id invalido"))
			return
		}
		companyID = &id
	}
	resp, err := h.svc.ListLocations(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
