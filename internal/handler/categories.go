package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct{ svc service.PartyService }

func NewCategoriesHandler(svc service.PartyService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

func (h *CategoriesHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CategoriesHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.ListCategories(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
