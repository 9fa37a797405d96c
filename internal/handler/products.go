package handler

import (
	"net/http"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	resp, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QRCode godoc
// @Summary      QR code do produto
// @Description  Devolve o QR code do SKU como data URL PNG, gerando sob demanda.
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/qr-code [get]
func (h *ProductsHandler) QRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	qr, err := h.svc.GetQRCode(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr_code": qr})
}

// BulkImport godoc
// @Summary      Importação em massa de produtos
// @Description  Cria produtos linha a linha; erros por linha não abortam o lote.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.BulkImportRequest true "Linhas importadas"
// @Success      200 {object} dto.ImportResult
// @Failure      400 {object} apierror.APIError
// @Router       /v1/products/bulk-import [post]
func (h *ProductsHandler) BulkImport(c *gin.Context) {
	var req dto.BulkImportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BulkImport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) LowStock(c *gin.Context) {
	resp, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PriceCheck serves store terminals without authentication.
func (h *ProductsHandler) PriceCheck(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		c.JSON(http.StatusBadRequest, apierror.Validation("codigo de barras requerido"))
		return
	}
	resp, err := h.svc.PriceCheck(c.Request.Context(), barcode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
