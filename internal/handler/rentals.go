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

type RentalsHandler struct{ svc service.RentalService }

func NewRentalsHandler(svc service.RentalService) *RentalsHandler {
	return &RentalsHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar locação
// @Description  Cria a locação e reserva a quantidade alugada de cada item.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateRentalRequest true "Locação"
// @Success      201 {object} dto.RentalResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/rentals [post]
func (h *RentalsHandler) Create(c *gin.Context) {
	var req dto.CreateRentalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateRental(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RentalsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	resp, err := h.svc.GetRental(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RentalsHandler) List(c *gin.Context) {
	var filter dto.RentalFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListRentals(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Return godoc
// @Summary      Registrar devolução
// @Description  Devolve itens de uma locação; quando tudo é devolvido a locação é encerrada.
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da locação"
// @Param        body body dto.ReturnRentalRequest true "Itens devolvidos"
// @Success      200 {object} dto.RentalResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/rentals/{id}/return [post]
func (h *RentalsHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.Validation("ID invalido"))
		return
	}
	var req dto.ReturnRentalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ReturnRental(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
