package handler

import (
	"net/http"
	"time"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/middleware"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary      Registrar novo usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterRequest true "Dados do usuário"
// @Success      201  {object} dto.AuthResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciais"
// @Success      200  {object} dto.AuthResponse
// @Failure      401  {object} apierror.APIError
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the current access token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.Unauthorized("Autenticacao requerida"))
		return
	}
	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.svc.Logout(c.Request.Context(), claims.ID, expiresAt); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sessao encerrada"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, apierror.Unauthorized("Autenticacao requerida"))
		return
	}
	resp, err := h.svc.Me(c.Request.Context(), *userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, apierror.Unauthorized("Autenticacao requerida"))
		return
	}
	var req dto.UpdateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateProfile(c.Request.Context(), *userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
