package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/eder5on/Estoque/internal/apierror"
	"github.com/eder5on/Estoque/internal/authz"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	CompanyID *string `json:"company_id,omitempty"`
	Typ       string  `json:"typ"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route. Tokens
// revoked by logout are rejected through the Redis denylist; a nil rdb
// skips that check (unit tests).
func JWTAuth(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Autenticacao requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.Typ != "access" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Token invalido ou expirado"))
			return
		}

		if rdb != nil && claims.ID != "" {
			n, err := rdb.Exists(c.Request.Context(), "denylist:"+claims.ID).Result()
			if err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					apierror.Unauthorized("Token revogado"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
// Admin always passes.
func RequireRole(roles ...authz.Role) gin.HandlerFunc {
	allowed := make(map[authz.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Autenticacao requerida"))
			return
		}
		role := authz.Role(claims.Role)
		if role != authz.RoleAdmin && !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.Forbidden("Permissoes insuficientes"))
			return
		}
		c.Next()
	}
}

// RequirePermission rejects requests whose role lacks the permission.
func RequirePermission(p authz.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Autenticacao requerida"))
			return
		}
		if !authz.Has(authz.Role(claims.Role), p) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.Forbidden("Permissoes insuficientes"))
			return
		}
		c.Next()
	}
}

// AuthorizeInventory checks that the inventory record in the :id param
// belongs to the caller's company (via its location). Admins bypass; users
// without a company are rejected.
func AuthorizeInventory(inventory repository.InventoryRepository, companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Autenticacao requerida"))
			return
		}
		if authz.Role(claims.Role) == authz.RoleAdmin {
			c.Next()
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				apierror.Validation("id invalido"))
			return
		}
		rec, err := inventory.FindByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound,
				apierror.NotFound("Registro nao encontrado"))
			return
		}
		loc, err := companies.FindLocationByID(c.Request.Context(), rec.LocationID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound,
				apierror.NotFound("Local nao encontrado"))
			return
		}
		if claims.CompanyID == nil || *claims.CompanyID != loc.CompanyID.String() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.Forbidden("Recurso pertence a outra empresa"))
			return
		}
		c.Next()
	}
}

// APIKeyAuth authenticates integration clients via the X-API-Key header.
// Used on machine endpoints that have no interactive user.
func APIKeyAuth(keys repository.APIKeyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Chave de API requerida"))
			return
		}
		k, err := keys.FindActiveByKey(c.Request.Context(), key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Chave de API invalida"))
			return
		}
		if k.ExpiresAt != nil && k.ExpiresAt.Before(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.Unauthorized("Chave de API expirada"))
			return
		}
		_ = keys.TouchLastUsed(c.Request.Context(), k.ID)
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

// UserID returns the authenticated user id, or nil on unauthenticated paths.
func UserID(c *gin.Context) *uuid.UUID {
	claims := GetClaims(c)
	if claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}
