package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/authz"
	"github.com/eder5on/Estoque/internal/config"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// denylistPrefix keys revoked token ids in Redis. Entries expire together
// with the token itself.
const denylistPrefix = "denylist:"

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error)

	ListUsers(ctx context.Context, includeInactive bool) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	users repository.UserRepository
	rdb   *redis.Client
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, rdb *redis.Client, cfg *config.Config) AuthService {
	return &authService{users: users, rdb: rdb, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email ja cadastrado", ErrConflict)
	}

	role := req.Role
	if role == "" {
		role = string(authz.RoleViewer)
	}
	if !authz.Role(role).Valid() {
		return nil, fmt.Errorf("%w: perfil invalido", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if req.CompanyID != nil {
		cid, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: company_id", ErrValidation)
		}
		user.CompanyID = &cid
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: credenciais invalidas", ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: usuario desativado", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: credenciais invalidas", ErrUnauthorized)
	}

	_ = s.users.TouchLastLogin(ctx, user.ID)
	now := time.Now()
	user.LastLogin = &now
	return s.issueTokens(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: refresh token invalido ou expirado", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return nil, fmt.Errorf("%w: refresh token invalido", ErrUnauthorized)
	}
	if jti, ok := claims["jti"].(string); ok && s.isRevoked(ctx, jti) {
		return nil, fmt.Errorf("%w: refresh token revogado", ErrUnauthorized)
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: token mal formado", ErrUnauthorized)
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("%w: token mal formado", ErrUnauthorized)
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil || !user.IsActive {
		return nil, fmt.Errorf("%w: usuario nao encontrado ou inativo", ErrUnauthorized)
	}
	return s.issueTokens(user)
}

// Logout revokes the token by denylisting its id until its own expiry.
func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.rdb == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired
	}
	return s.rdb.Set(ctx, denylistPrefix+tokenID, 1, ttl).Err()
}

func (s *authService) isRevoked(ctx context.Context, tokenID string) bool {
	if s.rdb == nil {
		return false
	}
	n, err := s.rdb.Exists(ctx, denylistPrefix+tokenID).Result()
	return err == nil && n > 0
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: usuario %s", ErrNotFound, userID)
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: usuario %s", ErrNotFound, userID)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context, includeInactive bool) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: usuario %s", ErrNotFound, id)
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !authz.Role(*req.Role).Valid() {
			return nil, fmt.Errorf("%w: perfil invalido", ErrValidation)
		}
		user.Role = *req.Role
	}
	if req.CompanyID != nil {
		cid, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("%w: company_id", ErrValidation)
		}
		user.CompanyID = &cid
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *authService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: usuario %s", ErrNotFound, id)
	}
	return s.users.Deactivate(ctx, id)
}

func (s *authService) issueTokens(user *model.User) (*dto.AuthResponse, error) {
	access, err := s.signToken(user, "access", time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		User:         userToResponse(user),
		Token:        access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
	}, nil
}

func (s *authService) signToken(user *model.User, typ string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"jti":     uuid.NewString(),
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"typ":     typ,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	if user.CompanyID != nil {
		claims["company_id"] = user.CompanyID.String()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func userToResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
	if u.CompanyID != nil {
		cid := u.CompanyID.String()
		resp.CompanyID = &cid
	}
	if u.LastLogin != nil {
		ts := u.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &ts
	}
	return resp
}
