package service_test

import (
	"context"
	"testing"

	"github.com/eder5on/Estoque/internal/config"
	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubUserRepo) {
	users := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(users, nil, cfg), users
}

func TestRegister_DefaultsToViewer(t *testing.T) {
	svc, _ := buildAuthSvc()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@estoque.local",
		Password: "senha-forte-123",
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "viewer", resp.User.Role)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := buildAuthSvc()

	req := dto.RegisterRequest{Email: "dup@estoque.local", Password: "senha-forte-123", Name: "Dup"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "x@estoque.local",
		Password: "senha-forte-123",
		Name:     "X",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestLogin_Success(t *testing.T) {
	svc, users := buildAuthSvc()
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "joao@estoque.local",
		Password: "senha-forte-123",
		Name:     "Joao",
		Role:     "operator",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "joao@estoque.local",
		Password: "senha-forte-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "operator", resp.User.Role)

	stored, err := users.FindByEmail(context.Background(), "joao@estoque.local")
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "maria@estoque.local",
		Password: "senha-forte-123",
		Name:     "Maria",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "maria@estoque.local",
		Password: "senha-errada",
	})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@estoque.local",
		Password: "qualquer",
	})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLogin_DeactivatedUser(t *testing.T) {
	svc, users := buildAuthSvc()
	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ex@estoque.local",
		Password: "senha-forte-123",
		Name:     "Ex Funcionario",
	})
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "ex@estoque.local")
	require.NoError(t, err)
	require.NoError(t, users.Deactivate(context.Background(), stored.ID))

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ex@estoque.local",
		Password: "senha-forte-123",
	})
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, _ := buildAuthSvc()
	reg, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "rt@estoque.local",
		Password: "senha-forte-123",
		Name:     "RT",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), reg.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _ := buildAuthSvc()
	reg, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "acc@estoque.local",
		Password: "senha-forte-123",
		Name:     "Acc",
	})
	require.NoError(t, err)

	// The short-lived access token must not be usable as a refresh token.
	_, err = svc.Refresh(context.Background(), reg.Token)
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestRefresh_Garbage(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Refresh(context.Background(), "nao-e-um-jwt")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
