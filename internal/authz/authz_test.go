package authz_test

import (
	"testing"

	"github.com/eder5on/Estoque/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestAdminBypassesEveryCheck(t *testing.T) {
	for _, p := range []authz.Permission{
		authz.PermRead, authz.PermWrite, authz.PermUpdate,
		authz.PermDeleteInventory, authz.PermManageSales, authz.PermManageRentals,
	} {
		assert.True(t, authz.Has(authz.RoleAdmin, p), "admin must hold %s", p)
	}
}

func TestViewerIsReadOnly(t *testing.T) {
	assert.True(t, authz.Has(authz.RoleViewer, authz.PermRead))

	for _, p := range []authz.Permission{
		authz.PermWrite, authz.PermUpdate, authz.PermDeleteInventory,
		authz.PermManageSales, authz.PermManageRentals,
	} {
		assert.False(t, authz.Has(authz.RoleViewer, p), "viewer must not hold %s", p)
	}
}

func TestOperatorCannotAdjustInventory(t *testing.T) {
	assert.True(t, authz.Has(authz.RoleOperator, authz.PermWrite))
	assert.True(t, authz.Has(authz.RoleOperator, authz.PermManageSales))
	assert.False(t, authz.Has(authz.RoleOperator, authz.PermUpdate))
	assert.False(t, authz.Has(authz.RoleOperator, authz.PermDeleteInventory))
}

func TestManagerHoldsFullOperationalSet(t *testing.T) {
	assert.True(t, authz.Has(authz.RoleManager, authz.PermDeleteInventory))
	assert.True(t, authz.Has(authz.RoleManager, authz.PermManageRentals))
}

func TestUnknownRoleHasNothing(t *testing.T) {
	assert.False(t, authz.Role("superuser").Valid())
	assert.False(t, authz.Has(authz.Role("superuser"), authz.PermRead))
}

func TestPermissionsTotalOverRoles(t *testing.T) {
	for _, r := range authz.Roles {
		assert.NotEmpty(t, authz.Permissions(r), "role %s must map to at least one permission", r)
	}
}
