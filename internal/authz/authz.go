// Package authz models roles and permissions as closed enumerations with a
// total role → permission-set function, replacing ad-hoc string lookups.
package authz

// Role is one of the four system roles. The zero value is not a valid role.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Roles lists every valid role, in descending order of capability.
var Roles = []Role{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// Permission is a named capability checked on write endpoints.
type Permission string

const (
	PermRead            Permission = "read"
	PermWrite           Permission = "write"
	PermUpdate          Permission = "update"
	PermDeleteInventory Permission = "delete_inventory"
	PermManageSales     Permission = "manage_sales"
	PermManageRentals   Permission = "manage_rentals"
)

// rolePermissions is total over Roles. Admin is absent on purpose: it
// bypasses permission checks entirely (see Has).
var rolePermissions = map[Role][]Permission{
	RoleManager:  {PermRead, PermWrite, PermUpdate, PermDeleteInventory, PermManageSales, PermManageRentals},
	RoleOperator: {PermRead, PermWrite, PermManageSales, PermManageRentals},
	RoleViewer:   {PermRead},
}

// Permissions returns the capability set of a role. Admin implicitly holds
// every permission.
func Permissions(r Role) []Permission {
	if r == RoleAdmin {
		return []Permission{PermRead, PermWrite, PermUpdate, PermDeleteInventory, PermManageSales, PermManageRentals}
	}
	return rolePermissions[r]
}

// Has reports whether role r grants permission p.
func Has(r Role, p Permission) bool {
	if r == RoleAdmin {
		return true
	}
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}
