package entity

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles known to the storefront.
type Role int

const (
	RoleCustomer Role = iota + 1
	RoleEmployee
	RoleAdministrator
)

// Stored role names, as they appear in the roles table.
const (
	roleNameCustomer      = "cliente"
	roleNameEmployee      = "empleado"
	roleNameAdministrator = "administrador"
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return roleNameCustomer
	case RoleEmployee:
		return roleNameEmployee
	case RoleAdministrator:
		return roleNameAdministrator
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleEmployee, RoleAdministrator:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case roleNameCustomer:
		return RoleCustomer, nil
	case roleNameEmployee:
		return RoleEmployee, nil
	case roleNameAdministrator:
		return RoleAdministrator, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) CanAccessAdminPanel() bool {
	switch r {
	case RoleAdministrator, RoleEmployee:
		return true
	case RoleCustomer:
		return false
	default:
		return false
	}
}

// Landing is where a freshly signed-in user is sent.
func (r Role) Landing() string {
	switch r {
	case RoleAdministrator, RoleEmployee:
		return "admin"
	case RoleCustomer:
		return "cart"
	default:
		return "cart"
	}
}

// Portal is the login entry point a user chose.
type Portal string

const (
	PortalCustomer Portal = "cliente"
	PortalEmployee Portal = "empleado"
	PortalAdmin    Portal = "admin"
)

func ParsePortal(s string) (Portal, error) {
	switch Portal(strings.ToLower(strings.TrimSpace(s))) {
	case PortalCustomer, "":
		return PortalCustomer, nil
	case PortalEmployee:
		return PortalEmployee, nil
	case PortalAdmin:
		return PortalAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPortal, s)
	}
}

// Admits reports whether a user with role r may sign in through portal p.
func (p Portal) Admits(r Role) bool {
	switch p {
	case PortalCustomer:
		return r == RoleCustomer
	case PortalEmployee:
		return r == RoleEmployee || r == RoleAdministrator
	case PortalAdmin:
		return r == RoleAdministrator
	default:
		return false
	}
}
