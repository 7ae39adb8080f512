package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when attempting to use an improperly
// initialized Actor. Actors must be created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via the NewActor constructor")

// Role classifies the authenticated caller of an operation. Identity and role
// are established by the external authentication collaborator; the core only
// checks them against the role required by each lifecycle edge.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the ordering customer. Cancellation and refund
	// requests are customer operations.
	RoleCustomer

	// RoleStaff is back-office staff. Staff may perform administrative
	// operations alongside admins.
	RoleStaff

	// RoleAdmin is the administrator role required for verification,
	// approval, resolution, and scheduling operations.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleStaff:    "staff",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name supplied by the authentication collaborator.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the lowercase role name.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// CanAdminister reports whether the role may perform admin-only operations.
// Both admins and staff qualify.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Validate checks the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleStaff && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated caller of an operation: an identity plus a role.
// The fulfillment core receives actors from the transport layer and never
// issues or checks credentials itself.
type Actor struct {
	id    UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate ensures the actor was created via NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
