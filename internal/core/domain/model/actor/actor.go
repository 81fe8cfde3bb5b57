// Package actor models who is acting on an order: the customer who owns it or an
// operator with the elevated role.
package actor

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor")

// Role is the permission level of an actor.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Operator
)

var roleNames = map[Role]string{
	Customer: "customer",
	Operator: "operator",
}

// ParseRole accepts "customer" and "operator"; "admin" is an alias of operator.
func ParseRole(s string) (Role, error) {
	if s == "admin" {
		return Operator, nil
	}
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("actor role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsOperator() bool {
	return a.role == Operator
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
