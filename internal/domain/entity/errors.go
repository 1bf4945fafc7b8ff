package entity

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidArgument
	KindStorageUnavailable
	KindCollaboratorFailure
	KindNotFound
	KindUnauthenticated
	KindForbidden
	KindConflict
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindCollaboratorFailure:
		return "collaborator_failure"
	case KindNotFound:
		return "not_found"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidIndex       = errors.New("cart line index out of range")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrQuantityOverflow   = errors.New("quantity exceeds the largest allowed value")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password must have at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPortalDenied       = errors.New("role is not allowed to sign in through this portal")
	ErrNotAuthenticated   = errors.New("no active session")
	ErrForbidden          = errors.New("role is not allowed to perform this action")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidProduct     = errors.New("invalid product data")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownPortal      = errors.New("unknown portal")
	ErrInvalidCustomer    = errors.New("customer name and email are required")
)

// Error carries a failure kind so callers can react without string matching.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func InvalidArgument(op string, err error) error {
	return NewError(KindInvalidArgument, op, err)
}

func StorageUnavailable(op string, err error) error {
	return NewError(KindStorageUnavailable, op, err)
}

func CollaboratorFailure(op string, err error) error {
	return NewError(KindCollaboratorFailure, op, err)
}

// KindOf returns the kind of the outermost *Error in the chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
