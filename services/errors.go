package services

import (
	"errors"
	"fmt"
)

// Business errors. All of them are recoverable at the request boundary:
// controllers translate them into structured 4xx responses.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderStatus       = errors.New("order status error")
	ErrShoppingCartEmpty = errors.New("shopping cart is empty")
	ErrAddressBookEmpty  = errors.New("address book is empty")

	ErrSetmealEnableFailed = errors.New("setmeal contains a disabled dish and cannot be enabled")

	ErrAccountNotFound = errors.New("account not found")
	ErrPasswordError   = errors.New("password error")
	ErrAccountLocked   = errors.New("account locked")
	ErrLoginFailed     = errors.New("login failed")

	ErrAddressNotFound = errors.New("address not found")
)

// DeletionNotAllowedError blocks a delete while live references or an
// enabled status still exist.
type DeletionNotAllowedError struct {
	Reason string
}

func (e *DeletionNotAllowedError) Error() string { return e.Reason }

// DuplicateError is the typed re-expression of a unique-constraint
// violation from the store, carrying the offending value instead of a
// message to be string-parsed.
type DuplicateError struct {
	Value string
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("%s already exists", e.Value) }
