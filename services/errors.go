package services

import "errors"

// Error kinds. Every domain error below matches exactly one of them via errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	// ErrTableNotFound is returned when a table id does not resolve.
	ErrTableNotFound = kindError{kind: ErrNotFound, msg: "table not found"}
	// ErrMenuItemNotFound is returned when a menu item id does not resolve.
	ErrMenuItemNotFound = kindError{kind: ErrNotFound, msg: "menu item not found"}
	// ErrTableAlreadyReserved is returned when reserving a table that is taken.
	ErrTableAlreadyReserved = kindError{kind: ErrConflict, msg: "table already reserved"}
	// ErrTableNotReserved is returned when ordering against a free table.
	ErrTableNotReserved = kindError{kind: ErrConflict, msg: "invalid or unreserved table"}
	// ErrTableNotReservedForRelease is returned when releasing a table that is already free.
	ErrTableNotReservedForRelease = kindError{kind: ErrConflict, msg: "table is not reserved"}
	// ErrInsufficientStock is returned when the requested quantity exceeds stock.
	ErrInsufficientStock = kindError{kind: ErrConflict, msg: "insufficient stock"}
	// ErrInvalidQuantity is returned for a quantity of zero or less.
	ErrInvalidQuantity = kindError{kind: ErrInvalidInput, msg: "quantity must be greater than zero"}
	// ErrCustomerNameRequired is returned for a blank customer name.
	ErrCustomerNameRequired = kindError{kind: ErrInvalidInput, msg: "customer name is required"}
	// ErrCustomerNameTooLong is returned for names longer than MaxCustomerNameLength runes.
	ErrCustomerNameTooLong = kindError{kind: ErrInvalidInput, msg: "customer name must be at most 100 characters"}
)

type kindError struct {
	kind error
	msg  string
}

func (e kindError) Error() string { return e.msg }

// Is lets errors.Is match the error's kind as well as the error itself.
func (e kindError) Is(target error) bool {
	return target == e.kind
}

// IsDomainError reports whether err is a user-facing domain condition rather
// than a store failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput)
}
