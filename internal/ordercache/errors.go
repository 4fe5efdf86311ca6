package ordercache

import "errors"

var (
	ErrEmptyOrderID     = errors.New("orderID cannot be empty")
	ErrDuplicateOrderID = errors.New("orderID already exists")
	ErrEmptySecurityID  = errors.New("securityID cannot be empty")
	ErrEmptyUser        = errors.New("user cannot be empty")
	ErrEmptyCompany     = errors.New("company cannot be empty")
	ErrZeroQty          = errors.New("qty must be greater than 0")
	ErrInvalidSide      = errors.New("invalid side")
)
