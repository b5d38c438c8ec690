package services

import "errors"

// Application error taxonomy. Controllers report these through the response
// envelope; tests assert on them with errors.Is.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrItemNotFound        = errors.New("item not found in cart")
	ErrOutOfStock          = errors.New("sweet is out of stock")
	ErrInvalidQuantity     = errors.New("quantity must be a positive number")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled at this stage")
	ErrUnauthorized        = errors.New("unauthorized access to order")
	ErrPaymentVerification = errors.New("invalid payment signature")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrEmailTaken          = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
