package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a transfer would overdraw its source account.
var ErrInsufficientFunds = errors.New("insufficient funds in source account")

// ErrInsufficientCredit indicates a transfer from a credit card exceeds its available credit.
var ErrInsufficientCredit = errors.New("insufficient credit available")
