package models

import (
	"errors"
	"fmt"
	"strings"
)

// Виды ошибок
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnavailable  = errors.New("unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrAccountNotFound  = fmt.Errorf("loyalty account %w", ErrNotFound)
	ErrRewardNotFound   = fmt.Errorf("reward %w", ErrNotFound)
	ErrTaskNotFound     = fmt.Errorf("task %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrRedeemNotFound   = fmt.Errorf("redemption %w", ErrNotFound)

	ErrInvalidAmount = fmt.Errorf("%w: valid points amount is required", ErrInvalidInput)
	ErrInvalidStatus = fmt.Errorf("%w: status must be todo, in-progress, done or delivery", ErrInvalidInput)

	ErrInsufficientPoints = fmt.Errorf("%w: not enough points to redeem this reward", ErrConflict)
	ErrCustomerHasTasks   = fmt.Errorf("%w: cannot delete customer with existing tasks", ErrConflict)
	ErrUserExists         = fmt.Errorf("%w: user already exists", ErrConflict)
	ErrAdminDelete        = fmt.Errorf("%w: cannot delete admin user", ErrConflict)
	ErrRedeemProcessed    = fmt.Errorf("%w: redemption request was already processed", ErrConflict)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)

	// версия документа изменилась между чтением и записью
	ErrVersionConflict = fmt.Errorf("%w: account was modified concurrently", ErrConflict)
)

// Ошибки валидации входных данных
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// nil, если ошибок нет
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}
