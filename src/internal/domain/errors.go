package domain

import (
	"errors"
	"strings"

	"github.com/investlab/investment-gateway/src/internal/commons"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrNotEligible = errors.New("Ativo não elegível para simulação (sem taxa diária fixa)")
var ErrSimulationOutOfRange = errors.New("Resultado da simulação excede o limite numérico suportado")

// NotFoundError is a lookup miss carrying the message shown to the caller.
type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []commons.FieldError
}

// NewValidationError returns nil when fields is empty.
func NewValidationError(fields ...commons.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// BusinessRuleError is a failure raised by a database procedure, such as insufficient balance.
type BusinessRuleError struct {
	Message string
	Err     error
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

func (e *BusinessRuleError) Unwrap() error {
	return e.Err
}
