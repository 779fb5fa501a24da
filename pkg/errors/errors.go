package chatboard_errors

import (
	"errors"
)

// Common errors
var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSender      = errors.New("invalid sender")
	ErrPersistence        = errors.New("persistence error")
)

// Kind tags a ServiceError with one entry of the service error taxonomy.
type Kind int

const (
	KindAlreadyExists Kind = iota + 1
	KindNotFound
	KindInvalidCredentials
	KindInvalidSender
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindNotFound:
		return "NOT_FOUND"
	case KindInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case KindInvalidSender:
		return "INVALID_SENDER"
	case KindPersistence:
		return "PERSISTENCE_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindNotFound:
		return ErrNotFound
	case KindInvalidCredentials:
		return ErrInvalidCredentials
	case KindInvalidSender:
		return ErrInvalidSender
	case KindPersistence:
		return ErrPersistence
	}
	return nil
}

// ServiceError is the error marker returned by the service layer.
// errors.Is matches it against the sentinel of its Kind; Unwrap exposes the store fault, if any.
type ServiceError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func AlreadyExists(msg string) *ServiceError {
	return &ServiceError{Kind: KindAlreadyExists, Message: msg}
}

func NotFound(msg string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: msg}
}

func InvalidCredentials(msg string) *ServiceError {
	return &ServiceError{Kind: KindInvalidCredentials, Message: msg}
}

func InvalidSender(msg string) *ServiceError {
	return &ServiceError{Kind: KindInvalidSender, Message: msg}
}

func Persistence(msg string, err error) *ServiceError {
	return &ServiceError{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf reports the Kind of err, or 0 when err is not a ServiceError.
func KindOf(err error) Kind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
