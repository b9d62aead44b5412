package client

import "errors"

// Sentinels for errors.Is; the concrete types below carry the user-facing text.
var (
	ErrValidation         = errors.New("validation failed")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// ValidationError - 백엔드가 입력을 거절함 (4xx). 입력을 고치면 복구 가능.
type ValidationError struct {
	Message string
	Status  int
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ServiceUnavailableError - 네트워크/서버 장애 (5xx, timeout). 잠시 후 재시도.
type ServiceUnavailableError struct {
	Message string
	Status  int
	Cause   error
}

func (e *ServiceUnavailableError) Error() string { return e.Message }

func (e *ServiceUnavailableError) Unwrap() error { return e.Cause }

func (e *ServiceUnavailableError) Is(target error) bool { return target == ErrServiceUnavailable }
