package service

import "errors"

// ErrBusy - 같은 페이지에서 이미 요청이 진행 중
var ErrBusy = errors.New("A request is already in progress. Please wait.")

// InputError - 게이트웨이 호출 전에 클라이언트 측에서 막힌 입력 오류
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func inputError(msg string) error { return &InputError{Message: msg} }
