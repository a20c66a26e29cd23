package service

import "github.com/pkg/errors"

type ErrorCode string

const (
	ErrorCodeTeamExists         ErrorCode = "TEAM_EXISTS"
	ErrorCodePersonExists       ErrorCode = "PERSON_EXISTS"
	ErrorCodeTaskCompleted      ErrorCode = "TASK_COMPLETED"
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeUnspecified        ErrorCode = "UNSPECIFIED"
	ErrorCodeInvalidBody        ErrorCode = "INVALID_BODY"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden          ErrorCode = "FORBIDDEN"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

// asError extracts the service error returned from a transaction callback.
// Any other failure becomes UNSPECIFIED with the given message.
func asError(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var res *Error
	if errors.As(err, &res) {
		return res
	}
	return NewError(ErrorCodeUnspecified, message)
}
