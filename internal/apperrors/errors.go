package apperrors

import "fmt"

// AppError carries the HTTP status an operation should surface with. Services
// return it directly and the request boundary turns it into a JSON failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// InvalidCredentials never distinguishes a missing user from a wrong password.
func InvalidCredentials() *AppError {
	return NewAppError(401, "invalid credentials", nil)
}

func NotFound(message string) *AppError {
	return NewAppError(404, message, nil)
}

func NoActiveGame() *AppError {
	return NewAppError(400, "no active game", nil)
}

func AlreadyCompleted() *AppError {
	return NewAppError(409, "attempt already completed", nil)
}

func DuplicateIdentity(message string) *AppError {
	return NewAppError(409, message, nil)
}
