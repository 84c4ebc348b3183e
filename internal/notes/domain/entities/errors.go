package entities

import "errors"

// Code - класс ошибки уровня приложения.
type Code string

// Классы ошибок.
const (
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeInternal        Code = "internal"
)

// Сообщения, возвращаемые клиенту.
const (
	MsgTitleDescriptionRequired = "Title and description are required."
	MsgInvalidCategory          = "Invalid category"
	MsgNoNotesForCategory       = "No notes found for the given category"
	MsgInternal                 = "internal error"
)

// Ошибки валидации и поиска.
var (
	ErrTitleDescriptionRequired = &Error{Code: CodeInvalidArgument, Message: MsgTitleDescriptionRequired}
	ErrInvalidCategory          = &Error{Code: CodeInvalidArgument, Message: MsgInvalidCategory}
	ErrNoNotesForCategory       = &Error{Code: CodeNotFound, Message: MsgNoNotesForCategory}
)

// Error - ошибка с классом и сообщением для клиента.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" && e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Internal оборачивает ошибку хранилища, скрывая ее текст от клиента.
func Internal(message string, cause error) error {
	return &Error{Code: CodeInternal, Message: message, Err: cause}
}

// CodeOf возвращает класс ошибки; нетипизированные ошибки считаются внутренними.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != "" {
		return coded.Code
	}
	return CodeInternal
}

// MessageOf возвращает сообщение для клиента.
// Текст внутренних ошибок не раскрывается.
func MessageOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != CodeInternal && coded.Message != "" {
		return coded.Message
	}
	return MsgInternal
}
