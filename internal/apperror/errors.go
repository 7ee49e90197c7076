package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindUpstream    Kind = "upstream"
	KindPersistence Kind = "persistence"
)

const (
	CodeMissingInput        = "MissingInput"
	CodeInvalidInput        = "InvalidInput"
	CodeNotFound            = "NotFound"
	CodeTranscriptionFailed = "TranscriptionFailed"
	CodeEmptyAIResponse     = "EmptyAIResponse"
	CodeChatFailed          = "ChatFailed"
	CodeSynthesisFailed     = "SynthesisFailed"
	CodeExtractionFailed    = "ExtractionFailed"
	CodeAnalysisFailed      = "AnalysisFailed"
	CodePersistenceFailed   = "PersistenceFailed"
)

// Error is returned by use cases. Every error ends the current request;
// nothing in the chain retries.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Detail is the message shown to API callers. Upstream failures pass the
// provider's message through.
func (e *Error) Detail() string {
	if e.Kind == KindUpstream && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message, Cause: cause}
}

func Upstream(code, message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Code: code, Message: message, Cause: cause}
}

func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Code: CodePersistenceFailed, Message: message, Cause: cause}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func HasCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

func StatusCode(err error) int {
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
