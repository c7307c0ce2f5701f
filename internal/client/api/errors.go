package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kwokm/mk-todo/internal/domain"
)

// ErrTransport matches every *TransportError via errors.Is.
var ErrTransport = errors.New("transport error")

// TransportError is a network failure or a non-2xx response. Status is 0
// when no response was received.
type TransportError struct {
	Op      string
	Status  int
	Message string
	Fields  []domain.FieldError
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: %d %s", e.Op, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": transport error"
	}
}

// Is makes errors.Is(err, ErrTransport) hold.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// NotFound reports a 404 response.
func (e *TransportError) NotFound() bool { return e.Status == http.StatusNotFound }

// Invalid reports a 400 response.
func (e *TransportError) Invalid() bool { return e.Status == http.StatusBadRequest }
