// SPDX-License-Identifier: MIT

package openapi_server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/natevvv/grid-path-search/pkg/grid"
	"github.com/natevvv/grid-path-search/pkg/routing"
)

var (
	// ErrTypeAssertionError is thrown when type an interface does not match the asserted type
	ErrTypeAssertionError = errors.New("unable to assert type")
)

// ParsingError indicates that an error has occurred when parsing request parameters
type ParsingError struct {
	Err error
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

func (e *ParsingError) Error() string {
	return e.Err.Error()
}

// RequiredError indicates that an error has occurred when parsing request parameters
type RequiredError struct {
	Field string
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("required field '%s' is zero value.", e.Field)
}

// ErrorHandler defines the required method for handling error. You may implement it and inject this into a controller if
// you would like errors to be handled differently from the DefaultErrorHandler
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse)

// DefaultErrorHandler defines the default logic on how to handle errors from the controller. Any errors from parsing
// request params will return a StatusBadRequest. Otherwise, the error code originating from the servicer will be used.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error, result *ImplResponse) {
	var parsingErr *ParsingError
	var requiredErr *RequiredError
	switch {
	case errors.As(err, &parsingErr), isInvalidQuery(err):
		_ = EncodeJSONResponse(err.Error(), func(i int) *int { return &i }(http.StatusBadRequest), w)
	case errors.As(err, &requiredErr):
		_ = EncodeJSONResponse(err.Error(), func(i int) *int { return &i }(http.StatusUnprocessableEntity), w)
	default:
		code := http.StatusInternalServerError
		if result != nil && result.Code != 0 {
			code = result.Code
		}
		_ = EncodeJSONResponse(err.Error(), &code, w)
	}
}

// isInvalidQuery reports errors caused by the positions or the mode of a request.
func isInvalidQuery(err error) bool {
	for _, target := range []error{
		grid.ErrOutOfBounds,
		grid.ErrBlocked,
		routing.ErrSameOriginDestination,
		routing.ErrUnknownMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
