package models

import "fmt"

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// NotFound builds an ErrorNotFound for a record kind and key.
func NotFound(kind string, key interface{}) ErrorNotFound {
	return ErrorNotFound{Message: fmt.Sprintf("%s %v not found", kind, key)}
}

// ErrorInvalidReference is returned when content references an upload
// the request did not provide.
type ErrorInvalidReference struct {
	Message string
}

func (e ErrorInvalidReference) Error() string { return e.Message }

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorConflict signals a lost race on a lineage. Callers may retry.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }
