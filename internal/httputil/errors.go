package httputil

import "errors"

var (
	ErrInvalidBody        = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty   = errors.New("the request body must not be empty")
	ErrInvalidID          = errors.New("the specified expense ID is not a positive integer")
	ErrNotFound           = errors.New("there is no expense for the ID you specified")
	ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
	ErrUnknownCategory    = errors.New("the category filter must be one of the categories listed at /v1/categories")
)
