package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"Amount must be > 0"` // Description of the error
	Field string `json:"field,omitempty" example:"amount"`   // The field that failed validation, if any
}

// NewError writes an error response.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		e.Field = validationErr.Field
	}

	c.AbortWithStatusJSON(status, e)
}

// ErrorHandler writes the response for an error returned by the service.
func ErrorHandler(c *gin.Context, err error) {
	code := status(err)

	switch code {
	case http.StatusBadRequest, http.StatusNotFound:
		NewError(c, code, err)

	case http.StatusServiceUnavailable:
		log.Warn().Str("request-id", requestid.Get(c)).Msg(database.Describe(err))
		NewError(c, code, err)

	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

		message := "an error occurred on the server during your request"
		var persistenceErr *store.PersistenceError
		if errors.As(err, &persistenceErr) {
			message = persistenceErr.Message()
		}

		NewError(c, code, fmt.Errorf("%s, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", message, requestid.Get(c)))
	}
}

// status returns the HTTP status code for an error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, store.ErrAlreadyPersisted),
		errors.Is(err, store.ErrNotPersisted),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrRequestBodyEmpty),
		errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidQueryString),
		errors.Is(err, ErrUnknownCategory):
		return http.StatusBadRequest

	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, database.ErrConnect):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
