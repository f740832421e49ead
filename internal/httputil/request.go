package httputil

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContextURL is the context key for the public base URL of the API.
const ContextURL = "baseURL"

// BaseURL returns the public base URL of the API, without trailing slash.
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}

// ParseID parses a positive integer ID from the path parameter.
// On failure, the error response is already written.
func ParseID(c *gin.Context, param string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 0)
	if err != nil || parsed == 0 {
		ErrorHandler(c, ErrInvalidID)
		return 0, ErrInvalidID
	}

	return uint(parsed), nil
}

// BindData binds the data from the request to the struct passed in the interface.
// On failure, the error response is already written.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			ErrorHandler(c, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		ErrorHandler(c, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}
