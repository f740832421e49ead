package healthz

import (
	"context"
	"net/http"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Checker probes the database connection.
type Checker interface {
	CheckConnection(ctx context.Context) database.Health
}

type Response struct {
	Data database.Health `json:"data"` // Result of the connectivity check
}

func RegisterRoutes(r *gin.RouterGroup, checker Checker) {
	r.OPTIONS("", Options)
	r.GET("", Get(checker))
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler for the connectivity check
//
//	@Summary		Get health
//	@Description	Connects to the database, runs a trivial query and reports the result
//	@Tags			General
//	@Produce		json
//	@Success		200	{object}	Response
//	@Failure		503	{object}	Response
//	@Router			/healthz [get]
func Get(checker Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := checker.CheckConnection(c.Request.Context())

		status := http.StatusOK
		if !health.OK {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, Response{Data: health})
	}
}
