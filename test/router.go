package test

import (
	"net/url"
	"testing"

	"github.com/expense-tracker/backend/internal/router"
	"github.com/expense-tracker/backend/internal/service"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// BaseURL is the public URL of the API in tests.
const BaseURL = "http://example.com"

// Service returns a service backed by a fresh SQLite database.
func Service(t *testing.T) *service.Service {
	p := Provider(t)
	return service.New(store.New(p), p)
}

// Router returns a router serving the full API for the service.
// The router is torn down when the test finishes.
func Router(t *testing.T, s *service.Service) *gin.Engine {
	u, err := url.Parse(BaseURL)
	require.Nil(t, err)

	r, teardown, err := router.Config(u, nil)
	require.Nil(t, err, "Router could not be initialized")
	t.Cleanup(teardown)

	router.AttachRoutes(r.Group("/"), s, false)
	return r
}
