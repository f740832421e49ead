package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindData(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	var o struct {
		Name string `json:"name"`
	}

	r.POST("/", func(_ *gin.Context) {
		_ = httputil.BindData(c, &o)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBuffer([]byte(`{ "name": "Drink more water!" }`)))
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusOK, w.Code, "Binding failed: %s", w.Body.String())
	assert.Equal(t, "Drink more water!", o.Name)
}

func TestBindBrokenData(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(_ *gin.Context) {
		var o struct {
			Name string `json:"name"`
		}

		_ = httputil.BindData(c, &o)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBuffer([]byte(`{ broken json: "Drink more water!" }`)))
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusBadRequest, w.Code, "Binding failed: %s", w.Body.String())
	assert.Contains(t, test.DecodeError(t, w.Body.Bytes()), "the body of your request contains invalid or un-parseable data")
}

func TestBindEmptyBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(_ *gin.Context) {
		var o struct {
			Name string `json:"name"`
		}

		_ = httputil.BindData(c, &o)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBuffer([]byte("")))
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusBadRequest, w.Code, "Binding failed: %s", w.Body.String())
	assert.Equal(t, "the request body must not be empty", test.DecodeError(t, w.Body.Bytes()))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		param  string
		status int
	}{
		{"17", http.StatusOK},
		{"0", http.StatusBadRequest},
		{"-3", http.StatusBadRequest},
		{"abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			var id uint
			r.GET("/:id", func(_ *gin.Context) {
				var err error
				id, err = httputil.ParseID(c, "id")
				if err == nil {
					c.Status(http.StatusOK)
				}
			})

			c.Request, _ = http.NewRequest(http.MethodGet, "/"+tt.param, nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, uint(17), id)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		handler gin.HandlerFunc
		allow   string
	}{
		{httputil.OptionsGet, "OPTIONS, GET"},
		{httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{httputil.OptionsPutDelete, "OPTIONS, PUT, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.allow, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.OPTIONS("/", tt.handler)

			req, _ := http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
