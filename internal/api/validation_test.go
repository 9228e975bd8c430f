package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,min=2"`
}

func bindRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bind", func(c *gin.Context) {
		var form signupForm
		if err := c.ShouldBindJSON(&form); err != nil {
			BindError(c, err)
			return
		}
		c.JSON(http.StatusOK, form)
	})
	return router
}

func TestBindError_FieldMessages(t *testing.T) {
	router := bindRouter()

	req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{"email":"not-an-email","name":"a"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details []ValidationError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Details, 2)
	assert.Equal(t, "Email must be a valid email address", resp.Details[0].Message)
	assert.Equal(t, "Name must be at least 2 characters", resp.Details[1].Message)
}

func TestBindError_MalformedJSON(t *testing.T) {
	router := bindRouter()

	req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.NotContains(t, resp.Error, "validation failed")
}

func TestBindError_ValidInputPasses(t *testing.T) {
	router := bindRouter()

	req := httptest.NewRequest("POST", "/bind", strings.NewReader(`{"email":"test@example.com","name":"Alex"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
