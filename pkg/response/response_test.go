package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusTooManyRequests, "Rate limits exceeded, please try again later.")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Rate limits exceeded, please try again later."}`, rec.Body.String())
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"verse": "v"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"verse":"v"}`, rec.Body.String())
}

func TestEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	Empty(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
