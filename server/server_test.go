package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootHandler(t *testing.T) {
	router := newTestRouter(&mockUserRepo{}, &mockSongRepo{}, t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Hello":"Lyricium"}`, w.Body.String())
}

func TestCORS_AllowListedOriginIsEchoed(t *testing.T) {
	router := newTestRouter(&mockUserRepo{}, &mockSongRepo{}, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/users/get/all", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_FrontendOriginIsEchoed(t *testing.T) {
	router := newTestRouter(&mockUserRepo{}, &mockSongRepo{}, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/users/get/all", nil)
	req.Header.Set("Origin", "http://frontend.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://frontend.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOriginFallsBackToWildcard(t *testing.T) {
	router := newTestRouter(&mockUserRepo{}, &mockSongRepo{}, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/users/get/all", nil)
	req.Header.Set("Origin", "http://elsewhere.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	router := newTestRouter(&mockUserRepo{}, &mockSongRepo{}, t.TempDir())

	req := httptest.NewRequest(http.MethodOptions, "/users/create", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
