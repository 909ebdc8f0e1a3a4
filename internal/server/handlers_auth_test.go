package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanova/curanova-site/internal/types"
)

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSiteLogin(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username": "hr@curanova.ai", "password": "admin-pass"}`
	rec := env.do(t, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookie := findCookie(rec, "admin_token")
	require.NotNil(t, cookie, "site login must set admin_token")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.NotEmpty(t, cookie.Value)
}

func TestSiteLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	body := `{"username": "hr@curanova.ai", "password": "wrong"}`
	rec := env.do(t, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, findCookie(rec, "admin_token"))
}

func TestHRLogin(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email": "hr@curanova.ai", "password": "admin-pass"}`
	rec := env.do(t, httptest.NewRequest("POST", "/api/careers/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cookie := findCookie(rec, "hr_token")
	require.NotNil(t, cookie)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCandidateRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email": "ada@example.com", "password": "hunter2", "name": "Ada"}`
	rec := env.do(t, httptest.NewRequest("POST", "/api/careers/candidate/register", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, findCookie(rec, "candidate_token"))

	// Same email again conflicts.
	rec = env.do(t, httptest.NewRequest("POST", "/api/careers/candidate/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// And the new account can log in.
	login := `{"email": "ada@example.com", "password": "hunter2"}`
	rec = env.do(t, httptest.NewRequest("POST", "/api/careers/candidate/login", strings.NewReader(login)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, findCookie(rec, "candidate_token"))
}

func TestCandidateRegister_ShortPassword(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email": "ada@example.com", "password": "short"}`
	rec := env.do(t, httptest.NewRequest("POST", "/api/careers/candidate/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify(t *testing.T) {
	env := newTestEnv(t)

	// No cookie: authenticated=false, still 200.
	rec := env.do(t, httptest.NewRequest("GET", "/api/careers/candidate/verify", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[types.VerifyResponse](t, rec)
	assert.False(t, body.Authenticated)

	_, cookie := env.seedCandidate(t, "ada@example.com")
	req := httptest.NewRequest("GET", "/api/careers/candidate/verify", nil)
	req.AddCookie(cookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody[types.VerifyResponse](t, rec)
	assert.True(t, body.Authenticated)
	assert.NotNil(t, body.User)
}

func TestVerify_RejectsWrongKind(t *testing.T) {
	env := newTestEnv(t)

	// An HR cookie must not verify as a site-admin session even though the
	// verify endpoint only differs by kind.
	req := httptest.NewRequest("GET", "/api/auth/verify", nil)
	hr := env.hrCookie(t)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: hr.Value})
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[types.VerifyResponse](t, rec)
	assert.False(t, body.Authenticated)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, httptest.NewRequest("POST", "/api/careers/candidate/logout", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(rec, "candidate_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "logout must expire the cookie")
}
