package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookie_SetAndClear(t *testing.T) {
	c := New("eduglow_session", true, time.Hour)

	rec := httptest.NewRecorder()
	c.Set(rec, "token")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookies[0].SameSite)

	rec = httptest.NewRecorder()
	c.Clear(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookie_InsecureUsesLax(t *testing.T) {
	c := New("eduglow_session", false, time.Hour)
	rec := httptest.NewRecorder()
	c.Set(rec, "token")
	assert.Equal(t, http.SameSiteLaxMode, rec.Result().Cookies()[0].SameSite)
}

func TestCookie_Read(t *testing.T) {
	c := New("eduglow_session", true, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, c.Read(req))

	req.AddCookie(&http.Cookie{Name: "eduglow_session", Value: "abc"})
	assert.Equal(t, "abc", c.Read(req))
}
