package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contactErrors "github.com/Sp94dev/investdom-website/contact/errors"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
	platformemail "github.com/Sp94dev/investdom-website/internal/platform/email"
	"github.com/Sp94dev/investdom-website/internal/testutil"
	"github.com/Sp94dev/investdom-website/internal/types"
)

func loadConfig(t *testing.T, env map[string]string) *platformconfig.Config {
	t.Helper()
	cfg, err := platformconfig.LoadFromMap(env)
	require.NoError(t, err)
	return cfg
}

func validSubmission() map[string]string {
	return map[string]string{
		"name":          "Anna",
		"email":         "a@b.com",
		"temat_wybrany": "kupno",
		"message":       "Hi",
	}
}

func TestNew_ContactEndToEnd(t *testing.T) {
	sender := testutil.NewFakeEmailSender()
	sender.MessageID = "abc"
	app := New(loadConfig(t, map[string]string{"CONTACT_EMAIL": "office@example.com"}), Deps{Sender: sender})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodPost, "/api/contact", validSubmission()).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(types.HeaderRequestID))

	body := testutil.DecodeJSON(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "abc", body["messageId"])

	sent := sender.LastSent()
	require.NotNil(t, sent)
	assert.Equal(t, []string{"office@example.com"}, sent.To)
	assert.Equal(t, platformconfig.DefaultContactFrom, sent.From)
}

func TestNew_ProviderRejectionDetails(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"The domain is not verified"}`))
	}))
	defer provider.Close()

	sender, err := platformemail.NewResendSender("re_test", provider.URL, provider.Client())
	require.NoError(t, err)

	app := New(loadConfig(t, map[string]string{}), Deps{Sender: sender})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodPost, "/api/contact", validSubmission()).Send()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := testutil.DecodeJSON(t, resp)
	assert.Equal(t, contactErrors.MsgDelivery, body["error"])
	assert.Equal(t, "The domain is not verified", body["details"])
}

func TestNew_WithoutSender(t *testing.T) {
	app := New(loadConfig(t, map[string]string{}), Deps{})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodPost, "/api/contact", validSubmission()).Send()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, contactErrors.MsgConfig, testutil.DecodeJSON(t, resp)["error"])

	resp = helper.NewRequest(http.MethodGet, "/health", nil).Send()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := testutil.DecodeJSON(t, resp)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, false, health["emailConfigured"])
}

func TestNew_RecaptchaWired(t *testing.T) {
	sender := testutil.NewFakeEmailSender()
	app := New(loadConfig(t, map[string]string{}), Deps{
		Sender:   sender,
		Verifier: &testutil.FakeRecaptchaVerifier{ShouldSucceed: false},
	})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodPost, "/api/contact", validSubmission()).Send()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, contactErrors.MsgCaptchaRejected, testutil.DecodeJSON(t, resp)["error"])
	assert.Equal(t, 0, sender.CallCount())
}

func TestNew_UnknownRouteIsJSON(t *testing.T) {
	app := New(loadConfig(t, map[string]string{}), Deps{})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodGet, "/api/missing", nil).Send()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, testutil.DecodeJSON(t, resp)["error"])
}

func TestNew_CORSPreflight(t *testing.T) {
	app := New(loadConfig(t, map[string]string{"WEB_DOMAIN": "http://localhost:4321"}), Deps{})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodOptions, "/api/contact", nil).
		WithHeader("Origin", "http://localhost:4321").
		WithHeader("Access-Control-Request-Method", http.MethodPost).
		Send()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:4321", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNew_ServesStaticSite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>InvestDom</h1>"), 0o600))

	app := New(loadConfig(t, map[string]string{"SITE_DIR": dir}), Deps{})
	helper := testutil.NewHTTPHelper(t, app)

	resp := helper.NewRequest(http.MethodGet, "/", nil).Send()
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
