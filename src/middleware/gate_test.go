package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

const (
	frontend  = "https://nicaexpressway.github.io"
	apiHost   = "nicaexpressway-iiw8.onrender.com"
	serverKey = "s3cret"
)

func newTestGate(op OperatorVerifier) *Gate {
	return NewGate(GateConfig{
		AllowedOrigins: []string{frontend},
		AllowedHosts:   []string{apiHost},
		ServerKey:      serverKey,
		Operator:       op,
	})
}

func keys(vals ...string) KeySource {
	var ks KeySource
	for _, v := range vals {
		v := v
		ks = append(ks, func() string { return v })
	}
	return ks
}

func TestAllowedOriginSkipsHostAndKey(t *testing.T) {
	g := newTestGate(nil)
	called := false
	v := g.Evaluate(GateInput{
		Origin:     frontend,
		Host:       "evil.example",
		Method:     http.MethodPost,
		RequireKey: true,
		Keys:       KeySource{func() string { called = true; return "" }},
	})

	assert.Equal(t, Allow, v.Kind)
	assert.False(t, called, "key lookups must not run for browser requests")
	assert.Equal(t, frontend, v.Headers.Get("Access-Control-Allow-Origin"))
}

func TestPreflightFromAllowedOrigin(t *testing.T) {
	v := newTestGate(nil).Evaluate(GateInput{Origin: frontend, Method: http.MethodOptions})

	assert.Equal(t, Preflight, v.Kind)
	assert.Equal(t, http.StatusNoContent, v.Status)
	assert.Nil(t, v.Body)
	assert.Equal(t, "Origin", v.Headers.Get("Vary"))
}

func TestUnknownOriginDeniedEvenWithValidHostAndKey(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodOptions} {
		v := newTestGate(nil).Evaluate(GateInput{
			Origin:     "https://other.example",
			Host:       apiHost,
			Method:     method,
			RequireKey: true,
			Keys:       keys(serverKey),
		})
		assert.Equal(t, Deny, v.Kind, method)
		assert.Equal(t, http.StatusForbidden, v.Status, method)
		assert.Equal(t, gin.H{"error": "CORS denied"}, v.Body)
		assert.Equal(t, "https://other.example", v.Headers.Get("Access-Control-Allow-Origin"))
	}
}

func TestServerToServerHostCheck(t *testing.T) {
	g := newTestGate(nil)

	v := g.Evaluate(GateInput{Host: "evil.example", Method: http.MethodGet})
	assert.Equal(t, Deny, v.Kind)
	assert.Equal(t, http.StatusForbidden, v.Status)

	v = g.Evaluate(GateInput{Host: "NicaExpressway-iiw8.onrender.com:443", Method: http.MethodGet})
	assert.Equal(t, Allow, v.Kind)
	assert.Equal(t, "*", v.Headers.Get("Access-Control-Allow-Origin"))
}

func TestServerToServerKey(t *testing.T) {
	g := newTestGate(nil)
	cases := []struct {
		name string
		keys KeySource
		want VerdictKind
	}{
		{"header", keys(serverKey, "", "", ""), Allow},
		{"body", keys("", "", serverKey, ""), Allow},
		{"query", keys("", "", "", serverKey), Allow},
		{"first present wins", keys("wrong", "", serverKey, ""), Deny},
		{"missing", keys("", "", "", ""), Deny},
		{"wrong", keys("", "nope", "", ""), Deny},
		{"padded", keys("  "+serverKey+"\t", "", "", ""), Deny},
		{"trailing newline", keys("", "", "", serverKey+"\n"), Deny},
		{"bearer prefix on api key header", keys("Bearer "+serverKey, "", "", ""), Deny},
		{"blank header skipped", keys("   ", "", serverKey, ""), Allow},
		{"different case", keys(strings.ToUpper(serverKey), "", "", ""), Deny},
	}
	for _, tc := range cases {
		v := g.Evaluate(GateInput{Host: apiHost, Method: http.MethodPost, RequireKey: true, Keys: tc.keys})
		assert.Equal(t, tc.want, v.Kind, tc.name)
		if tc.want == Deny {
			assert.Equal(t, http.StatusUnauthorized, v.Status, tc.name)
		}
	}
}

func TestKeyNotRequiredWhenUnconfigured(t *testing.T) {
	g := NewGate(GateConfig{AllowedHosts: []string{apiHost}})
	v := g.Evaluate(GateInput{Host: apiHost, Method: http.MethodPost, RequireKey: true})
	assert.Equal(t, Allow, v.Kind)
}

func TestPanickingKeyLookupIsAMiss(t *testing.T) {
	g := newTestGate(nil)
	v := g.Evaluate(GateInput{
		Host:       apiHost,
		Method:     http.MethodPost,
		RequireKey: true,
		Keys: KeySource{
			func() string { panic("bad body") },
			func() string { return serverKey },
		},
	})
	assert.Equal(t, Allow, v.Kind)
}

func TestOperatorTokenAcceptedAsKey(t *testing.T) {
	tokens := NewOperatorTokens("jwt-secret", time.Hour)
	token, err := tokens.Issue("operador")
	require.NoError(t, err)
	statsToken, err := tokens.Issue("estadisticas")
	require.NoError(t, err)

	g := newTestGate(tokens.Verify)
	v := g.Evaluate(GateInput{Host: apiHost, Method: http.MethodPut, RequireKey: true, Keys: keys("", token)})
	assert.Equal(t, Allow, v.Kind)

	v = g.Evaluate(GateInput{Host: apiHost, Method: http.MethodPut, RequireKey: true, Keys: keys("", statsToken)})
	assert.Equal(t, Deny, v.Kind)
}

func TestNormalizeHost(t *testing.T) {
	assert.Equal(t, "api.example", NormalizeHost("API.Example:8080"))
	assert.Equal(t, "api.example:", NormalizeHost("api.example:"))
	assert.Equal(t, "[::1]", NormalizeHost("[::1]:80"))
}

func newGatedRouter(g *Gate) *gin.Engine {
	router := gin.New()
	router.Use(g.CORS())
	router.POST("/keyed", g.RequireKey(), func(ctx *gin.Context) {
		data, _ := io.ReadAll(ctx.Request.Body)
		ctx.String(http.StatusOK, string(data))
	})
	router.GET("/open", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestGinBodyKeyDoesNotConsumeBody(t *testing.T) {
	router := newGatedRouter(newTestGate(nil))
	payload := `{"api_key":"s3cret","nombre":"Ana"}`

	req := httptest.NewRequest(http.MethodPost, "/keyed", strings.NewReader(payload))
	req.Host = apiHost
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, payload, w.Body.String())
}

func TestGinMalformedBodyFallsBackToQuery(t *testing.T) {
	router := newGatedRouter(newTestGate(nil))

	req := httptest.NewRequest(http.MethodPost, "/keyed?api_key=s3cret", strings.NewReader("{not json"))
	req.Host = apiHost
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/keyed", strings.NewReader("{not json"))
	req.Host = apiHost
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Missing or invalid API key"}`, w.Body.String())
}

func TestGinOversizedBodyIsNotScannedForKey(t *testing.T) {
	router := newGatedRouter(newTestGate(nil))
	payload := `{"api_key":"s3cret","pad":"` + strings.Repeat("x", maxKeyBodyBytes) + `"}`

	req := httptest.NewRequest(http.MethodPost, "/keyed", strings.NewReader(payload))
	req.Host = apiHost
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/keyed?api_key=s3cret", strings.NewReader(payload))
	req.Host = apiHost
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, len(payload), w.Body.Len(), "the handler still sees the whole body")
}

func TestGinPreflightOnUnregisteredMethod(t *testing.T) {
	router := newGatedRouter(newTestGate(nil))

	req := httptest.NewRequest(http.MethodOptions, "/keyed", nil)
	req.Header.Set("Origin", frontend)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, frontend, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGinCORSHeadersOnAllowedResponse(t *testing.T) {
	router := newGatedRouter(newTestGate(nil))

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Origin", frontend)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, frontend, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
