package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type VerdictKind int

const (
	// Allow lets the request through to its handler
	Allow VerdictKind = iota
	// Preflight answers a CORS preflight with an empty 204
	Preflight
	// Deny rejects the request with Status and Body
	Deny
)

func (k VerdictKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Preflight:
		return "preflight"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of evaluating one request
type Verdict struct {
	Kind    VerdictKind
	Status  int
	Headers http.Header
	Body    gin.H
}

// KeySource lists lazy lookups of a candidate API key, most preferred first
type KeySource []func() string

// OperatorVerifier reports whether a candidate key is a valid operator credential
type OperatorVerifier func(candidate string) bool

// GateInput is what the gate needs to know about a request
type GateInput struct {
	Origin     string
	Host       string
	Method     string
	RequireKey bool
	Keys       KeySource
}

type GateConfig struct {
	AllowedOrigins []string
	AllowedHosts   []string
	ServerKey      string
	Operator       OperatorVerifier
}

// Gate decides whether a request may proceed, based on its browser origin,
// its host, or an API key. Its allow-lists are fixed at construction.
type Gate struct {
	origins   map[string]struct{}
	hosts     map[string]struct{}
	serverKey string
	operator  OperatorVerifier
}

func NewGate(cfg GateConfig) *Gate {
	g := &Gate{
		origins:   make(map[string]struct{}, len(cfg.AllowedOrigins)),
		hosts:     make(map[string]struct{}, len(cfg.AllowedHosts)),
		serverKey: cfg.ServerKey,
		operator:  cfg.Operator,
	}
	for _, o := range cfg.AllowedOrigins {
		g.origins[o] = struct{}{}
	}
	for _, h := range cfg.AllowedHosts {
		g.hosts[NormalizeHost(h)] = struct{}{}
	}
	return g
}

// Evaluate runs the checks in fixed order: a present Origin header decides on
// its own; without one the host must be allowed, and keyed endpoints also need
// a matching API key.
func (g *Gate) Evaluate(in GateInput) Verdict {
	if in.Origin != "" {
		if _, ok := g.origins[in.Origin]; !ok {
			return deny(http.StatusForbidden, in.Origin, "CORS denied")
		}
		if in.Method == http.MethodOptions {
			return Verdict{Kind: Preflight, Status: http.StatusNoContent, Headers: CORSHeaders(in.Origin)}
		}
		return Verdict{Kind: Allow, Headers: CORSHeaders(in.Origin)}
	}

	if _, ok := g.hosts[NormalizeHost(in.Host)]; !ok {
		return deny(http.StatusForbidden, "", "Host no permitido")
	}

	if !in.RequireKey || g.serverKey == "" {
		return Verdict{Kind: Allow, Headers: CORSHeaders("")}
	}

	key := in.Keys.first()
	if key != "" && (key == g.serverKey || g.isOperator(key)) {
		return Verdict{Kind: Allow, Headers: CORSHeaders("")}
	}
	return deny(http.StatusUnauthorized, "", "Missing or invalid API key")
}

func (g *Gate) isOperator(key string) (ok bool) {
	if g.operator == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return g.operator(key)
}

func deny(status int, origin, msg string) Verdict {
	return Verdict{
		Kind:    Deny,
		Status:  status,
		Headers: CORSHeaders(origin),
		Body:    gin.H{"error": msg},
	}
}

// first returns the first candidate that is not blank, unmodified, so it is
// compared byte for byte. A lookup that panics counts as a miss.
func (ks KeySource) first() string {
	for _, lookup := range ks {
		if v := safeLookup(lookup); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func safeLookup(lookup func() string) (v string) {
	defer func() {
		if recover() != nil {
			v = ""
		}
	}()
	return lookup()
}

// NormalizeHost lower-cases a Host header and strips a trailing :port
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	idx := strings.LastIndexByte(host, ':')
	if idx < 0 || idx == len(host)-1 {
		return host
	}
	for _, r := range host[idx+1:] {
		if r < '0' || r > '9' {
			return host
		}
	}
	return host[:idx]
}

// CORS applies the origin and host checks to every request, answering
// preflights and attaching CORS headers to allowed responses.
func (g *Gate) CORS() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		g.apply(ctx, false)
	}
}

// RequireKey additionally demands the server API key (or an operator token)
// from requests that carry no Origin header.
func (g *Gate) RequireKey() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		g.apply(ctx, true)
	}
}

func (g *Gate) apply(ctx *gin.Context, requireKey bool) {
	verdict := g.Evaluate(GateInput{
		Origin:     ctx.GetHeader("Origin"),
		Host:       ctx.Request.Host,
		Method:     ctx.Request.Method,
		RequireKey: requireKey,
		Keys:       requestKeys(ctx),
	})

	applyHeaders(ctx.Writer.Header(), verdict.Headers)

	switch verdict.Kind {
	case Preflight:
		ctx.AbortWithStatus(verdict.Status)
	case Deny:
		ctx.AbortWithStatusJSON(verdict.Status, verdict.Body)
	default:
		ctx.Next()
	}
}

func requestKeys(ctx *gin.Context) KeySource {
	return KeySource{
		func() string { return ctx.GetHeader("X-API-KEY") },
		func() string { return strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ") },
		func() string { return bodyKey(ctx) },
		func() string { return ctx.Query("api_key") },
	}
}

// maxKeyBodyBytes caps how much of a body the gate reads looking for a key
const maxKeyBodyBytes = 256 << 10

// bodyKey looks for api_key or key in a JSON body. The body is restored so
// the handler can still bind it. Bodies over maxKeyBodyBytes are not parsed.
func bodyKey(ctx *gin.Context) string {
	if ctx.Request.Body == nil {
		return ""
	}
	rest := ctx.Request.Body
	data, err := io.ReadAll(io.LimitReader(rest, maxKeyBodyBytes+1))
	ctx.Request.Body = readCloser{io.MultiReader(bytes.NewReader(data), rest), rest}
	if err != nil || len(data) == 0 || len(data) > maxKeyBodyBytes {
		return ""
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	for _, name := range []string{"api_key", "key"} {
		if s, ok := body[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

type readCloser struct {
	io.Reader
	io.Closer
}
