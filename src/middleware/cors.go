package middleware

import "net/http"

var (
	corsAllowMethods = "GET,POST,PUT,PATCH,DELETE,OPTIONS"
	corsAllowHeaders = "Content-Type,Authorization,X-API-KEY"
)

// CORSHeaders returns the headers every response carries for origin.
// An empty origin (server-to-server call) answers with "*".
func CORSHeaders(origin string) http.Header {
	if origin == "" {
		origin = "*"
	}
	h := http.Header{}
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Vary", "Origin")
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	h.Set("Access-Control-Allow-Credentials", "true")
	return h
}

func applyHeaders(dst, src http.Header) {
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
}
