package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips combining accents ("Aéreo" -> "aereo")
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// LikeEscape is the escape character used with EscapeLike
const LikeEscape = "!"

// EscapeLike escapes LIKE wildcards so s matches literally
func EscapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

// ContainsPattern builds a "%s%" pattern for a literal substring match. Case
// is left alone so the database can fold both sides with the same LOWER().
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

var shippingIDAliases = Aliases{"tipo_envio_id", "tipoEnvioId", "tipo_envio"}

var shippingTextAliases = Aliases{"tipo", "tipoEnvio", "tipo_envio", "tipoEnvioSolicitar", "tipoSolicitar"}

// ParseShippingType resolves the shipping mode of a request body: an explicit
// numeric id wins, otherwise free text mentioning air or sea is mapped to 1 or 2.
func ParseShippingType(body Body) *int {
	for _, name := range shippingIDAliases {
		v, ok := body[name]
		if !ok || v == nil {
			continue
		}
		if n, ok := ToNumber(v); ok && (n == 1 || n == 2) {
			id := int(n)
			return &id
		}
		// a present id that is not 1 or 2 leaves the decision to the text aliases
		break
	}

	for _, name := range shippingTextAliases {
		v, ok := body[name]
		if !ok || v == nil {
			continue
		}
		text := Fold(ToString(v))
		if text == "" {
			continue
		}
		if strings.Contains(text, "aer") || strings.Contains(text, "aire") {
			id := 1
			return &id
		}
		if strings.Contains(text, "mar") {
			id := 2
			return &id
		}
	}
	return nil
}
