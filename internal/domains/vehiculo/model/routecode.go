package model

import (
	"encoding/base64"
	"regexp"
	"strings"

	"rentacar/shared/failure"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// slugify flattens a display name into a URL-safe slug. Accented characters
// common in Spanish names are transliterated before stripping.
func slugify(value string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
		"ü", "u", "ñ", "n",
	)

	slug := replacer.Replace(strings.ToLower(value))
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// ToRouteCode builds the public catalog identifier for a vehicle:
// a human-readable slug joined to the base64url-encoded backend id,
// e.g. "toyota-corolla--dmgtMQ".
func ToRouteCode(id, marca, modelo string) string {
	slug := slugify(marca + " " + modelo)
	if slug == "" {
		slug = EntityName
	}

	token := base64.RawURLEncoding.EncodeToString([]byte(id))

	return slug + "--" + token
}

// FromRouteCode recovers the backend id from a catalog route code. A bare
// token without a slug prefix is accepted too.
func FromRouteCode(code string) (string, error) {
	token := code
	if idx := strings.LastIndex(code, "--"); idx >= 0 {
		token = code[idx+2:]
	}

	if token == "" {
		return "", failure.BadRequestFromString("invalid vehicle code") //nolint:wrapcheck
	}

	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", failure.BadRequestFromString("invalid vehicle code") //nolint:wrapcheck
	}

	return string(decoded), nil
}
