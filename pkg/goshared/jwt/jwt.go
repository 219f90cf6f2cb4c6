// Package jwt recognises JSON Web Tokens by shape.
//
// IsJWT checks that a token is a compact JWS whose header and claims are
// JSON objects and whose signature has a plausible length for the declared
// algorithm. It never verifies a signature.
package jwt

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	jose "github.com/go-jose/go-jose/v4"
)

// algorithms lists every signing algorithm a token may declare. Unsigned
// "none" tokens are not JWTs for this package.
var algorithms = []jose.SignatureAlgorithm{
	jose.HS256, jose.HS384, jose.HS512,
	jose.RS256, jose.RS384, jose.RS512,
	jose.PS256, jose.PS384, jose.PS512,
	jose.ES256, jose.ES384, jose.ES512,
	jose.EdDSA,
}

// signatureSizes holds the exact signature length of fixed-size algorithms.
var signatureSizes = map[jose.SignatureAlgorithm]int{
	jose.HS256: 32,
	jose.HS384: 48,
	jose.HS512: 64,
	jose.ES256: 64,
	jose.ES384: 96,
	jose.ES512: 132,
	jose.EdDSA: 64,
}

// minRSASignature is the signature length of a 1024-bit RSA key.
const minRSASignature = 128

// IsJWT reports whether s looks like a signed JWT.
func IsJWT(s string) bool {
	if !utf8.ValidString(s) || strings.Count(s, ".") != 2 {
		return false
	}

	jws, err := jose.ParseSignedCompact(s, algorithms)
	if err != nil || len(jws.Signatures) != 1 {
		return false
	}

	sig := jws.Signatures[0]
	if !plausibleSignature(jose.SignatureAlgorithm(sig.Header.Algorithm), sig.Signature) {
		return false
	}

	var claims map[string]any
	return json.Unmarshal(jws.UnsafePayloadWithoutVerification(), &claims) == nil && claims != nil
}

// IsJWTBytes is IsJWT for raw bytes. Invalid UTF-8 is never a JWT.
func IsJWTBytes(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	return IsJWT(string(b))
}

func plausibleSignature(alg jose.SignatureAlgorithm, sig []byte) bool {
	if size, ok := signatureSizes[alg]; ok {
		return len(sig) == size
	}
	return len(sig) >= minRSASignature
}
