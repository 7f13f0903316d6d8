package errors

import "net/http"

// Kind classifies a failure independently of its concrete type.
type Kind string

const (
	KindNoAuthorizationHeader      Kind = "NO_AUTHORIZATION_HEADER"
	KindInvalidAuthorizationHeader Kind = "INVALID_AUTHORIZATION_HEADER"
	KindInvalidToken               Kind = "INVALID_TOKEN"
	KindTokenExpired               Kind = "TOKEN_EXPIRED"
	KindClaimsShapeMismatch        Kind = "CLAIMS_SHAPE_MISMATCH"
	KindHashingFailure             Kind = "HASHING_FAILURE"
	KindSigningFailure             Kind = "SIGNING_FAILURE"
	KindUnauthorized               Kind = "UNAUTHORIZED"
	KindBadRequest                 Kind = "BAD_REQUEST"
	KindNotFound                   Kind = "NOT_FOUND"
	KindInternal                   Kind = "INTERNAL_ERROR"
)

// AllKinds lists every kind of the taxonomy.
func AllKinds() []Kind {
	return []Kind{
		KindNoAuthorizationHeader,
		KindInvalidAuthorizationHeader,
		KindInvalidToken,
		KindTokenExpired,
		KindClaimsShapeMismatch,
		KindHashingFailure,
		KindSigningFailure,
		KindUnauthorized,
		KindBadRequest,
		KindNotFound,
		KindInternal,
	}
}

// StatusCode maps a kind to the HTTP status surfaced to callers.
// Every kind is listed; a value outside the taxonomy is treated as internal.
func StatusCode(kind Kind) int {
	switch kind {
	case KindNoAuthorizationHeader,
		KindInvalidAuthorizationHeader,
		KindInvalidToken,
		KindTokenExpired,
		KindClaimsShapeMismatch,
		KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindHashingFailure,
		KindSigningFailure,
		KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
