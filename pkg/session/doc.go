// Package session verifies Bearer session tokens (HS256 JWTs) and exposes
// their claims through the request context. It deliberately does not issue
// tokens; credential issuance belongs to the surrounding auth system.
//
// Unauthenticated requests are not rejected here. Downstream components, such
// as the tenant resolver reading the "tid" claim, decide what absence means.
package session
