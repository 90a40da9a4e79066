// Package authz holds the ownership predicate shared by every mutating route.
package authz

// IsOwner reports whether actor may mutate a resource created by owner.
// A zero id never matches, so an unauthenticated actor or an unset owner
// is always rejected.
func IsOwner(actor, owner uint) bool {
	return actor != 0 && actor == owner
}
