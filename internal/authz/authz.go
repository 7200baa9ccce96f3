// Package authz holds the ownership rule applied before every mutation.
package authz

// Owned is implemented by resources that belong to exactly one user.
type Owned interface {
	OwnerID() string
}

// IsOwner reports whether identity owns resource. An empty identity or a
// resource without an owner is never matched.
func IsOwner(resource Owned, identity string) bool {
	if resource == nil || identity == "" {
		return false
	}
	owner := resource.OwnerID()
	return owner != "" && owner == identity
}
