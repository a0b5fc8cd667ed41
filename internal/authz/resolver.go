package authz

import "minops/internal/model"

// PermissionSet is a user's effective permission names.
type PermissionSet map[string]struct{}

// Has reports membership.
func (s PermissionSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set as a slice, for API responses.
func (s PermissionSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	return names
}

// Resolve derives a user's effective permission set from their role.
//
// A nil user, a user without a role, and a user whose role reference
// dangles (the relation preload found nothing) all resolve to the empty
// set; none of these is an error. No side effects, no storage access:
// callers load the user with Role.Permissions preloaded.
func Resolve(user *model.User) PermissionSet {
	set := make(PermissionSet)
	if user == nil || user.Role == nil {
		return set
	}
	for _, p := range user.Role.Permissions {
		set[p.Name] = struct{}{}
	}
	return set
}
