package model

// Role is the closed set of access levels a user can hold.
// The single-letter values are what the users table stores.
type Role string

const (
	RoleDisabled Role = "d"
	RoleViewer   Role = "r"
	RoleWriter   Role = "w"
	RoleAdmin    Role = "a"
)

// rank orders roles as disabled < viewer < writer < admin.
var rank = map[Role]int{
	RoleDisabled: 0,
	RoleViewer:   1,
	RoleWriter:   2,
	RoleAdmin:    3,
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// Satisfies reports whether a holder of r may perform an operation whose
// floor is required. A disabled account satisfies nothing, not even a
// disabled floor.
func (r Role) Satisfies(required Role) bool {
	if r == RoleDisabled {
		return false
	}
	hr, ok := rank[r]
	if !ok {
		return false
	}
	return hr >= rank[required]
}
