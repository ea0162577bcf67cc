package domain

// User is a single directory entry.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserFilter narrows a user listing to names containing NameContains.
// The zero value matches every user.
type UserFilter struct {
	NameContains string
}

// IsEmpty reports whether the filter matches every user.
func (f UserFilter) IsEmpty() bool {
	return f.NameContains == ""
}
