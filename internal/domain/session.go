package domain

// Session is the result of a successful login, carried on every service call
// for authorization decisions.
type Session struct {
	AccountID int64
	Username  string
	Role      string
}

// IsAdmin reports whether the session holds the elevated role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
