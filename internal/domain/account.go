package domain

// Role names are reference data seeded out of band.
const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleStudent = "Student"
)

// Role is a fixed authorization tier.
type Role struct {
	ID   int64
	Name string
}

// Account is a login identity. PasswordHash holds a bcrypt digest; the
// plaintext never leaves the auth layer.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	RoleID       int64
	RoleName     string
}
