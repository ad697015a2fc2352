package user

import "context"

type Role string

const (
	RoleAdmin    Role = "admin"    // Sees and decides everything
	RoleEmployee Role = "employee" // Sees own attendance and leave only
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is a dashboard account. Accounts are static; there is no sign-up.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
}

func (u User) Clone() User {
	c := u
	if u.EmployeeID != nil {
		id := *u.EmployeeID
		c.EmployeeID = &id
	}
	return c
}

// Session is the role context of the caller: who is acting and what they may see.
type Session struct {
	UserID      string
	Role        Role
	EmployeeID  string
	DisplayName string
}

// IsAdmin checks if the caller acts as administrator
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Can reports whether the caller's role grants permission.
func (s Session) Can(permission Permission) bool {
	return HasPermission(s.Role, permission)
}

// CanSee reports whether the caller may see a record owned by employeeID.
// Holders of viewAll see every record; everyone else only their own.
func (s Session) CanSee(viewAll Permission, employeeID string) bool {
	if s.Can(viewAll) {
		return true
	}
	return s.EmployeeID != "" && s.EmployeeID == employeeID
}

type sessionKey struct{}

// WithSession stores the caller's session on ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// RequireSession returns the caller's session or ErrSessionRequired.
func RequireSession(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok || !s.Role.IsValid() {
		return Session{}, ErrSessionRequired
	}
	return s, nil
}

// RequireAdmin returns the caller's session when it acts as administrator.
func RequireAdmin(ctx context.Context) (Session, error) {
	s, err := RequireSession(ctx)
	if err != nil {
		return Session{}, err
	}
	if !s.IsAdmin() {
		return Session{}, ErrAdminPrivilegeRequired
	}
	return s, nil
}

// RequireEmployee returns the caller's session when it is linked to an employee record.
func RequireEmployee(ctx context.Context) (Session, error) {
	s, err := RequireSession(ctx)
	if err != nil {
		return Session{}, err
	}
	if s.EmployeeID == "" {
		return Session{}, ErrEmployeeContextRequired
	}
	return s, nil
}
