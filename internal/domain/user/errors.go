package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidRole             = errors.New("invalid role")
	ErrSessionRequired         = errors.New("session required")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrEmployeeContextRequired = errors.New("employee context required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
