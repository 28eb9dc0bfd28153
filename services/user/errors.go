package user

import "errors"

var (
	// ErrNotFound marks a lookup miss on a user record.
	ErrNotFound = errors.New("user not found")
	// ErrForbidden marks a privileged operation attempted without the admin
	// role.
	ErrForbidden = errors.New("admin privilege required")
)
