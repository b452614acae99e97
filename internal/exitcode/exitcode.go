// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown file, bad task number).
	UserError = 1

	// AuthError indicates a cloud auth/config error.
	AuthError = 2

	// BackendError indicates a filesystem, cloud or network error.
	BackendError = 3
)
