package defaults

// Exit codes for the CLI.
const (
	ExitSuccess       = 0 // Clean exit
	ExitWeakPassword  = 1 // Audit classified at least one password as Weak
	ExitUserError     = 2 // Invalid arguments or configuration
	ExitIOError       = 3 // Data file could not be read or written
	ExitInternalError = 4 // Unexpected internal error
)
