// Package defaults provides canonical default values for the entire codebase.
// This is the SINGLE SOURCE OF TRUTH for all runtime configuration defaults.
//
// Usage:
//
//	if result.Score >= defaults.StrongThreshold { ... }
//	path := defaults.InventoryFile
//
// DO NOT use hardcoded values like `threshold := 5` anywhere.
// Instead, reference the appropriate constant from this package.
package defaults

// Version is the current passaudit version
const Version = "1.2.0"

// ============================================================================
// POLICY SCORING
// ============================================================================
//
// The audit runs a fixed battery of checks, each worth one point off a
// perfect score. Level thresholds bucket the final score.
// ============================================================================

const (
	// MaxScore is the starting (and best possible) policy score.
	// One point is deducted per failed check.
	MaxScore = 7

	// MinPasswordLength is the exclusive lower bound for the length check.
	// A password of exactly this length still fails.
	MinPasswordLength = 8

	// StrongThreshold is the minimum score classified as Strong
	StrongThreshold = 5

	// MediumThreshold is the minimum score classified as Medium
	MediumThreshold = 3
)

// ============================================================================
// STORE SETTINGS
// ============================================================================

const (
	// InventoryFile is the default inventory persistence path
	InventoryFile = "store_data.json"

	// HistoryFile is the default purchase-history persistence path
	HistoryFile = "users.json"

	// DefaultCategory is assigned to products created without a category
	DefaultCategory = "General"

	// ManagerUser is the default manager portal login
	ManagerUser = "admin"

	// ManagerPass is the default manager portal password.
	// Override with the -admin-pass flag in any real deployment.
	ManagerPass = "1234"

	// GuestUser is used when a customer declines to give a name
	GuestUser = "guest"
)

// ============================================================================
// FILE PERMISSIONS
// ============================================================================

const (
	// FilePerm is the mode for data and report files (0644)
	FilePerm = 0644

	// DirPerm is the mode for created directories (0755)
	DirPerm = 0755
)

// ============================================================================
// OUTPUT SETTINGS
// ============================================================================

const (
	// JSONIndent is the indentation used for pretty JSON output
	JSONIndent = "  "

	// CurrencySymbol prefixes all displayed prices
	CurrencySymbol = "$"
)
