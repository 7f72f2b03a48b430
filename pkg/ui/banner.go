package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/passaudit/passaudit/pkg/defaults"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses most output)
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		// ASCII profile disables colors
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

// Minimalist banner (ffuf-style box)
const miniBanner = `
________________________________________________

 passaudit v%s
________________________________________________`

const bannerSeparator = "________________________________________________"

// PrintMiniBanner prints the minimal banner box with version info.
func PrintMiniBanner() {
	fmt.Fprintf(os.Stderr, "%s\n", BannerStyle.Render(fmt.Sprintf(miniBanner, defaults.Version)))
	fmt.Fprintln(os.Stderr)
}

// printOption prints a configuration option in ffuf/nuclei style
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner shows the current settings before a run starts.
// Uses ordered keys for consistent display.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}

	order := []string{
		"Username", "Input", "Denylist", "Data File", "Users File",
		"Output", "Format",
	}

	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", DividerStyle.Render(bannerSeparator))
}

// PrintDivider prints a stylized divider (to stderr)
func PrintDivider() {
	divider := strings.Repeat("-", 48)
	fmt.Fprintln(os.Stderr, DividerStyle.Render(divider))
}

// PrintSection prints a section header (to stderr)
func PrintSection(title string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, SectionStyle.Render("> "+title))
	PrintDivider()
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	if IsSilent() {
		return
	}
	style := lipgloss.NewStyle().Foreground(Success)
	fmt.Fprintf(os.Stderr, "%s %s\n", style.Render("[+]"), message)
}

// PrintError prints an error message (never silenced)
func PrintError(message string) {
	style := lipgloss.NewStyle().Foreground(Error).Bold(true)
	fmt.Fprintf(os.Stderr, "%s %s\n", style.Render("[!]"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	if IsSilent() {
		return
	}
	style := lipgloss.NewStyle().Foreground(Warning)
	fmt.Fprintf(os.Stderr, "%s %s\n", style.Render("[~]"), message)
}

// PrintInfo prints an informational message
func PrintInfo(message string) {
	if IsSilent() {
		return
	}
	style := lipgloss.NewStyle().Foreground(Secondary)
	fmt.Fprintf(os.Stderr, "%s %s\n", style.Render("[i]"), message)
}

// PrintConfigLine prints a single config line
func PrintConfigLine(key, value string) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		ConfigLabelStyle.Render(key+":"),
		ConfigValueStyle.Render(value),
	)
}
