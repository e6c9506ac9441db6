package cli

import (
	"fmt"
	"os"

	"github.com/pablasso/watodo/internal/session"
)

// PrerequisiteError represents a failed prerequisite check with helpful remediation info.
type PrerequisiteError struct {
	Check   string
	Message string
	Help    string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("%s: %s\n\n%s", e.Check, e.Message, e.Help)
}

// ResolveSettings merges the config file, the environment and the
// command-line flags. Flags win.
func ResolveSettings() (session.Settings, error) {
	return session.Resolve(dataDirFlag, storageFlag)
}

// IsInitialized reports whether dataDir exists.
func IsInitialized(dataDir string) bool {
	info, err := os.Stat(dataDir)
	return err == nil && info.IsDir()
}

// RequireInitialized returns a PrerequisiteError when dataDir is missing.
func RequireInitialized(dataDir string) error {
	if !IsInitialized(dataDir) {
		return &PrerequisiteError{
			Check:   "Data directory",
			Message: fmt.Sprintf("%s does not exist", dataDir),
			Help:    "Run 'watodo init' first.",
		}
	}
	return nil
}

// openSession resolves the settings and opens an initialized data directory.
func openSession() (*session.Session, error) {
	settings, err := ResolveSettings()
	if err != nil {
		return nil, err
	}
	if err := RequireInitialized(settings.DataDir); err != nil {
		return nil, err
	}
	return session.Open(settings)
}
