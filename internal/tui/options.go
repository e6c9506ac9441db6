package tui

// Options configures TUI startup behavior. Empty fields fall back to the
// config file and environment.
type Options struct {
	DataDir string
	Storage string
}
