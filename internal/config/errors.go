package config

import "fmt"

// PermissionError represents a permission-related config error
type PermissionError struct {
	Path string
	Op   string // "read" or "write"
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied (cannot %s config): %s", e.Op, e.Path)
}

// InvalidConfigError represents malformed config
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config: %s\n", e.Path)
	if e.Message != "" {
		msg += e.Message + "\n"
	}
	if e.Hint != "" {
		msg += "💡 " + e.Hint
	}
	return msg
}
