package core

import (
	"fmt"
	"os"
)

// HomeDir returns the user's home directory from $HOME. An unset variable
// is an error; there is no fallback.
func HomeDir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("HOME environment variable is not set")
	}
	return home, nil
}
