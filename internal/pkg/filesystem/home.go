package filesystem

import "os"

// UserHome returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
