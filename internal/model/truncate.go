package model

// TruncateID shortens a user identifier for logs and debug output.
// Full identifiers must never leave the process; only the first 8
// characters plus an ellipsis are ever printed.
func TruncateID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}
