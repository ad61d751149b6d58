package schema

import "strings"

// ValidateSessionID ensures a session id is non-empty and free of surrounding
// whitespace.
func ValidateSessionID(id SessionID) error {
	raw := string(id)
	if raw == "" {
		return ErrInvalidSession
	}
	if strings.TrimSpace(raw) != raw {
		return ErrInvalidSession
	}
	return nil
}

// NormalizeFileName trims a user-provided file name and rejects empty names
// and names containing path separators.
func NormalizeFileName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	if strings.ContainsAny(trimmed, "/\\") {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

// SplitPath splits a workspace path into its segments.
func SplitPath(path Path) []string {
	raw := strings.Trim(string(path), "/")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "/")
}

// JoinPath joins a parent path and a name into a full workspace path.
func JoinPath(parent Path, name string) Path {
	if parent == "" {
		return Path(name)
	}
	return Path(string(parent) + "/" + name)
}
