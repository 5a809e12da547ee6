// Package vars loads extra placeholder values for scaffold templates.
//
// Values come from repeated --var key=value flags and from .env-style var
// files. Keys are lowercased so that VAR files written in the conventional
// upper-case form still line up with the lower-case placeholder syntax.
package vars

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

// keyPattern matches the placeholder names the scaffold engine substitutes.
var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Vars maps placeholder names to their substituted values.
type Vars map[string]string

// Merge combines several Vars maps into one, later maps overriding earlier
// keys.
func Merge(sets ...Vars) Vars {
	out := make(Vars)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// ParseAssignments parses repeated key=value assignments into Vars.
func ParseAssignments(assignments []string) (Vars, error) {
	out := make(Vars, len(assignments))
	for _, a := range assignments {
		kv := strings.SplitN(a, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", a)
		}
		key, err := normalizeKey(kv[0])
		if err != nil {
			return nil, err
		}
		out[key] = strings.TrimSpace(kv[1])
	}
	return out, nil
}

// LoadFile loads a .env-style file of key=value lines into Vars.
func LoadFile(path string) (Vars, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open var file: %w", err)
	}
	defer func() { _ = f.Close() }()

	parsed, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse var file %q: %w", path, err)
	}
	out := make(Vars, len(parsed))
	for k, v := range parsed {
		key, err := normalizeKey(k)
		if err != nil {
			return nil, fmt.Errorf("var file %q: %w", path, err)
		}
		out[key] = v
	}
	return out, nil
}

func normalizeKey(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("invalid variable name %q: use letters, digits and underscores, starting with a letter", raw)
	}
	return key, nil
}
