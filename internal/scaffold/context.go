package scaffold

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tokenPattern matches {{token}} placeholders; token names are lower-case
// snake case to match the template payloads.
var tokenPattern = regexp.MustCompile(`\{\{([a-z][a-z0-9_]*)\}\}`)

// Context holds the run-time values substituted into entry content. It is
// resolved once per run and never mutated afterwards.
type Context struct {
	ProjectName   string
	PythonVersion string
	RepoURL       string
	CreatedAt     time.Time
	Extra         map[string]string
}

// NewContext builds a Context stamped with the current time. Extra supplies
// additional placeholder values; built-in tokens win on collision.
func NewContext(name, pythonVersion, repoURL string, extra map[string]string) *Context {
	return &Context{
		ProjectName:   name,
		PythonVersion: pythonVersion,
		RepoURL:       repoURL,
		CreatedAt:     time.Now(),
		Extra:         extra,
	}
}

// tokens returns the full placeholder table for this context. name_snake is
// the project name with dashes flattened to underscores, usable as a Python
// package name.
func (c *Context) tokens() map[string]string {
	t := make(map[string]string, len(c.Extra)+6)
	for k, v := range c.Extra {
		t[k] = v
	}
	t["name"] = c.ProjectName
	t["name_snake"] = strings.ReplaceAll(c.ProjectName, "-", "_")
	t["python_version"] = c.PythonVersion
	t["repo_url"] = c.RepoURL
	t["created_at"] = c.CreatedAt.Format("2006-01-02")
	t["year"] = strconv.Itoa(c.CreatedAt.Year())
	return t
}

// Render substitutes every recognized {{token}} placeholder in s. An
// unrecognized placeholder is left verbatim; rendering never fails.
func (c *Context) Render(s string) string {
	tokens := c.tokens()
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := tokens[key]; ok {
			return value
		}
		return match
	})
}
