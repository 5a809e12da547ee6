// Package scaffold applies a declarative list of directory and file entries
// to a project root. It powers the "setup-project create" command: entries
// carry a write policy (create-if-absent, always-overwrite, or
// prompt-before-overwrite), content placeholders are substituted from a
// per-run Context, writes are atomic, and an accepted overwrite backs up the
// original first. Runs are idempotent and safe to repeat.
package scaffold
