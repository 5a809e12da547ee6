// Package tier defines scaffold tiers as data: each tier is a named, ordered
// list of scaffold entries built from the shared templates package, with the
// three built-ins (minimal, core, full) forming supersets of one another.
// User-authored presets loaded from YAML and validated against a JSON Schema
// plug in as additional tiers.
package tier
