package scaffold

import "io/fs"

// Kind distinguishes directory entries from file entries.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// WritePolicy governs what happens when a file entry's target already exists.
type WritePolicy int

const (
	// CreateIfAbsent writes the file only when it does not exist; an
	// existing file is never read or modified.
	CreateIfAbsent WritePolicy = iota
	// AlwaysOverwrite replaces the target unconditionally.
	AlwaysOverwrite
	// PromptBeforeOverwrite asks the caller-supplied decision function
	// before replacing; the original is backed up on accept.
	PromptBeforeOverwrite
)

func (p WritePolicy) String() string {
	switch p {
	case CreateIfAbsent:
		return "create-if-absent"
	case AlwaysOverwrite:
		return "always-overwrite"
	case PromptBeforeOverwrite:
		return "prompt-before-overwrite"
	default:
		return "unknown"
	}
}

// Entry is one desired filesystem artifact, addressed relative to the
// project root with slash separators. Content applies to file entries only
// and may contain {{token}} placeholders resolved against a Context.
// A zero Mode means 0644 for files; directories are created 0755.
type Entry struct {
	Path    string
	Kind    Kind
	Content string
	Policy  WritePolicy
	Mode    fs.FileMode
}

// Dir returns a directory Entry for path.
func Dir(path string) Entry {
	return Entry{Path: path, Kind: KindDirectory}
}

// File returns a file Entry for path with the given content and policy.
func File(path, content string, policy WritePolicy) Entry {
	return Entry{Path: path, Kind: KindFile, Content: content, Policy: policy}
}
