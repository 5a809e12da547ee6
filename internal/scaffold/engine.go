package scaffold

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// backupStamp is filename-safe ISO-like, e.g. README.md.bak.20260823T101530.
	backupStamp = "20060102T150405"
)

// Decision is the answer to an overwrite prompt.
type Decision int

const (
	Decline Decision = iota
	Accept
)

// DecisionFunc answers whether an existing file may be replaced. It receives
// the entry path plus the current and incoming bytes so callers can show a
// diff before asking. It must not mutate the filesystem.
type DecisionFunc func(path string, existing, incoming []byte) Decision

// ReportFunc receives one status line per applied entry. The engine performs
// no console output of its own.
type ReportFunc func(action Action, path string)

// Options adjusts a single Apply run.
type Options struct {
	// Interactive enables PromptBeforeOverwrite prompting. When false, an
	// existing target under that policy is skipped.
	Interactive bool

	// DryRun walks the full algorithm and reports the action each entry
	// would take without touching the filesystem. Prompts are skipped.
	DryRun bool

	// Decide answers overwrite prompts. Nil behaves as decline-all.
	Decide DecisionFunc

	// Report receives per-entry status. Nil means silent.
	Report ReportFunc

	Logger *slog.Logger

	// Now stamps backup file names. Defaults to time.Now.
	Now func() time.Time
}

// Apply materializes entries under root in caller order. Directory entries
// must precede the file entries that live inside them; the engine does not
// reorder or create parent directories on a file's behalf. The returned
// Result is never nil: on error it holds everything applied before the
// failing entry.
func Apply(root string, entries []Entry, ctx *Context, opts Options) (*Result, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &run{
		root: root,
		ctx:  ctx,
		opts: opts,
		res:  newResult(),
	}
	r.log = opts.Logger.With("run_id", r.res.RunID)
	r.log.Debug("starting scaffold run", "root", root, "entries", len(entries), "dry_run", opts.DryRun)

	return r.res, r.apply(entries)
}

type run struct {
	root string
	ctx  *Context
	opts Options
	res  *Result
	log  *slog.Logger
}

func (r *run) apply(entries []Entry) error {
	if !r.opts.DryRun {
		if err := os.MkdirAll(r.root, dirPerm); err != nil {
			return &WriteError{Path: r.root, Err: err}
		}
	}

	for _, e := range entries {
		if err := r.applyEntry(e); err != nil {
			r.log.Error("scaffold run aborted", "path", e.Path, "error", err)
			return err
		}
	}
	return nil
}

func (r *run) applyEntry(e Entry) error {
	target, err := resolve(r.root, e.Path)
	if err != nil {
		return err
	}
	if e.Kind == KindDirectory {
		return r.applyDir(e, target)
	}
	return r.applyFile(e, target)
}

// record tallies one outcome and forwards it to the injected reporter.
func (r *run) record(act Action, path string) {
	r.res.record(act, path)
	if r.opts.Report != nil {
		r.opts.Report(act, path)
	}
	r.log.Debug("entry applied", "action", act.String(), "path", path)
}

func (r *run) applyDir(e Entry, target string) error {
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		// Already present is a no-op, never an error.
		r.record(ActionSkipped, e.Path)
		return nil
	case err == nil:
		return &WriteError{Path: e.Path, Err: errors.New("exists but is not a directory")}
	case !errors.Is(err, fs.ErrNotExist):
		return &WriteError{Path: e.Path, Err: err}
	}

	if !r.opts.DryRun {
		if err := os.MkdirAll(target, dirPerm); err != nil {
			return &WriteError{Path: e.Path, Err: err}
		}
	}
	r.record(ActionCreated, e.Path)
	return nil
}

func (r *run) applyFile(e Entry, target string) error {
	rendered := r.ctx.Render(e.Content)
	mode := e.Mode
	if mode == 0 {
		mode = filePerm
	}

	info, err := os.Stat(target)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &WriteError{Path: e.Path, Err: err}
	}
	if exists && info.IsDir() {
		return &WriteError{Path: e.Path, Err: errors.New("exists but is a directory")}
	}

	if !exists {
		if err := r.write(e.Path, target, rendered, mode); err != nil {
			return err
		}
		r.record(ActionCreated, e.Path)
		return nil
	}

	switch e.Policy {
	case CreateIfAbsent:
		r.record(ActionSkipped, e.Path)
		return nil
	case AlwaysOverwrite:
		if err := r.write(e.Path, target, rendered, mode); err != nil {
			return err
		}
		r.record(ActionOverwritten, e.Path)
		return nil
	default:
		return r.applyPrompted(e, target, rendered, mode, info.Mode().Perm())
	}
}

func (r *run) applyPrompted(e Entry, target, rendered string, mode, existingMode fs.FileMode) error {
	// Non-interactive runs never destroy data; dry runs never prompt.
	if !r.opts.Interactive || r.opts.DryRun || r.opts.Decide == nil {
		r.record(ActionSkipped, e.Path)
		return nil
	}

	existing, err := os.ReadFile(target)
	if err != nil {
		return &WriteError{Path: e.Path, Err: err}
	}

	if r.opts.Decide(e.Path, existing, []byte(rendered)) != Accept {
		r.record(ActionSkipped, e.Path)
		return nil
	}

	// Back up before overwriting. The engine never deletes backups.
	suffix := ".bak." + r.opts.Now().Format(backupStamp)
	if err := os.WriteFile(target+suffix, existing, existingMode); err != nil {
		return &WriteError{Path: e.Path, Err: err}
	}
	r.record(ActionBackedUp, e.Path+suffix)

	if err := r.write(e.Path, target, rendered, mode); err != nil {
		return err
	}
	r.record(ActionOverwritten, e.Path)
	return nil
}

func (r *run) write(rel, target, content string, mode fs.FileMode) error {
	if r.opts.DryRun {
		return nil
	}
	if err := writeAtomic(target, content, mode); err != nil {
		return &WriteError{Path: rel, Err: err}
	}
	return nil
}

// resolve joins rel onto root, rejecting anything that would land outside
// the project root.
func resolve(root, rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return "", &PathEscapeError{Path: rel}
	}
	if filepath.IsAbs(cleaned) || filepath.VolumeName(cleaned) != "" {
		return "", &PathEscapeError{Path: rel}
	}
	if strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", &PathEscapeError{Path: rel}
	}
	return filepath.Join(root, cleaned), nil
}

// writeAtomic lands content at p via a temp file and rename, so a failed
// write leaves either the old content or the complete new one.
func writeAtomic(p, data string, m fs.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(p), ".setup-project-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = f.Close()
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	if err = f.Chmod(m); err != nil {
		return err
	}
	if _, err = io.WriteString(f, data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp, p); err == nil {
		return nil
	}
	if !os.IsExist(err) {
		return err
	}
	// Windows refuses to rename over an existing file.
	if err = os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(tmp, p)
}
