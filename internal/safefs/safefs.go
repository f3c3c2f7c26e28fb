// Package safefs confines every file read to a single directory tree.
// A Root is constructed once from a canonical directory; any path handed to
// it, relative or absolute, either resolves to a descendant of that
// directory or fails with a TraversalError. Symlinks are followed before
// the containment check, so a link inside the tree pointing outside it is
// rejected rather than read.
package safefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soyeahso/roster/internal/logging"
)

// TraversalError reports a path that escapes the root. It is a security
// failure and is never downgraded to an ordinary read error.
type TraversalError struct {
	Path string
	Root string
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("path traversal attempt: %s is outside root %s", e.Path, e.Root)
}

// ReadError reports an ordinary I/O failure (missing file, permission,
// unreadable parent). Callers treat it differently from TraversalError:
// optional companion files may tolerate it, traversal is always fatal.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Root is a secure file resolver fixed to one canonical directory.
// It holds no mutable state and is safe for concurrent use.
type Root struct {
	dir string
	log *logging.Logger
}

// NewRoot canonicalizes dir and returns a resolver bound to it.
// The directory must exist.
func NewRoot(dir string, log *logging.Logger) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", dir, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", dir, err)
	}
	if log == nil {
		log = logging.New(nil, "silent")
	}
	return &Root{dir: canonical, log: log.Sub("safefs")}, nil
}

// Dir returns the canonical root directory.
func (r *Root) Dir() string { return r.dir }

// Resolve maps a relative or absolute path to a canonical absolute path
// and verifies it lies inside the root. Relative paths are interpreted
// against the root. The containment check runs twice: once lexically after
// collapsing "." and "..", and again after symlink resolution.
func (r *Root) Resolve(path string) (string, error) {
	candidate := path
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(r.dir, candidate)
	}
	candidate = filepath.Clean(candidate)

	if !r.contains(candidate) {
		r.log.Warn().Str("path", path).Str("resolved", candidate).Msg("path escapes root")
		return "", &TraversalError{Path: candidate, Root: r.dir}
	}

	canonical, err := canonicalize(candidate)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !r.contains(canonical) {
		r.log.Warn().Str("path", path).Str("resolved", canonical).Msg("symlink escapes root")
		return "", &TraversalError{Path: canonical, Root: r.dir}
	}
	return canonical, nil
}

// Read resolves, validates, and reads a file. Failures are either a
// *TraversalError or a *ReadError, distinguishable with errors.As.
func (r *Root) Read(path string) (string, error) {
	canonical, err := r.Resolve(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(canonical)
	if err != nil {
		return "", &ReadError{Path: path, Err: readCause(err)}
	}

	r.log.Debug().Str("path", canonical).Int("bytes", len(data)).Msg("read file")
	return string(data), nil
}

// Exists reports whether path resolves to a regular file inside the root.
// Every failure, including traversal, converts to false.
func (r *Root) Exists(path string) bool {
	canonical, err := r.Resolve(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(canonical)
	return err == nil && info.Mode().IsRegular()
}

func (r *Root) contains(path string) bool {
	return path == r.dir || strings.HasPrefix(path, r.dir+string(filepath.Separator))
}

// canonicalize resolves symlinks in path. The file itself may not exist
// yet; in that case the deepest existing ancestor is resolved and the
// remaining components are appended unchanged.
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	dir := filepath.Dir(path)
	if dir == path {
		return "", err
	}
	parent, perr := canonicalize(dir)
	if perr != nil {
		return "", perr
	}
	return filepath.Join(parent, filepath.Base(path)), nil
}

func readCause(err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("file not found: %w", err)
	case os.IsPermission(err):
		return fmt.Errorf("permission denied: %w", err)
	default:
		return err
	}
}
