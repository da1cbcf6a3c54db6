// Package actions performs file actions against a project tree: creating
// files, injecting lines and substituting placeholders. Every action knows
// how to undo itself, so a Runner in revoke mode removes what a generate run
// added.
package actions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/work"
)

// ConflictPolicy decides what happens when a created file already exists
// with different content.
type ConflictPolicy string

const (
	// PolicyAsk prompts on a terminal and fails otherwise.
	PolicyAsk ConflictPolicy = "ask"

	// PolicyForce overwrites the existing file.
	PolicyForce ConflictPolicy = "force"

	// PolicySkip keeps the existing file.
	PolicySkip ConflictPolicy = "skip"
)

// ValidPolicies lists the accepted conflict policies.
func ValidPolicies() []string {
	return []string{string(PolicyAsk), string(PolicyForce), string(PolicySkip)}
}

// Options configure a Runner.
type Options struct {
	// Root is the project directory all paths are relative to.
	Root string

	// Mode selects generate or revoke behavior.
	Mode work.Mode

	// Pretend reports statuses without writing.
	Pretend bool

	// Policy resolves create conflicts.
	Policy ConflictPolicy

	// Prompter asks the user under PolicyAsk. nil means non-interactive.
	Prompter Prompter

	// Logger receives warnings and debug output. Defaults to output.Logger().
	Logger *log.Logger
}

// Runner executes file actions and records one result row per action.
type Runner struct {
	fs      afero.Fs
	opts    Options
	log     *log.Logger
	step    string
	results []output.ResultRow
}

// New creates a Runner on fs.
func New(fs afero.Fs, opts Options) *Runner {
	if opts.Policy == "" {
		opts.Policy = PolicyAsk
	}
	logger := opts.Logger
	if logger == nil {
		logger = output.Logger()
	}
	return &Runner{fs: fs, opts: opts, log: logger}
}

// Revoking reports whether the runner undoes actions.
func (r *Runner) Revoking() bool {
	return r.opts.Mode == work.Revoke
}

// SetStep labels the result rows recorded from now on.
func (r *Runner) SetStep(step string) {
	r.step = step
}

// Results returns the recorded result rows in execution order.
func (r *Runner) Results() []output.ResultRow {
	return append([]output.ResultRow(nil), r.results...)
}

// Say prints a status line without recording a result row.
func (r *Runner) Say(status, msg string) {
	output.Status(status, msg)
}

// Exists reports whether rel exists under the root.
func (r *Runner) Exists(rel string) bool {
	ok, err := afero.Exists(r.fs, r.abs(rel))
	return err == nil && ok
}

// ReadFile reads rel from under the root.
func (r *Runner) ReadFile(rel string) ([]byte, error) {
	return afero.ReadFile(r.fs, r.abs(rel))
}

func (r *Runner) record(status, rel string) {
	r.results = append(r.results, output.ResultRow{Step: r.step, Status: status, Path: rel})
	output.Status(status, rel)
}

func (r *Runner) abs(rel string) string {
	return filepath.Join(r.opts.Root, filepath.FromSlash(rel))
}

// writeFile writes data atomically: a temp file in the destination
// directory is renamed over the target.
func (r *Runner) writeFile(rel string, data []byte) error {
	if r.opts.Pretend {
		return nil
	}

	path := r.abs(rel)
	dir := filepath.Dir(path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(r.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", rel, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", rel, err)
	}

	perm := os.FileMode(0o644)
	if info, err := r.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	_ = r.fs.Chmod(tmpName, perm)

	if err := r.fs.Rename(tmpName, path); err != nil {
		_ = r.fs.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", rel, err)
	}
	return nil
}

func (r *Runner) removeFile(rel string) error {
	if r.opts.Pretend {
		return nil
	}
	if err := r.fs.Remove(r.abs(rel)); err != nil {
		return fmt.Errorf("removing %s: %w", rel, err)
	}
	return nil
}
