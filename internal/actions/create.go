package actions

import (
	"bytes"
	"fmt"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
)

// CreateFile writes content to rel. In revoke mode it removes rel instead.
//
// An existing file with identical content is left alone. An existing file
// with different content is a conflict resolved by the runner's policy.
func (r *Runner) CreateFile(rel string, content []byte) error {
	if r.Revoking() {
		return r.revokeCreate(rel)
	}

	existing, err := r.ReadFile(rel)
	if err != nil {
		if !r.Exists(rel) {
			if err := r.writeFile(rel, content); err != nil {
				return err
			}
			r.record(output.StatusCreate, rel)
			return nil
		}
		return fmt.Errorf("reading %s: %w", rel, err)
	}

	if bytes.Equal(existing, content) {
		r.record(output.StatusIdentical, rel)
		return nil
	}

	overwrite, err := r.resolveConflict(rel, existing, content)
	if err != nil {
		return err
	}
	if !overwrite {
		r.record(output.StatusSkip, rel)
		return nil
	}

	if err := r.writeFile(rel, content); err != nil {
		return err
	}
	r.record(output.StatusForce, rel)
	return nil
}

func (r *Runner) revokeCreate(rel string) error {
	if !r.Exists(rel) {
		r.log.Debug("nothing to remove", "path", rel)
		r.record(output.StatusSkip, rel)
		return nil
	}
	if err := r.removeFile(rel); err != nil {
		return err
	}
	r.record(output.StatusRemove, rel)
	return nil
}

// resolveConflict reports whether rel should be overwritten.
func (r *Runner) resolveConflict(rel string, existing, proposed []byte) (bool, error) {
	switch r.opts.Policy {
	case PolicyForce:
		return true, nil
	case PolicySkip:
		return false, nil
	}

	output.Status(output.StatusConflict, rel)
	if r.opts.Prompter == nil {
		return false, oerrors.NewConflictError(rel)
	}

	res, err := r.opts.Prompter.ResolveConflict(rel, existing, proposed)
	if err != nil {
		return false, fmt.Errorf("resolving conflict for %s: %w", rel, err)
	}

	switch res {
	case ResolveOverwrite:
		return true, nil
	case ResolveSkip:
		return false, nil
	default:
		return false, fmt.Errorf("aborted at %s: %w", rel, oerrors.ErrConflict)
	}
}
