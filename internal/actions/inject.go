package actions

import (
	"fmt"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/patch"
)

// InjectIntoFile applies p to rel. In revoke mode it removes the exact
// lines p would have inserted.
//
// A missing anchor returns an error wrapping patch.ErrAnchorNotFound and
// leaves the file untouched.
func (r *Runner) InjectIntoFile(rel string, p patch.Patch) error {
	pretendStatus := output.StatusInsert
	if r.Revoking() {
		pretendStatus = output.StatusSubtract
	}
	doc, ok, err := r.loadDocument(rel, pretendStatus)
	if err != nil || !ok {
		return err
	}

	if r.Revoking() {
		if !p.Revert(doc) {
			r.record(output.StatusSkip, rel)
			return nil
		}
		if err := r.writeFile(rel, doc.Bytes()); err != nil {
			return err
		}
		r.record(output.StatusSubtract, rel)
		return nil
	}

	changed, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("injecting into %s: %w", rel, err)
	}
	if !changed {
		r.record(output.StatusIdentical, rel)
		return nil
	}
	if err := r.writeFile(rel, doc.Bytes()); err != nil {
		return err
	}
	r.record(output.StatusInsert, rel)
	return nil
}

// GsubFile replaces every line equal to old with repl. In revoke mode it
// turns the first repl block back into old.
//
// When neither old nor repl is present an error wrapping
// patch.ErrAnchorNotFound is returned.
func (r *Runner) GsubFile(rel, old string, repl []string) error {
	doc, ok, err := r.loadDocument(rel, output.StatusGsub)
	if err != nil || !ok {
		return err
	}

	if r.Revoking() {
		i := doc.FindBlock(repl)
		if i < 0 {
			r.record(output.StatusSkip, rel)
			return nil
		}
		doc.RemoveBlock(repl)
		doc.InsertAt(i, old)
		if err := r.writeFile(rel, doc.Bytes()); err != nil {
			return err
		}
		r.record(output.StatusGsub, rel)
		return nil
	}

	if doc.Substitute(old, repl) == 0 {
		if doc.FindBlock(repl) >= 0 {
			r.record(output.StatusIdentical, rel)
			return nil
		}
		return fmt.Errorf("substituting in %s: %w: %q", rel, patch.ErrAnchorNotFound, old)
	}
	if err := r.writeFile(rel, doc.Bytes()); err != nil {
		return err
	}
	r.record(output.StatusGsub, rel)
	return nil
}

// loadDocument parses rel. A missing file under pretend is reported as
// handled since an earlier step would have created it. A missing file in
// revoke mode has nothing left to revert.
func (r *Runner) loadDocument(rel, pretendStatus string) (*patch.Document, bool, error) {
	if !r.Exists(rel) {
		if r.Revoking() && !r.opts.Pretend {
			r.record(output.StatusSkip, rel)
			return nil, false, nil
		}
		if r.opts.Pretend {
			r.record(pretendStatus, rel)
			return nil, false, nil
		}
		return nil, false, oerrors.NewNotFoundError(
			fmt.Sprintf("%s does not exist", rel),
			rel,
			"Check --root points at the Hyku application.",
		)
	}

	data, err := r.ReadFile(rel)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", rel, err)
	}
	return patch.Parse(data), true, nil
}
