package actions

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/patch"
	"github.com/samvera-labs/workgen/internal/work"
)

const root = "/app"

type fakePrompter struct {
	answer Resolution
	calls  int
}

func (f *fakePrompter) ResolveConflict(string, []byte, []byte) (Resolution, error) {
	f.calls++
	return f.answer, nil
}

func newRunner(t *testing.T, fs afero.Fs, opts Options) *Runner {
	t.Helper()
	t.Cleanup(output.SetWriter(io.Discard))
	opts.Root = root
	return New(fs, opts)
}

func writeFile(t *testing.T, fs afero.Fs, rel, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, root+"/"+rel, []byte(content), 0o644))
}

func readFile(t *testing.T, fs afero.Fs, rel string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, root+"/"+rel)
	require.NoError(t, err)
	return string(data)
}

func statuses(r *Runner) []string {
	var out []string
	for _, row := range r.Results() {
		out = append(out, row.Status)
	}
	return out
}

func TestCreateFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := newRunner(t, fs, Options{})
	r.SetStep("model")

	require.NoError(t, r.CreateFile("app/models/book.rb", []byte("class Book\nend\n")))
	require.NoError(t, r.CreateFile("app/models/book.rb", []byte("class Book\nend\n")))

	assert.Equal(t, "class Book\nend\n", readFile(t, fs, "app/models/book.rb"))
	assert.Equal(t, []string{output.StatusCreate, output.StatusIdentical}, statuses(r))
	assert.Equal(t, "model", r.Results()[0].Step)

	// No temp files are left behind.
	entries, err := afero.ReadDir(fs, root+"/app/models")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateFileConflict(t *testing.T) {
	tests := []struct {
		name       string
		policy     ConflictPolicy
		prompter   *fakePrompter
		want       string
		wantStatus string
		wantErr    error
	}{
		{name: "ask without terminal", policy: PolicyAsk, want: "old\n", wantErr: oerrors.ErrConflict},
		{name: "force", policy: PolicyForce, want: "new\n", wantStatus: output.StatusForce},
		{name: "skip", policy: PolicySkip, want: "old\n", wantStatus: output.StatusSkip},
		{name: "prompt overwrite", policy: PolicyAsk, prompter: &fakePrompter{answer: ResolveOverwrite}, want: "new\n", wantStatus: output.StatusForce},
		{name: "prompt skip", policy: PolicyAsk, prompter: &fakePrompter{answer: ResolveSkip}, want: "old\n", wantStatus: output.StatusSkip},
		{name: "prompt abort", policy: PolicyAsk, prompter: &fakePrompter{answer: ResolveAbort}, want: "old\n", wantErr: oerrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, "app/forms/book_form.rb", "old\n")

			opts := Options{Policy: tt.policy}
			if tt.prompter != nil {
				opts.Prompter = tt.prompter
			}
			r := newRunner(t, fs, opts)

			err := r.CreateFile("app/forms/book_form.rb", []byte("new\n"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, oerrors.ExitConflict, oerrors.ExitCodeFromError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, []string{tt.wantStatus}, statuses(r))
			}
			assert.Equal(t, tt.want, readFile(t, fs, "app/forms/book_form.rb"))
			if tt.prompter != nil {
				assert.Equal(t, 1, tt.prompter.calls)
			}
		})
	}
}

func TestCreateFileRevoke(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "app/models/book.rb", "class Book\nend\n")
	r := newRunner(t, fs, Options{Mode: work.Revoke})

	require.NoError(t, r.CreateFile("app/models/book.rb", nil))
	require.NoError(t, r.CreateFile("app/models/missing.rb", nil))

	exists, err := afero.Exists(fs, root+"/app/models/book.rb")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, []string{output.StatusRemove, output.StatusSkip}, statuses(r))
}

func TestPretendWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "app/models/book.rb", "class Book\nend\n")
	r := newRunner(t, fs, Options{Pretend: true})

	require.NoError(t, r.CreateFile("app/forms/book_form.rb", []byte("x\n")))
	require.NoError(t, r.InjectIntoFile("app/models/book.rb", patch.Patch{
		Anchor: patch.Anchor{Match: patch.Trimmed("end"), Position: patch.Before, Last: true},
		Lines:  []string{"  include X"},
	}))
	require.NoError(t, r.InjectIntoFile("app/models/created_earlier.rb", patch.Patch{
		Anchor: patch.Anchor{Match: patch.Trimmed("end")},
		Lines:  []string{"x"},
	}))

	exists, err := afero.Exists(fs, root+"/app/forms/book_form.rb")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, "class Book\nend\n", readFile(t, fs, "app/models/book.rb"))
	assert.Equal(t, []string{output.StatusCreate, output.StatusInsert, output.StatusInsert}, statuses(r))
}

func TestInjectIntoFile(t *testing.T) {
	p := patch.Patch{
		Anchor: patch.Anchor{
			Description: "WorksControllerBehavior include",
			Match:       patch.Trimmed("include Hyrax::WorksControllerBehavior"),
			Position:    patch.After,
		},
		Lines: []string{"    include Hyku::WorksControllerBehavior"},
	}
	original := "class BooksController\n    include Hyrax::WorksControllerBehavior\nend\n"
	patched := "class BooksController\n    include Hyrax::WorksControllerBehavior\n    include Hyku::WorksControllerBehavior\nend\n"

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "c.rb", original)

	gen := newRunner(t, fs, Options{})
	require.NoError(t, gen.InjectIntoFile("c.rb", p))
	require.NoError(t, gen.InjectIntoFile("c.rb", p))
	assert.Equal(t, patched, readFile(t, fs, "c.rb"))
	assert.Equal(t, []string{output.StatusInsert, output.StatusIdentical}, statuses(gen))

	rev := newRunner(t, fs, Options{Mode: work.Revoke})
	require.NoError(t, rev.InjectIntoFile("c.rb", p))
	require.NoError(t, rev.InjectIntoFile("c.rb", p))
	assert.Equal(t, original, readFile(t, fs, "c.rb"))
	assert.Equal(t, []string{output.StatusSubtract, output.StatusSkip}, statuses(rev))
}

func TestInjectIntoFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "c.rb", "class X\nend\n")
	r := newRunner(t, fs, Options{})

	err := r.InjectIntoFile("c.rb", patch.Patch{
		Anchor: patch.Anchor{Description: "missing", Match: patch.Trimmed("nope")},
		Lines:  []string{"x"},
	})
	require.ErrorIs(t, err, patch.ErrAnchorNotFound)
	assert.Equal(t, "class X\nend\n", readFile(t, fs, "c.rb"))

	err = r.InjectIntoFile("missing.rb", patch.Patch{Anchor: patch.Anchor{Match: patch.Trimmed("end")}})
	require.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestGsubFile(t *testing.T) {
	original := "name: book\nattributes: {}\n"
	repl := []string{"attributes:", "  title:", "    type: string"}

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config/metadata/book.yaml", original)

	gen := newRunner(t, fs, Options{})
	require.NoError(t, gen.GsubFile("config/metadata/book.yaml", "attributes: {}", repl))
	assert.Equal(t, "name: book\nattributes:\n  title:\n    type: string\n", readFile(t, fs, "config/metadata/book.yaml"))

	require.NoError(t, gen.GsubFile("config/metadata/book.yaml", "attributes: {}", repl))
	assert.Equal(t, []string{output.StatusGsub, output.StatusIdentical}, statuses(gen))

	rev := newRunner(t, fs, Options{Mode: work.Revoke})
	require.NoError(t, rev.GsubFile("config/metadata/book.yaml", "attributes: {}", repl))
	assert.Equal(t, original, readFile(t, fs, "config/metadata/book.yaml"))

	writeFile(t, fs, "other.yaml", "name: x\n")
	err := gen.GsubFile("other.yaml", "attributes: {}", repl)
	assert.ErrorIs(t, err, patch.ErrAnchorNotFound)
}

func TestNewDefaultsPolicy(t *testing.T) {
	r := New(afero.NewMemMapFs(), Options{})
	assert.Equal(t, PolicyAsk, r.opts.Policy)
	assert.False(t, r.Revoking())
	assert.ElementsMatch(t, []string{"ask", "force", "skip"}, ValidPolicies())
}

func TestRevokeMissingTargetIsSkipped(t *testing.T) {
	r := newRunner(t, afero.NewMemMapFs(), Options{Mode: work.Revoke})

	require.NoError(t, r.InjectIntoFile("gone.rb", patch.Patch{Lines: []string{"x"}}))
	require.NoError(t, r.GsubFile("gone.yaml", "attributes: {}", []string{"attributes:"}))
	assert.Equal(t, []string{output.StatusSkip, output.StatusSkip}, statuses(r))
}
