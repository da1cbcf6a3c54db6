package cmdutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samvera-labs/workgen/internal/cmdtypes"
	"github.com/samvera-labs/workgen/internal/config"
	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/testutil"
	"github.com/samvera-labs/workgen/internal/work"
)

const appRoot = "/app"

func scaffoldFixture(t *testing.T) afero.Fs {
	t.Helper()
	t.Cleanup(output.SetWriter(io.Discard))
	for _, key := range config.Keys {
		t.Setenv(config.EnvVar(key), "")
	}

	fs := afero.NewMemMapFs()
	testutil.LoadProject(t, "../generator/testdata/hyku.txtar").Install(t, fs, appRoot)
	return fs
}

func globalConfig() *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{Config: &config.Config{}, Loader: config.NewLoader()}
}

func TestRunScaffold_GenerateText(t *testing.T) {
	fs := scaffoldFixture(t)
	var out bytes.Buffer

	result, err := RunScaffold(context.Background(), ScaffoldOpts{
		Args:   []string{"scholarly_paper", "subtitle:string"},
		Flags:  &ScaffoldFlags{Root: appRoot, Output: "text"},
		Config: globalConfig(),
		Mode:   work.Generate,
		Fs:     fs,
		Out:    &out,
	})
	require.NoError(t, err)

	assert.Equal(t, "ScholarlyPaper", result.Summary.ClassName)
	assert.Contains(t, out.String(), "Generated work resource ScholarlyPaper")
	assert.Contains(t, out.String(), "scholarly_paper.rb")

	exists, err := afero.Exists(fs, appRoot+"/app/models/scholarly_paper.rb")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunScaffold_PretendJSON(t *testing.T) {
	fs := scaffoldFixture(t)
	before := testutil.Snapshot(t, fs, appRoot)
	var out, status bytes.Buffer

	_, err := RunScaffold(context.Background(), ScaffoldOpts{
		Args:   []string{"ScholarlyPaper"},
		Flags:  &ScaffoldFlags{Root: appRoot, Pretend: true, Output: "json"},
		Config: globalConfig(),
		Mode:   work.Generate,
		Fs:     fs,
		Out:    &out,
		Err:    &status,
	})
	require.NoError(t, err)

	var summary output.RunSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.True(t, summary.Pretend)
	assert.Equal(t, "generate", summary.Mode)
	assert.NotEmpty(t, summary.Actions)
	assert.Contains(t, status.String(), "GENERATING VALKYRIE WORK MODEL: ScholarlyPaper")

	testutil.AssertTree(t, before, testutil.Snapshot(t, fs, appRoot))
}

func TestRunScaffold_GenerateThenDestroy(t *testing.T) {
	fs := scaffoldFixture(t)
	before := testutil.Snapshot(t, fs, appRoot)

	banners := map[work.Mode]string{
		work.Generate: "GENERATING VALKYRIE WORK MODEL: ScholarlyPaper",
		work.Revoke:   "DESTROYING VALKYRIE WORK MODEL: ScholarlyPaper",
	}
	for _, mode := range []work.Mode{work.Generate, work.Revoke} {
		var status bytes.Buffer
		_, err := RunScaffold(context.Background(), ScaffoldOpts{
			Args:   []string{"scholarly_paper"},
			Flags:  &ScaffoldFlags{Root: appRoot, Output: "json"},
			Config: globalConfig(),
			Mode:   mode,
			Fs:     fs,
			Out:    io.Discard,
			Err:    &status,
		})
		require.NoError(t, err, mode.String())
		assert.Contains(t, status.String(), banners[mode])
	}

	after := testutil.Snapshot(t, fs, appRoot)
	for path := range after {
		if _, ok := before[path]; !ok {
			assert.Failf(t, "file left behind", "%s", path)
		}
	}
	assert.Equal(t, before["config/initializers/hyrax.rb"], after["config/initializers/hyrax.rb"])
}

func TestRunScaffold_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		flags    ScaffoldFlags
		config   *config.Config
		wantCode int
		printed  bool
	}{
		{
			name:     "reserved name",
			args:     []string{"Work"},
			flags:    ScaffoldFlags{Root: appRoot, Output: "text"},
			wantCode: oerrors.ExitValidationError,
			printed:  true,
		},
		{
			name:     "reserved plural",
			args:     []string{"works"},
			flags:    ScaffoldFlags{Root: appRoot, Output: "text"},
			wantCode: oerrors.ExitValidationError,
			printed:  true,
		},
		{
			name:     "missing root",
			args:     []string{"scholarly_paper"},
			flags:    ScaffoldFlags{Root: "/nowhere", Output: "text"},
			wantCode: oerrors.ExitNotFound,
			printed:  true,
		},
		{
			name:     "missing initializer",
			args:     []string{"scholarly_paper"},
			flags:    ScaffoldFlags{Root: appRoot, Initializer: "config/initializers/missing.rb", Output: "text"},
			wantCode: oerrors.ExitNotFound,
			printed:  true,
		},
		{
			name:     "bad output",
			args:     []string{"scholarly_paper"},
			flags:    ScaffoldFlags{Root: appRoot, Output: "xml"},
			wantCode: oerrors.ExitValidationError,
		},
		{
			name:     "bad config",
			args:     []string{"scholarly_paper"},
			flags:    ScaffoldFlags{Root: appRoot, Output: "text"},
			config:   &config.Config{Tests: "minitest"},
			wantCode: oerrors.ExitValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := scaffoldFixture(t)
			cfg := globalConfig()
			if tt.config != nil {
				cfg.Config = tt.config
			}

			_, err := RunScaffold(context.Background(), ScaffoldOpts{
				Args:   tt.args,
				Flags:  &tt.flags,
				Config: cfg,
				Mode:   work.Generate,
				Fs:     fs,
				Out:    io.Discard,
			})
			require.Error(t, err)

			var exitErr *oerrors.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.Equal(t, tt.printed, exitErr.Printed)
		})
	}
}

func TestRunScaffold_ConflictWithoutTerminal(t *testing.T) {
	fs := scaffoldFixture(t)
	require.NoError(t, afero.WriteFile(fs, appRoot+"/app/models/scholarly_paper.rb", []byte("# mine\n"), 0o644))

	_, err := RunScaffold(context.Background(), ScaffoldOpts{
		Args:   []string{"scholarly_paper"},
		Flags:  &ScaffoldFlags{Root: appRoot, Output: "text"},
		Config: globalConfig(),
		Mode:   work.Generate,
		Fs:     fs,
		Out:    io.Discard,
	})
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConflict, oerrors.ExitCodeFromError(err))
}

func TestRunScaffold_DebugLog(t *testing.T) {
	fs := scaffoldFixture(t)
	var logBuf bytes.Buffer
	output.SetupLogging(output.LogConfig{Verbose: true})
	output.SetLogWriter(&logBuf)
	t.Cleanup(func() {
		output.SetupLogging(output.LogConfig{})
		output.SetLogWriter(os.Stderr)
	})

	opts := ScaffoldOpts{
		Flags:  &ScaffoldFlags{Root: appRoot, Output: "text"},
		Config: globalConfig(),
		Mode:   work.Generate,
		Fs:     fs,
		Out:    io.Discard,
	}

	opts.Args = []string{"scholarly_paper", "subtitle:string"}
	_, err := RunScaffold(context.Background(), opts)
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "subtitle")

	opts.Args = []string{"Work"}
	_, err = RunScaffold(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, logBuf.String(), "Validation Error")
}

func TestRunScaffold_MissingConfig(t *testing.T) {
	_, err := RunScaffold(context.Background(), ScaffoldOpts{
		Args:  []string{"scholarly_paper"},
		Flags: &ScaffoldFlags{Output: "text"},
	})
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}
