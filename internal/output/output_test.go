package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog swaps the global logger for one writing into a buffer.
func captureLog(t *testing.T, level log.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger
	logger = log.NewWithOptions(&buf, log.Options{Level: level})
	t.Cleanup(func() { logger = prev })
	return &buf
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LogConfig
		wantLevel log.Level
	}{
		{"default is info", LogConfig{}, log.InfoLevel},
		{"verbose is debug", LogConfig{Verbose: true}, log.DebugLevel},
		{"timestamps keep info", LogConfig{Timestamps: BoolPtr(true)}, log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := logger
			t.Cleanup(func() { logger = prev })

			SetupLogging(tt.cfg)
			assert.Equal(t, tt.wantLevel, Logger().GetLevel())
		})
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := captureLog(t, log.InfoLevel)

	Debug("hidden")
	Warn("shown", "path", "app/models/book.rb")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "app/models/book.rb")
}

func TestWorkLoggerPrefix(t *testing.T) {
	buf := captureLog(t, log.InfoLevel)

	WorkLogger("Book").Info("GENERATING")
	assert.Contains(t, buf.String(), "Book")
	assert.Contains(t, buf.String(), "GENERATING")
}

func TestSetWriter(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWriter(&buf)

	Println("hello")
	restore()

	assert.Equal(t, "hello\n", buf.String())
}

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(StatusCreate, "app/models/book.rb")
	assert.Contains(t, got, "      create")
	assert.True(t, strings.HasSuffix(got, "  app/models/book.rb"))
}

func TestStatusPrintsToWriter(t *testing.T) {
	var buf bytes.Buffer
	defer SetWriter(&buf)()

	Status(StatusSkip, "config/initializers/hyrax.rb")
	assert.Contains(t, buf.String(), "skip")
	assert.Contains(t, buf.String(), "config/initializers/hyrax.rb")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"TABLE", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid formats")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestWriteSummary(t *testing.T) {
	summary := RunSummary{
		ClassName: "Book",
		Mode:      "generate",
		Actions: []ResultRow{
			{Step: "model", Status: StatusCreate, Path: "app/models/book.rb"},
		},
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSummary(&buf, summary, FormatJSON))

		var got RunSummary
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, summary, got)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSummary(&buf, summary, FormatYAML))
		assert.Contains(t, buf.String(), "className: Book")
		assert.Contains(t, buf.String(), "path: app/models/book.rb")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteSummary(&buf, summary, FormatText))
		assert.Contains(t, buf.String(), "STEP")
		assert.Contains(t, buf.String(), "app/models/book.rb")
	})
}

func TestRenderFileTree(t *testing.T) {
	got := RenderFileTree("hyku", map[string]string{
		"app/models/book.rb":            "model",
		"app/forms/book_form.rb":        "form",
		"config/metadata/book.yaml":     "",
		"app/controllers/hyrax/book.rb": "controller",
	})

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "hyku/")
	assert.Equal(t, "├── app/controllers/hyrax/", lines[1])
	assert.Equal(t, "├── app/forms/", lines[3])
	assert.Equal(t, "└── config/metadata/", lines[7])
	assert.Equal(t, "    └── book.yaml", lines[8])
	assert.True(t, strings.HasPrefix(lines[4], "│   └── book_form.rb"))
	assert.Contains(t, lines[4], "form")
	assert.Contains(t, lines[6], "model")

	assert.Empty(t, RenderFileTree("hyku", nil))
}

func TestRenderFileDiff(t *testing.T) {
	t.Run("text lines", func(t *testing.T) {
		got, err := RenderFileDiff("app/models/book.rb", []byte("a\nb\n"), []byte("a\nc\n"), false)
		require.NoError(t, err)
		assert.Contains(t, got, "  a\n")
		assert.Contains(t, got, "- b\n")
		assert.Contains(t, got, "+ c\n")
	})

	t.Run("yaml structural", func(t *testing.T) {
		got, err := RenderFileDiff("config/metadata/book.yaml",
			[]byte("attributes:\n  title:\n    type: string\n"),
			[]byte("attributes:\n  title:\n    type: integer\n"),
			false)
		require.NoError(t, err)
		assert.Contains(t, got, "title")
		assert.Contains(t, got, "integer")
	})

	t.Run("identical yaml", func(t *testing.T) {
		doc := []byte("attributes: {}\n")
		got, err := RenderFileDiff("book.yml", doc, doc, false)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("broken yaml falls back", func(t *testing.T) {
		got, err := RenderFileDiff("book.yaml", []byte("a: [\n"), []byte("a: 1\n"), false)
		require.NoError(t, err)
		assert.Contains(t, got, "+ a: 1")
	})
}
