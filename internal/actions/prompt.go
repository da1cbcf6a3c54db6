package actions

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/samvera-labs/workgen/internal/output"
)

// Resolution is the user's answer to a conflict prompt.
type Resolution int

const (
	// ResolveOverwrite replaces the existing file.
	ResolveOverwrite Resolution = iota

	// ResolveSkip keeps the existing file.
	ResolveSkip

	// ResolveAbort stops the run.
	ResolveAbort

	// resolveDiff shows the diff and asks again.
	resolveDiff
)

// Prompter asks how to resolve a create conflict.
type Prompter interface {
	ResolveConflict(path string, current, proposed []byte) (Resolution, error)
}

// HuhPrompter prompts on the terminal with a huh select.
type HuhPrompter struct {
	// Out receives the rendered diff.
	Out io.Writer
}

// ResolveConflict implements Prompter.
func (p *HuhPrompter) ResolveConflict(path string, current, proposed []byte) (Resolution, error) {
	for {
		var choice Resolution
		err := huh.NewSelect[Resolution]().
			Title(fmt.Sprintf("Overwrite %s?", path)).
			Options(
				huh.NewOption("overwrite", ResolveOverwrite),
				huh.NewOption("skip", ResolveSkip),
				huh.NewOption("show diff", resolveDiff),
				huh.NewOption("abort", ResolveAbort),
			).
			Value(&choice).
			Run()
		if err != nil {
			return ResolveAbort, err
		}

		if choice != resolveDiff {
			return choice, nil
		}

		diff, err := output.RenderFileDiff(path, current, proposed, true)
		if err != nil {
			return ResolveAbort, err
		}
		_, _ = fmt.Fprintln(p.Out, diff)
	}
}
