package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/neatify/pkg/catalog"
	"github.com/walteh/neatify/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ExampleMarker is the name fragment that identifies generated example output.
const ExampleMarker = "pretty"

// CleanExamples removes every file under dir whose name contains ExampleMarker.
// Removal failures are reported and skipped. It returns the removed paths.
// The console logger is taken from ctx.
func CleanExamples(ctx context.Context, dir string) ([]string, error) {
	console := log.FromContext(ctx)
	console.Infof("removing %s files from %s", ExampleMarker, dir)

	files, err := catalog.Walk(ctx, dir, catalog.Options{})
	if errors.Is(err, catalog.ErrNoFiles) {
		console.Info("nothing to remove")
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("listing examples: %w", err)
	}

	var removed []string
	for _, file := range files {
		if !strings.Contains(file.Name, ExampleMarker) {
			continue
		}
		if err := os.Remove(file.Path); err != nil {
			console.Errorf("failed to remove %s: %v", file.Path, err)
			continue
		}
		console.Successf("removed %s", file.Path)
		removed = append(removed, file.Path)
	}

	return removed, nil
}

// NewCleanExamplesCmd creates the hidden clean-examples command
func NewCleanExamplesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "clean-examples",
		Short:  "Remove generated example output",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := CleanExamples(cmd.Context(), dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "examples", "directory holding example files")

	return cmd
}
