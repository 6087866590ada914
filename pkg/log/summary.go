package log

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/neatify/pkg/status"
)

// RenderSummary renders a table of outcome counts.
func RenderSummary(s status.Summary) (string, error) {
	data := pterm.TableData{
		{"Outcome", "Files"},
		{status.StatusModified.String(), strconv.Itoa(s.Modified)},
		{status.StatusUnchanged.String(), strconv.Itoa(s.Unchanged)},
	}
	if s.Pending > 0 {
		data = append(data, []string{status.StatusPending.String(), strconv.Itoa(s.Pending)})
	}
	data = append(data,
		[]string{status.StatusSkipped.String(), strconv.Itoa(s.Skipped)},
		[]string{status.StatusFailed.String(), strconv.Itoa(s.Failed)},
		[]string{"total", strconv.Itoa(s.Total)},
	)

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// 📊 Summary prints the outcome table and a one-line verdict for a run
func (l *Logger) Summary(ctx context.Context, files []status.FileInfo) {
	s := status.Summarize(files)

	l.LogNewline()
	table, err := RenderSummary(s)
	if err != nil {
		l.Warningf("rendering summary: %v", err)
	} else {
		l.mu.Lock()
		fmt.Fprintln(l.console, table)
		l.mu.Unlock()
	}

	l.zlog.Info().
		Int("total", s.Total).
		Int("modified", s.Modified).
		Int("unchanged", s.Unchanged).
		Int("pending", s.Pending).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Msg("run summary")

	verdict := pterm.Success.WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.NewStyle(pterm.FgGreen)})
	switch {
	case s.Failed > 0 || s.Skipped > 0:
		verdict = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.NewStyle(pterm.FgRed)})
	case s.Pending > 0:
		verdict = pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️", Style: pterm.NewStyle(pterm.FgYellow)})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, verdict.Sprintfln("%d files: %d modified, %d unchanged, %d pending, %d skipped, %d failed",
		s.Total, s.Modified, s.Unchanged, s.Pending, s.Skipped, s.Failed))
}
