package runner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// statusColumn is where status words line up; hook names are padded to it
// with dots.
const statusColumn = 60

var (
	stylePassed  = lipgloss.NewStyle().Foreground(lipgloss.Color("77"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	styleSkipped = lipgloss.NewStyle().Faint(true)
	styleOutput  = lipgloss.NewStyle().Faint(true)
)

// Reporter renders one status line per hook and a progress bar across the
// run, in the requested color mode.
type Reporter struct {
	out     io.Writer
	color   bool
	bar     progress.Model
	total   int
	done    int
	passed  int
	failed  int
	skipped int
}

func newReporter(out io.Writer, colorMode string, total int) *Reporter {
	return &Reporter{
		out:   out,
		color: colorEnabled(colorMode),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total: total,
	}
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// StartHook draws the progress bar while a hook runs. The bar lives on
// stderr so redirected stdout stays clean.
func (r *Reporter) StartHook(name string) {
	if !r.color {
		return
	}
	pct := float64(r.done) / float64(r.total)
	fmt.Fprintf(os.Stderr, "\r  %s %s", r.bar.ViewAs(pct), name)
}

// FinishHook clears the bar and prints the hook's status line, plus its
// captured output when it failed.
func (r *Reporter) FinishHook(res Result) {
	if r.color {
		fmt.Fprint(os.Stderr, "\r\033[2K") // clear the progress bar line
	}
	r.done++

	var status string
	switch res.Status {
	case StatusPassed:
		r.passed++
		status = r.styled(string(res.Status), stylePassed)
	case StatusFailed:
		r.failed++
		status = r.styled(string(res.Status), styleFailed)
	default:
		r.skipped++
		status = r.styled(string(res.Status), styleSkipped)
	}

	name := res.Hook.DisplayName()
	dots := statusColumn - len(name)
	if dots < 2 {
		dots = 2
	}

	line := name + strings.Repeat(".", dots) + status
	if res.Status != StatusSkipped {
		line += fmt.Sprintf(" (%s)", res.Duration.Round(time.Millisecond))
	}
	fmt.Fprintln(r.out, line)

	if res.Status == StatusFailed {
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %v\n", res.Err)
		}
		if out := strings.TrimSpace(res.Output); out != "" {
			for _, l := range strings.Split(out, "\n") {
				fmt.Fprintln(r.out, r.styled("  "+l, styleOutput))
			}
		}
	}
}

// Summary prints the run totals.
func (r *Reporter) Summary(elapsed time.Duration) {
	parts := []string{fmt.Sprintf("%d passed", r.passed)}
	if r.failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", r.failed))
	}
	if r.skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", r.skipped))
	}

	line := fmt.Sprintf("%d hooks: %s in %s", r.total, strings.Join(parts, ", "), elapsed.Round(time.Millisecond))
	if r.failed > 0 {
		line = r.styled(line, styleFailed)
	}
	fmt.Fprintln(r.out, line)
}

func (r *Reporter) styled(s string, style lipgloss.Style) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
