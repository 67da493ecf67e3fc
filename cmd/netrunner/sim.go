package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/game"
)

// simOptions holds flags for the sim command
type simOptions struct {
	*rootOptions
	Direct bool
	Limit  time.Duration
	Step   time.Duration
}

func newSimCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &simOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless autopilot session on virtual time",
		Long: `Play the game without a terminal UI. A greedy autopilot launches the
strongest affordable command at the earliest unbreached layer and the
session log is printed as a transcript.

Example:
  netrunner sim
  netrunner sim --direct --limit 2m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "skip the tutorial session")
	cmd.Flags().DurationVar(&opts.Limit, "limit", 10*time.Minute, "virtual time budget")
	cmd.Flags().DurationVar(&opts.Step, "step", 100*time.Millisecond, "virtual time between autopilot decisions")

	return cmd
}

func runSim(opts *simOptions, out io.Writer) error {
	logFile, logger := setupLogging(opts.cfg.Debug, opts.cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	g := game.New(logger, nil)
	if opts.Direct {
		g.StartDirect()
	} else {
		g.StartTutorial()
	}

	tr := &transcript{w: out, color: opts.cfg.UI.Color && isTerminal(out)}
	tr.sync(g)
	result := game.NewAutopilot(g, opts.Step).Run(opts.Limit, func() { tr.sync(g) })
	tr.summary(g, result)
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Transcript line styles
var (
	styleSession = color.Style{color.FgCyan, color.OpBold}
	styleGood    = color.Style{color.FgGreen, color.OpBold}
	styleBad     = color.Style{color.FgRed, color.OpBold}
	styleAction  = color.Style{color.FgMagenta}
	styleSubtle  = color.Style{color.FgGray}
)

// transcript prints session log lines as they appear
type transcript struct {
	w       io.Writer
	color   bool
	session string
	printed int
}

func (t *transcript) paint(style color.Style, s string) string {
	if !t.color {
		return s
	}
	return style.Sprint(s)
}

// sync prints log lines added since the last call, starting a new block per session
func (t *transcript) sync(g *game.Game) {
	s := g.Session()
	if s == nil {
		return
	}
	if s.ID != t.session {
		t.session = s.ID
		t.printed = 0
		fmt.Fprintln(t.w, t.paint(styleSession, fmt.Sprintf("== %s session %s ==", s.Mode, shortID(s.ID))))
	}
	for _, line := range s.Log[t.printed:] {
		stamp := t.paint(styleSubtle, fmt.Sprintf("[T+%06.1fs]", g.Now().Seconds()))
		fmt.Fprintf(t.w, "%s %s\n", stamp, t.paint(lineStyle(line), line))
	}
	t.printed = len(s.Log)
}

func (t *transcript) summary(g *game.Game, result engine.Result) {
	st := g.Stats()
	style := styleBad
	if result == engine.ResultSuccess {
		style = styleGood
	}
	fmt.Fprintln(t.w, t.paint(style, fmt.Sprintf("result: %s after %s", result, g.Now().Round(time.Millisecond))))
	fmt.Fprintf(t.w, "sessions=%d attacks=%d breaches=%d failures=%d rejections=%d\n",
		st.Sessions, st.Attacks, st.Breaches, st.Failures, st.Rejections)
}

// lineStyle picks a color from the wording of a log line
func lineStyle(line string) color.Style {
	switch {
	case strings.Contains(line, "ERROR"), strings.Contains(line, "FAILED"), strings.Contains(line, "TERMINATED"):
		return styleBad
	case strings.Contains(line, "BREACHED"), strings.Contains(line, "SUCCESSFUL"), strings.Contains(line, "COMPLETE"):
		return styleGood
	case strings.Contains(line, "EXECUTING"):
		return styleAction
	}
	return styleSubtle
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
