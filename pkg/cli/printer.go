package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghtrail/pkg/activity"
)

type lineStyle struct {
	icon  string
	color *color.Color
}

// printer renders command output. Timeline lines are colored by style, everything
// else is indented JSON.
type printer struct {
	w      io.Writer
	styles map[activity.Style]lineStyle
}

func newPrinter(w io.Writer, noColor bool) *printer {
	styles := map[activity.Style]lineStyle{
		activity.StyleDefault:     {icon: "📌", color: color.New(color.FgWhite)},
		activity.StyleUnknown:     {icon: "❓", color: color.New(color.FgRed)},
		activity.StylePush:        {icon: "🟢", color: color.New(color.FgGreen)},
		activity.StyleStar:        {icon: "⭐", color: color.New(color.FgYellow)},
		activity.StyleIssue:       {icon: "🐛", color: color.New(color.FgMagenta)},
		activity.StyleFork:        {icon: "🍴", color: color.New(color.FgBlue, color.Bold)},
		activity.StylePullRequest: {icon: "📬", color: color.New(color.FgCyan)},
	}

	if noColor {
		for _, s := range styles {
			s.color.DisableColor()
		}
	}

	return &printer{w: w, styles: styles}
}

func (p *printer) lines(lines []activity.Line) error {
	for _, line := range lines {
		s, ok := p.styles[line.Style]
		if !ok {
			s = p.styles[activity.StyleDefault]
		}
		if _, err := s.color.Fprintf(p.w, "%s %s\n", s.icon, line.Text); err != nil {
			return goerr.Wrap(err, "failed to write output")
		}
	}
	return nil
}

func (p *printer) message(msg string) error {
	if _, err := fmt.Fprintln(p.w, msg); err != nil {
		return goerr.Wrap(err, "failed to write output")
	}
	return nil
}

func (p *printer) json(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}
