// Package report renders build reports for the terminal, in the manner of
// the `module spider` output.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/harvardinformatics/module-query/pkg/api"
	mqerr "github.com/harvardinformatics/module-query/pkg/errors"
)

const (
	// textMargin is the indent on either side of wrapped text.
	textMargin = 6

	// buildStackIndent is the hanging indent for wrapped build stack lines.
	buildStackIndent = 30

	// versionIndent is the hanging indent for wrapped version lines.
	versionIndent = 58

	// dotPadWidth is the column the build comments start in, with the
	// module title dot padded up to it.
	dotPadWidth = 40
)

// Reporter writes build reports to out, wrapped to the given terminal width.
type Reporter struct {
	out   io.Writer
	width int
}

// New creates a Reporter. A non-positive width falls back to 80 columns.
func New(out io.Writer, width int) *Reporter {
	if width <= 0 {
		width = 80
	}
	return &Reporter{out: out, width: width}
}

// Detail prints the full report for a single build: description, comments,
// the module load command, run time dependencies and the build stack
// activation when one exists.
func (r *Reporter) Detail(record api.BuildReportRecord) error {
	report, err := api.ParseBuildReport(record)
	if err != nil {
		return mqerr.NewReportParseError(record.BuildName, err)
	}

	width := r.width - 2
	textWidth := width - textMargin*2
	border := strings.Repeat("-", width)
	margin := strings.Repeat(" ", textMargin)

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "\n%s\n  %s : %s\n%s\n", border, report.Title, report.Name, border)
	fmt.Fprintf(buf, "    Build flavor: %s\n", report.BuildStack)
	fmt.Fprintf(buf, "    Description:\n%s\n", fill(report.Description, textWidth, margin, margin))
	if len(strings.TrimSpace(report.Comments)) > 0 {
		fmt.Fprintf(buf, "\n    Build comments:\n%s\n", fill(report.Comments, textWidth, margin, margin))
	}
	fmt.Fprintf(buf, "\n    This module can be loaded as follows:\n      %s\n", strings.ReplaceAll(report.Activation, "\n", "\n      "))
	if len(report.RunDependencies) > 0 {
		fmt.Fprintf(buf, "\n    This module also loads:\n%s\n", fill(strings.Join(report.RunDependencies, " "), textWidth, margin, margin))
	}
	if len(report.BuildStackActivation) > 0 {
		fmt.Fprintf(buf, "\n    %s activation:\n%s\n", report.BuildStack, fill(report.BuildStackActivation, textWidth, margin, margin))
	}
	fmt.Fprintln(buf)

	_, err = r.out.Write(buf.Bytes())
	return err
}

// application collects the builds of one application title while the
// consolidated report is assembled.
type application struct {
	description   string
	stacks        map[string][]string
	example       string
	exampleFlavor string
	hasPreferred  bool
}

// Consolidated prints a report for a set of builds, grouped by application
// title and build stack. Applications and build stacks print in sorted
// order so the output is stable between runs.
func (r *Reporter) Consolidated(records []api.BuildReportRecord) error {
	width := r.width - 2
	textWidth := width - textMargin*2
	border := strings.Repeat("-", width)
	margin := strings.Repeat(" ", textMargin)
	hangingIndent := strings.Repeat(" ", versionIndent)

	apps := map[string]*application{}
	for _, record := range records {
		report, err := api.ParseBuildReport(record)
		if err != nil {
			return mqerr.NewReportParseError(record.BuildName, err)
		}
		app, ok := apps[report.Title]
		if !ok {
			app = &application{stacks: map[string][]string{}}
			apps[report.Title] = app
		}
		app.description = report.Description

		prefix := ""
		if report.PreferredBuild {
			prefix = "* "
			app.hasPreferred = true
		}
		line := fmt.Sprintf("%s%s %s", prefix, dotPad(report.Name, dotPadWidth), strings.TrimSpace(report.Comments))
		app.stacks[report.BuildStack] = append(app.stacks[report.BuildStack], fill(strings.TrimSpace(line), textWidth, margin, hangingIndent))
		app.example = report.Name
		app.exampleFlavor = report.BuildStack
	}

	titles := make([]string, 0, len(apps))
	for title := range apps {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	buf := &bytes.Buffer{}
	for _, title := range titles {
		app := apps[title]

		stackNames := make([]string, 0, len(app.stacks))
		for stack := range app.stacks {
			stackNames = append(stackNames, stack)
		}
		sort.Strings(stackNames)

		stackBlocks := make([]string, 0, len(stackNames))
		for _, stack := range stackNames {
			lines := []string{fill(stack, textWidth, margin, strings.Repeat(" ", buildStackIndent))}
			lines = append(lines, app.stacks[stack]...)
			stackBlocks = append(stackBlocks, strings.Join(lines, "\n"))
		}

		fmt.Fprintf(buf, "\n%s\n  %s\n%s\n", border, title, border)
		fmt.Fprintf(buf, "    Description:\n%s\n\n", fill(app.description, textWidth, margin, margin))
		fmt.Fprintf(buf, "    Versions:\n%s\n\n", strings.Join(stackBlocks, "\n"))
		fmt.Fprintf(buf, "\n    To find detailed information about a module, search the full name.\n\n      module-query %s\n\n", app.example)
		fmt.Fprintf(buf, "    You may need to specify the build \"flavor\" to get a single record\n\n      module-query %s --flavors '%s'\n", app.example, app.exampleFlavor)
		if app.hasPreferred {
			fmt.Fprint(buf, "\n    * denotes preferred build.\n")
		}
		fmt.Fprintln(buf)
	}

	_, err := r.out.Write(buf.Bytes())
	return err
}

// fill wraps text and applies the initial and hanging indents. The first line
// wraps at the width left after the initial indent; continuation lines wrap at
// the width left after the hanging indent.
func fill(text string, width int, initial, subsequent string) string {
	firstWidth := width - len(initial)
	if firstWidth < 1 {
		firstWidth = 1
	}
	restWidth := width - len(subsequent)
	if restWidth < 1 {
		restWidth = 1
	}
	lines := strings.Split(wordwrap.WrapString(text, uint(firstWidth)), "\n")
	out := []string{initial + lines[0]}
	if len(lines) > 1 {
		remainder := strings.Join(lines[1:], " ")
		for _, line := range strings.Split(wordwrap.WrapString(remainder, uint(restWidth)), "\n") {
			out = append(out, subsequent+line)
		}
	}
	return strings.Join(out, "\n")
}

// dotPad pads s with dots up to width, matching the module spider style of
// leading the eye from a version to its comments.
func dotPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(".", width-len(s))
}
