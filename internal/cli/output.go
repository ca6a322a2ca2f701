// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"fillmore-labs.com/dollarsign/internal/cli/config"
)

// renderer writes results in the configured format.
type renderer struct {
	out, err io.Writer
	format   string
	// styled enables colored text output.
	styled bool
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// textStyles holds the styles of the text format.
type textStyles struct {
	file, position, message, rule lipgloss.Style
}

var terminalStyles = &textStyles{
	file:     lipgloss.NewStyle().Bold(true),
	position: lipgloss.NewStyle().Faint(true),
	message:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	rule:     lipgloss.NewStyle().Faint(true),
}

func (r renderer) render(results []Result) error {
	for _, res := range results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(r.err, "%v\n", res.Err)
		}
	}

	var all []Issue
	for _, res := range results {
		all = append(all, res.Issues...)
	}

	switch r.format {
	case config.FormatJSON:
		return renderJSON(r.out, all)

	case config.FormatTable:
		renderTable(r.out, all)

		return nil

	default:
		var styles *textStyles
		if r.styled {
			styles = terminalStyles
		}

		renderText(r.out, all, styles)

		return nil
	}
}

// renderText writes one line per issue, styled unless s is nil.
func renderText(w io.Writer, issues []Issue, s *textStyles) {
	for _, i := range issues {
		if s == nil {
			_, _ = fmt.Fprintf(w, "%s:%d:%d: %s (%s)\n", i.File, i.Line, i.Column, i.Message, i.Rule)

			continue
		}

		_, _ = fmt.Fprintf(w, "%s%s %s %s\n",
			s.file.Render(i.File),
			s.position.Render(fmt.Sprintf(":%d:%d:", i.Line, i.Column)),
			s.message.Render(i.Message),
			s.rule.Render("("+i.Rule+")"))
	}
}

func renderJSON(w io.Writer, issues []Issue) error {
	if issues == nil {
		issues = []Issue{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(issues)
}

func renderTable(w io.Writer, issues []Issue) {
	if len(issues) == 0 {
		_, _ = fmt.Fprintln(w, "(0 issues)")

		return
	}

	fixable := 0

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"File", "Line", "Column", "Message", "Fixable"})

	for _, i := range issues {
		if i.Fixable {
			fixable++
		}

		t.AppendRow(table.Row{i.File, i.Line, i.Column, i.Message, i.Fixable})
	}

	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d issues", len(issues)), fmt.Sprintf("%d fixable", fixable)})
	t.Render()
}
