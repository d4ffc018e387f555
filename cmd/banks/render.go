package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/GregMSThompson/banks-directory/internal/dto"
)

var (
	colorInk    = lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#94A3B8"}
	colorAccent = lipgloss.Color("#06B6D4")
	colorDanger = lipgloss.Color("#F43F5E")
)

const bicWidth = 11

type styles struct {
	bic   lipgloss.Style
	name  lipgloss.Style
	label lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

// newStyles binds the palette to w so colors degrade to plain text when w
// is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		bic:   r.NewStyle().Foreground(colorAccent).Width(bicWidth),
		name:  r.NewStyle().Foreground(colorInk),
		label: r.NewStyle().Foreground(colorMuted).Bold(true),
		muted: r.NewStyle().Foreground(colorMuted),
		err:   r.NewStyle().Foreground(colorDanger).Bold(true),
	}
}

func (s styles) printList(w io.Writer, view dto.ListView) {
	for _, row := range view.Rows {
		fmt.Fprintln(w, s.bic.Render(row.BIC)+s.name.Render(row.Name))
	}
	fmt.Fprintln(w, s.muted.Render(fmt.Sprintf("%d / %d", len(view.Rows), view.Total)))
}

func (s styles) printDetail(w io.Writer, detail dto.BankDetail) {
	for _, row := range detail.Rows {
		fmt.Fprintln(w, s.label.Render(row.Label+":")+" "+s.name.Render(row.Value))
	}
}

func (s styles) printCopied(w io.Writer, row dto.DetailRow) {
	fmt.Fprintln(w, s.muted.Render("Скопировано: "+row.Label))
}

func (s styles) printError(w io.Writer, text string) {
	fmt.Fprintln(w, s.err.Render(text))
}
