// Package display renders stations, menus and script results for the
// terminal using lipgloss.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/station"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bae6fd"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))
)

// Printer writes rendered output to w.
type Printer struct {
	w     io.Writer
	color bool
	width int
}

// NewPrinter creates a printer. With color false every style is dropped,
// which keeps output stable for logs and tests.
func NewPrinter(w io.Writer, color bool) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w, color: color, width: termWidth()}
}

// Stations prints one block per station: dishes then stock.
func (p *Printer) Stations(stations []*station.Station) {
	if len(stations) == 0 {
		p.line(secondaryStyle, "(no stations)")
		return
	}
	for i, s := range stations {
		if i > 0 {
			p.line(sepStyle, strings.Repeat("─", min(p.width, 40)))
		}
		p.line(headerStyle, fmt.Sprintf("%d. %s", i+1, s.Name()))

		dishes := s.Dishes()
		if len(dishes) == 0 {
			p.line(secondaryStyle, "   dishes: none")
		}
		for _, d := range dishes {
			p.line(primaryStyle, fmt.Sprintf("   dish  %-28s %-9s %3d min  %7.2f", d.Name(), d.CuisineName(), d.PrepTime(), d.Price()))
		}

		stock := s.Stock()
		if len(stock) == 0 {
			p.line(secondaryStyle, "   stock: empty")
		}
		for _, ing := range stock {
			p.line(secondaryStyle, fmt.Sprintf("   stock %-28s %8g @ %.2f", ing.Name, ing.Quantity, ing.Price))
		}
	}
}

// Menu prints a dish listing.
func (p *Printer) Menu(dishes []domain.DishSummary) {
	if len(dishes) == 0 {
		p.line(secondaryStyle, "(no dishes)")
		return
	}
	for _, d := range dishes {
		p.line(primaryStyle, fmt.Sprintf("%-28s %-9s %3d min  %7.2f", d.Name, d.Cuisine, d.PrepTime, d.Price))
	}
}

// Outcome prints one operation result: a check or cross, the operation
// text, and an optional detail.
func (p *Printer) Outcome(ok bool, what, detail string) {
	mark, style := "✗", failStyle
	if ok {
		mark, style = "✓", okStyle
	}
	text := mark + " " + what
	if detail != "" {
		text += "  " + p.render(secondaryStyle, "("+detail+")")
	}
	p.line(style, text)
}

func (p *Printer) line(style lipgloss.Style, text string) {
	fmt.Fprintln(p.w, p.render(style, text))
}

func (p *Printer) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
