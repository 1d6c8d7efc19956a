package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/klabast/dono/internal/calendar"
)

const (
	monthsPerHeader = 12
	monthSeparator  = "     "
	legendLess      = "Less "
	legendMore      = "More"
)

// Renderer turns a calendar into styled lines for one output stream
type Renderer struct {
	out io.Writer
	lg  *lipgloss.Renderer
}

// NewRenderer creates a Renderer that detects the color profile of out
func NewRenderer(out io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: out, lg: lipgloss.NewRenderer(out, opts...)}
}

// NewRendererWithProfile creates a Renderer with a fixed color profile
func NewRendererWithProfile(out io.Writer, profile termenv.Profile) *Renderer {
	r := NewRenderer(out)
	r.lg.SetColorProfile(profile)
	return r
}

// Render returns the output lines for cal: total, month header, seven
// weekday rows and the legend.
func (r *Renderer) Render(cal calendar.Calendar, opts Options) ([]string, error) {
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render calendar: %w", err)
	}

	grid, err := NewGrid(cal, opts.WeekStart)
	if err != nil {
		return nil, err
	}

	first, _ := cal.First()
	last, _ := cal.Last()
	layout := newLayout(grid, opts)

	lines := make([]string, 0, 3+1+DaysPerWeek+1)
	lines = append(lines, "", r.totalLine(cal.Total()), "")
	lines = append(lines, monthHeader(first.Date.Month(), last.Date.Month(), layout))
	lines = append(lines, r.rows(grid, opts, layout)...)
	lines = append(lines, r.legendLine(BuildLegend(cal, opts), opts, layout))
	return lines, nil
}

// Write renders cal and writes the lines to the output stream.
// Nothing is written if rendering fails.
func (r *Renderer) Write(cal calendar.Calendar, opts Options) error {
	lines, err := r.Render(cal, opts)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err = io.WriteString(r.out, b.String())
	return err
}

// layout holds the widths shared by the header, the rows and the legend
type layout struct {
	columns    int
	labelWidth int
	cellWidth  int
}

func newLayout(grid *Grid, opts Options) layout {
	glyphWidth := max(lipgloss.Width(opts.Fill), lipgloss.Width(opts.Empty), 1)
	return layout{
		columns:    grid.Columns(),
		labelWidth: len("Sun "),
		cellWidth:  glyphWidth + 1,
	}
}

// gridWidth is the printed width of a full row without its trailing space
func (l layout) gridWidth() int {
	return l.labelWidth + l.columns*l.cellWidth - 1
}

func (r *Renderer) totalLine(total int) string {
	bold := r.lg.NewStyle().Bold(true)
	return "Total of " + bold.Render(strconv.Itoa(total)) + " contributions in the last year"
}

// monthHeader names twelve months starting at the first day's month and ends
// with the month of the last day.
func monthHeader(first, last time.Month, l layout) string {
	months := make([]string, monthsPerHeader)
	for i := range months {
		months[i] = calendar.ShortMonth(time.Month((int(first)-1+i)%monthsPerHeader + 1))
	}
	return strings.Repeat(" ", l.labelWidth) + strings.Join(months, monthSeparator) + monthSeparator + calendar.ShortMonth(last)
}

func (r *Renderer) rows(grid *Grid, opts Options, l layout) []string {
	blank := strings.Repeat(" ", l.cellWidth)
	styles := make(map[string]lipgloss.Style)

	rows := make([]string, 0, DaysPerWeek)
	for row, label := range grid.Labels() {
		var b strings.Builder
		b.WriteString(label)
		b.WriteByte(' ')

		for col := 0; col < l.columns; col++ {
			day, ok := grid.Cell(row, col)
			if !ok {
				if grid.Index(row, col) < 0 {
					b.WriteString(blank)
					continue
				}
				break
			}

			c := Resolve(day, opts)
			style, ok := styles[c.Hex]
			if !ok {
				style = r.colorStyle(c)
				styles[c.Hex] = style
			}
			b.WriteString(style.Render(glyph(day, opts)))
			b.WriteByte(' ')
		}
		rows = append(rows, b.String())
	}
	return rows
}

// legendLine right-aligns "Less <colors> More" with the grid
func (r *Renderer) legendLine(colors []calendar.Color, opts Options, l layout) string {
	fillWidth := max(lipgloss.Width(opts.Fill), 1)
	width := len(legendLess) + len(colors)*(fillWidth+1) + len(legendMore)
	pad := max(l.gridWidth()-width, 0)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(legendLess)
	for _, c := range colors {
		b.WriteString(r.colorStyle(c).Render(opts.Fill))
		b.WriteByte(' ')
	}
	b.WriteString(legendMore)
	return b.String()
}

func (r *Renderer) colorStyle(c calendar.Color) lipgloss.Style {
	return r.lg.NewStyle().Foreground(lipgloss.Color(c.Hex))
}
