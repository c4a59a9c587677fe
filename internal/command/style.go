package command

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// palette colours the status lines. Ordering output is never styled.
type palette struct {
	ok, bad, dim lipgloss.Style
}

// styles returns the palette for w, plain when --no-color is set. Colour is
// only emitted when w is a terminal that supports it.
func (c *Config) styles(w io.Writer) palette {
	if c.NoColor {
		plain := lipgloss.NewStyle()
		return palette{ok: plain, bad: plain, dim: plain}
	}

	r := lipgloss.NewRenderer(w)

	return palette{
		ok:  r.NewStyle().Foreground(lipgloss.Color("82")),
		bad: r.NewStyle().Foreground(lipgloss.Color("160")),
		dim: r.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
