package toast

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// EntranceOffset is the vertical distance, in points, a sliding toast enters from.
	EntranceOffset = 20.0
	// ZoomFrom is the scale a zooming toast enters from.
	ZoomFrom = 0.7

	maxWidthFraction = 0.85
	hiddenOpacity    = 0.05
)

var defaultTextColor = lipgloss.Color("#FFFFFF")

// Transform composes the lifecycle transform with the drag offset.
func (t *Toast) Transform() Transform {
	p := math.Max(0, math.Min(1, t.progressVal))
	tr := Transform{Opacity: p, Scale: 1}

	switch t.props.AnimationType {
	case AnimationZoomIn:
		tr.Scale = ZoomFrom + (1-ZoomFrom)*p
	case AnimationSlideIn:
		dir := 1.0
		if t.props.Placement == PlacementTop {
			dir = -1
		}
		tr.Offset.Y = dir * EntranceOffset * (1 - p)
	}

	tr.Offset = tr.Offset.Add(t.drag)
	return tr
}

// View renders the toast with its current transform applied, except for the
// offset which the host applies when placing it. A closed, unmounted or fully
// transparent toast renders nothing.
func (t *Toast) View() string {
	if t.disposed || t.closed || !t.mounted {
		return ""
	}
	tr := t.Transform()
	if tr.Opacity <= hiddenOpacity {
		return ""
	}

	pres := t.Presentation()
	var content string
	switch pres.Strategy {
	case StrategyType, StrategyCustom:
		content = pres.Render(t)
	default:
		content = t.renderDefault(pres, tr.Opacity)
	}
	return zoom(content, tr.Scale)
}

// renderDefault is the icon + message layout on the type's background color.
func (t *Toast) renderDefault(pres Presentation, opacity float64) string {
	bg := fade(pres.Color, t.env.Backdrop, opacity)
	fg := fade(defaultTextColor, t.env.Backdrop, opacity)

	cell := lipgloss.NewStyle().Foreground(fg).Background(bg)
	text := t.props.TextStyle.Inherit(cell).Render(t.props.Message)
	if pres.HasIcon {
		text = lipgloss.JoinHorizontal(lipgloss.Top, cell.Render(pres.Icon), cell.Render(" "), text)
	}

	box := t.props.Style.Inherit(cell)
	if box.GetHorizontalPadding() == 0 && box.GetVerticalPadding() == 0 {
		box = box.Padding(0, 2)
	}
	maxWidth := int(float64(t.env.Viewport().Cols) * maxWidthFraction)
	if maxWidth > 0 && lipgloss.Width(text)+box.GetHorizontalFrameSize() > maxWidth {
		box = box.Width(maxWidth)
	}
	return box.Render(text)
}

// fade blends c into backdrop so that opacity 1 is c and 0 is the backdrop.
// Colors that are not hex are returned unchanged.
func fade(c, backdrop lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	fc, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bc, err := colorful.Hex(string(backdrop))
	if err != nil {
		return c
	}
	return lipgloss.Color(bc.BlendRgb(fc, opacity).Hex())
}

// zoom narrows content symmetrically around its center, keeping its width.
func zoom(content string, scale float64) string {
	if scale >= 1 || content == "" {
		return content
	}
	w := lipgloss.Width(content)
	crop := int(math.Round(float64(w) * (1 - scale) / 2))
	if crop <= 0 {
		return content
	}
	if 2*crop >= w {
		crop = w / 2
	}

	pad := strings.Repeat(" ", crop)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lw := ansi.StringWidth(line)
		lines[i] = pad + ansi.Cut(line, crop, max(crop, lw-crop)) + pad
	}
	return strings.Join(lines, "\n")
}
