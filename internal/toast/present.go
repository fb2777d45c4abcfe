package toast

import "github.com/charmbracelet/lipgloss"

// Built-in background colors.
var (
	DefaultNormalColor  = lipgloss.Color("#333333")
	DefaultSuccessColor = lipgloss.Color("#2E7D32")
	DefaultDangerColor  = lipgloss.Color("#D32F2F")
	DefaultWarningColor = lipgloss.Color("#ED6C02")
)

// Strategy is how a toast is rendered.
type Strategy int

const (
	StrategyDefault Strategy = iota
	StrategyCustom
	StrategyType
)

func (s Strategy) String() string {
	switch s {
	case StrategyType:
		return "type"
	case StrategyCustom:
		return "custom"
	default:
		return "default"
	}
}

// Presentation is the resolved visual of a toast.
type Presentation struct {
	Icon      string
	HasIcon   bool
	Color     lipgloss.Color
	Strategy  Strategy
	Render    RenderFunc
	Pressable bool
}

// Present resolves the presentation of p. It is pure and must be called again
// whenever the props change.
func Present(p Props) Presentation {
	icon, ok := ResolveIcon(p.Options)
	strategy, render := ResolveStrategy(p)
	return Presentation{
		Icon:      icon,
		HasIcon:   ok,
		Color:     ResolveColor(p.Options),
		Strategy:  strategy,
		Render:    render,
		Pressable: p.OnPress != nil,
	}
}

// ResolveIcon returns the explicit icon, else the per-type icon when one was supplied.
// Normal and custom types have no per-type icon.
func ResolveIcon(o Options) (string, bool) {
	if o.Icon != "" {
		return o.Icon, true
	}

	var icon string
	switch o.Type.Kind() {
	case KindSuccess:
		icon = o.SuccessIcon
	case KindDanger:
		icon = o.DangerIcon
	case KindWarning:
		icon = o.WarningIcon
	case KindNormal, KindCustom:
	}
	return icon, icon != ""
}

// ResolveColor returns the per-type override color, else the built-in default.
// Custom types resolve like normal.
func ResolveColor(o Options) lipgloss.Color {
	pick := func(override, def lipgloss.Color) lipgloss.Color {
		if override != "" {
			return override
		}
		return def
	}

	switch o.Type.Kind() {
	case KindSuccess:
		return pick(o.SuccessColor, DefaultSuccessColor)
	case KindDanger:
		return pick(o.DangerColor, DefaultDangerColor)
	case KindWarning:
		return pick(o.WarningColor, DefaultWarningColor)
	case KindNormal, KindCustom:
		return pick(o.NormalColor, DefaultNormalColor)
	}
	return DefaultNormalColor
}

// ResolveStrategy picks, in order, the renderer registered for the exact type
// tag, the whole-toast renderer, then the default layout (nil RenderFunc).
func ResolveStrategy(p Props) (Strategy, RenderFunc) {
	if r, ok := p.RenderType[p.Type.String()]; ok && r != nil {
		return StrategyType, r
	}
	if p.RenderToast != nil {
		return StrategyCustom, p.RenderToast
	}
	return StrategyDefault, nil
}
