package toast

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []Type{TypeNormal, TypeSuccess, TypeDanger, TypeWarning, ParseType("promo")}

func withPerTypeIcons(o Options) Options {
	o.SuccessIcon = "S"
	o.DangerIcon = "D"
	o.WarningIcon = "W"
	return o
}

func TestParseType(t *testing.T) {
	tests := map[string]struct {
		tag     string
		expKind Kind
		expTag  string
	}{
		"Empty is normal.":          {tag: "", expKind: KindNormal, expTag: "normal"},
		"Normal is normal.":         {tag: "normal", expKind: KindNormal, expTag: "normal"},
		"Success is built-in.":      {tag: "success", expKind: KindSuccess, expTag: "success"},
		"Danger is built-in.":       {tag: "danger", expKind: KindDanger, expTag: "danger"},
		"Warning is built-in.":      {tag: "warning", expKind: KindWarning, expTag: "warning"},
		"Anything else is custom.":  {tag: "promo", expKind: KindCustom, expTag: "promo"},
		"Tags are case sensitive.":  {tag: "Success", expKind: KindCustom, expTag: "Success"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseType(test.tag)
			assert.Equal(t, test.expKind, got.Kind())
			assert.Equal(t, test.expTag, got.String())
		})
	}

	assert.Equal(t, "normal", Type{}.String())
}

func TestResolveIconExplicitWins(t *testing.T) {
	for _, typ := range allTypes {
		o := withPerTypeIcons(Options{Type: typ, Icon: "X"})
		icon, ok := ResolveIcon(o)
		assert.True(t, ok, typ.String())
		assert.Equal(t, "X", icon, typ.String())
	}
}

func TestResolveIconPerType(t *testing.T) {
	tests := map[string]struct {
		opts    Options
		expIcon string
		expOK   bool
	}{
		"Success uses the success icon.": {
			opts:    Options{Type: TypeSuccess, SuccessIcon: "✓"},
			expIcon: "✓",
			expOK:   true,
		},
		"Danger uses the danger icon.": {
			opts:    withPerTypeIcons(Options{Type: TypeDanger}),
			expIcon: "D",
			expOK:   true,
		},
		"Warning uses the warning icon.": {
			opts:    withPerTypeIcons(Options{Type: TypeWarning}),
			expIcon: "W",
			expOK:   true,
		},
		"Success without a success icon has none.": {
			opts: Options{Type: TypeSuccess, DangerIcon: "D"},
		},
		"Normal has no default icon.": {
			opts: withPerTypeIcons(Options{Type: TypeNormal}),
		},
		"Custom types have no default icon.": {
			opts: withPerTypeIcons(Options{Type: ParseType("promo")}),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			icon, ok := ResolveIcon(test.opts)
			assert.Equal(t, test.expOK, ok)
			assert.Equal(t, test.expIcon, icon)
		})
	}
}

func TestResolveColor(t *testing.T) {
	overrides := Options{
		NormalColor:  "#000001",
		SuccessColor: "#000002",
		DangerColor:  "#000003",
		WarningColor: "#000004",
	}

	tests := map[string]struct {
		typ         Type
		expDefault  lipgloss.Color
		expOverride lipgloss.Color
	}{
		"Normal.":  {typ: TypeNormal, expDefault: DefaultNormalColor, expOverride: "#000001"},
		"Success.": {typ: TypeSuccess, expDefault: DefaultSuccessColor, expOverride: "#000002"},
		"Danger.":  {typ: TypeDanger, expDefault: DefaultDangerColor, expOverride: "#000003"},
		"Warning.": {typ: TypeWarning, expDefault: DefaultWarningColor, expOverride: "#000004"},
		"Unknown types resolve like normal.": {
			typ: ParseType("promo"), expDefault: DefaultNormalColor, expOverride: "#000001",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expDefault, ResolveColor(Options{Type: test.typ}))

			o := overrides
			o.Type = test.typ
			assert.Equal(t, test.expOverride, ResolveColor(o))
		})
	}
}

func TestResolveStrategyPrecedence(t *testing.T) {
	byType := func(*Toast) string { return "by-type" }
	whole := func(*Toast) string { return "whole" }

	tests := map[string]struct {
		props       Props
		expStrategy Strategy
		expView     string
	}{
		"The type renderer wins over everything.": {
			props: Props{
				Options:     Options{Type: TypeSuccess},
				RenderToast: whole,
				RenderType:  map[string]RenderFunc{"success": byType},
			},
			expStrategy: StrategyType,
			expView:     "by-type",
		},
		"A renderer for another type is ignored.": {
			props: Props{
				Options:     Options{Type: TypeDanger},
				RenderToast: whole,
				RenderType:  map[string]RenderFunc{"success": byType},
			},
			expStrategy: StrategyCustom,
			expView:     "whole",
		},
		"Custom tags key their renderer.": {
			props: Props{
				Options:    Options{Type: ParseType("promo")},
				RenderType: map[string]RenderFunc{"promo": byType},
			},
			expStrategy: StrategyType,
			expView:     "by-type",
		},
		"Without renderers the default layout is used.": {
			props:       Props{Options: Options{Type: TypeWarning}, Message: "careful"},
			expStrategy: StrategyDefault,
			expView:     "careful",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			strategy, _ := ResolveStrategy(test.props)
			assert.Equal(t, test.expStrategy, strategy)

			test.props.Duration = 0
			test.props.AnimationDuration = 0
			tst := New(test.props, Env{})
			tst.Init()
			tst.progressVal = 1

			view := ansi.Strip(tst.View())
			assert.Contains(t, view, test.expView)
			if test.expStrategy != StrategyDefault {
				assert.Equal(t, test.expView, view)
			}
		})
	}
}

func TestPresentPressable(t *testing.T) {
	assert.False(t, Present(Props{}).Pressable)
	assert.True(t, Present(Props{Options: Options{OnPress: func(string) tea.Cmd { return nil }}}).Pressable)
}

func TestDefaultLayoutShowsPerTypeIcon(t *testing.T) {
	tst := New(Props{
		Options: Options{Type: TypeSuccess, SuccessIcon: "✓", Duration: 0},
		Message: "Saved",
	}, Env{})
	tst.Init()
	tst.progressVal = 1

	pres := tst.Presentation()
	require.True(t, pres.HasIcon)
	assert.Equal(t, "✓", pres.Icon)

	view := strings.TrimSpace(ansi.Strip(tst.View()))
	assert.Equal(t, "✓ Saved", view)
}

func TestViewHiddenWhileTransparent(t *testing.T) {
	tst := New(Props{Options: Options{AnimationDuration: time.Second}, Message: "hi"}, Env{})
	assert.Empty(t, tst.View(), "not mounted")

	tst.Init()
	assert.Empty(t, tst.View(), "progress 0 is fully transparent")

	tst.progressVal = 0.5
	assert.Contains(t, ansi.Strip(tst.View()), "hi")
}

func TestZoomKeepsWidth(t *testing.T) {
	content := "0123456789"
	got := zoom(content, 0.8)

	assert.Equal(t, len(content), ansi.StringWidth(got))
	assert.Equal(t, " 12345678 ", got)
	assert.Equal(t, content, zoom(content, 1))
}

func TestFade(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffffff"), fade("#ffffff", "#000000", 1))
	assert.Equal(t, lipgloss.Color("#000000"), fade("#ffffff", "#000000", 0))
	assert.Equal(t, lipgloss.Color("red"), fade("red", "#000000", 0.5))
}
