package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

func resolve(t *testing.T, s *markup.Stack, base *style.Style) *style.Style {
	t.Helper()
	got, ok := s.Resolve(base)
	require.True(t, ok, "stack should not be empty")
	return got
}

func TestStackEmpty(t *testing.T) {
	s := markup.NewStack()
	got, ok := s.Resolve(style.New())
	assert.False(t, ok)
	assert.Nil(t, got)

	s.Clear()
	_, ok = s.Resolve(style.New())
	assert.False(t, ok)
}

func TestStackClear(t *testing.T) {
	s := markup.NewStack()
	base := style.New()

	s.Toggle(markup.New("bu", style.New().SetBold(true).SetUnderline(true)))
	s.Toggle(markup.New("limewhite", style.New().SetColors(color.Named("lime"), color.Named("white"))))

	got := resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, style.On, got.Underline())
	assert.Equal(t, "lime", got.TextColor().Name())
	assert.Equal(t, "white", got.FillColor().Name())
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Resolve(base)
	assert.False(t, ok)
}

func TestStackPancaking(t *testing.T) {
	s := markup.NewStack()
	base := style.New()

	s.Toggle(markup.New("!bold!", style.New().SetBold(true)))
	got := resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, style.Unset, got.Underline())
	assert.False(t, got.HasTextColor())

	s.Toggle(markup.New("!red!", style.New().SetTextColor(color.Named("red"))))
	got = resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, "red", got.TextColor().Name())
	assert.False(t, got.HasFillColor())

	s.Toggle(markup.New("!greenblack!", style.New().SetColors(color.Named("green"), color.Named("black")).SetBold(false)))
	got = resolve(t, s, base)
	assert.Equal(t, style.Off, got.Bold())
	assert.Equal(t, style.Unset, got.Underline())
	assert.Equal(t, "green", got.TextColor().Name())
	assert.Equal(t, "black", got.FillColor().Name())
}

func TestStackToggle(t *testing.T) {
	s := markup.NewStack()
	base := style.New()
	underBlack := markup.New("under", style.New().SetUnderline(true).SetFillColor(color.Named("black")))

	assert.True(t, s.Toggle(underBlack))
	got := resolve(t, s, base)
	assert.Equal(t, style.Unset, got.Bold())
	assert.Equal(t, style.On, got.Underline())
	assert.Equal(t, "black", got.FillColor().Name())

	assert.False(t, s.Toggle(underBlack))
	_, ok := s.Resolve(base)
	assert.False(t, ok)

	s.Toggle(underBlack)
	bold := markup.New("bold", style.New().SetUnderline(false).SetBold(true))
	s.Toggle(bold)
	got = resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, style.Off, got.Underline())
	assert.Equal(t, "black", got.FillColor().Name())

	s.Toggle(underBlack)
	got = resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, style.Off, got.Underline())
	assert.False(t, got.HasFillColor())
	assert.True(t, s.IsOpen("bold"))
	assert.False(t, s.IsOpen("under"))

	s.Toggle(bold)
	_, ok = s.Resolve(base)
	assert.False(t, ok)
}

func TestStackToggleSymmetry(t *testing.T) {
	s := markup.NewStack()
	base := style.New().SetTextColor(color.Named("white"))
	s.Toggle(markup.New("a", style.New().SetBold(true)))
	s.Toggle(markup.New("b", style.New().SetFillColor(color.Named("navy"))))
	before := resolve(t, s, base)

	red := markup.New("c", style.New().SetTextColor(color.Named("red")).SetBold(false))
	s.Toggle(red)
	s.Toggle(red)

	assert.True(t, before.Equal(resolve(t, s, base)))
	assert.Equal(t, 2, s.Len())
}

func TestStackOverBase(t *testing.T) {
	base := style.New().SetBold(true).SetUnderline(true).SetColors(color.Named("black"), color.Named("white"))
	s := markup.NewStack()

	s.Toggle(markup.New("greenUnderline", style.New().SetUnderline(true).SetTextColor(color.Named("green"))))
	s.Toggle(markup.New("boldOff", style.New().SetBold(false)))
	got := resolve(t, s, base)
	assert.Equal(t, style.Off, got.Bold())
	assert.Equal(t, style.On, got.Underline())
	assert.Equal(t, "green", got.TextColor().Name())
	assert.Equal(t, "white", got.FillColor().Name())

	s.Toggle(markup.New("orangeFill", style.New().SetFillColor(color.Named("orange")).SetUnderline(false)))
	got = resolve(t, s, base)
	assert.Equal(t, style.Off, got.Underline())
	assert.Equal(t, "orange", got.FillColor().Name())

	// base is never modified
	assert.Equal(t, style.On, base.Bold())
	assert.Equal(t, "white", base.FillColor().Name())
}

func TestStackAnonymous(t *testing.T) {
	s := markup.NewStack()
	base := style.New()

	s.Toggle(markup.New("**", style.New().SetBold(true)))
	overlay := style.New().SetBold(false).SetTextColor(color.Named("red"))
	token := s.AddAnonymous(overlay)
	overlay.SetTextColor(color.Named("blue"))

	got := resolve(t, s, base)
	assert.Equal(t, style.Off, got.Bold())
	assert.Equal(t, "red", got.TextColor().Name(), "the stack keeps its own copy")

	// a symbol toggle never closes an anonymous scope
	s.Toggle(markup.New("", style.New()))
	assert.Equal(t, 3, s.Len())
	s.Toggle(markup.New("", style.New()))

	second := s.AddAnonymous(style.New().SetUnderline(true))
	assert.NotEqual(t, token, second)

	assert.True(t, s.Remove(token))
	assert.False(t, s.Remove(token))
	assert.False(t, s.Remove(0))

	got = resolve(t, s, base)
	assert.Equal(t, style.On, got.Bold())
	assert.Equal(t, style.On, got.Underline())
	assert.False(t, got.HasTextColor())
}
