package render

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/primespiral/spiral/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidebarLayout(t *testing.T) {
	main := canvas.NewRectangle(nil)
	side := canvas.NewRectangle(nil)
	l := NewSidebarLayout(250)

	l.Layout([]fyne.CanvasObject{main, side}, fyne.NewSize(1000, 600))
	assert.Equal(t, fyne.NewSize(750, 600), main.Size())
	assert.Equal(t, fyne.NewSize(250, 600), side.Size())
	assert.Equal(t, fyne.NewPos(750, 0), side.Position())
	assert.True(t, side.Visible())

	l.Width = 0
	l.Layout([]fyne.CanvasObject{main, side}, fyne.NewSize(1000, 600))
	assert.Equal(t, fyne.NewSize(1000, 600), main.Size())
	assert.False(t, side.Visible())
}

func TestClampLayoutReportsOversize(t *testing.T) {
	var reported []fyne.Size
	l := NewClampLayout(func(s fyne.Size) { reported = append(reported, s) })
	l.SetMax(fyne.NewSize(800, 600))
	obj := canvas.NewRectangle(nil)

	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(700, 500))
	assert.Empty(t, reported)
	assert.Equal(t, fyne.NewSize(700, 500), obj.Size())

	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(900, 500))
	l.Layout([]fyne.CanvasObject{obj}, fyne.NewSize(700, 650))
	require.Len(t, reported, 2)
	assert.Equal(t, fyne.NewSize(900, 500), reported[0])
}

func TestClampLayoutUnbounded(t *testing.T) {
	called := false
	l := NewClampLayout(func(fyne.Size) { called = true })
	l.Layout([]fyne.CanvasObject{canvas.NewRectangle(nil)}, fyne.NewSize(5000, 5000))
	assert.False(t, called)
}

func TestSpiralCanvasScrollAndTap(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	scene := spiral.NewScene(spiral.DefaultSettings(), 100, 100, 1)
	c := NewSpiralCanvas(scene)

	var delta float32
	c.OnScrolled = func(d float32) { delta = d }
	c.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.NewDelta(0, 3)})
	assert.Equal(t, float32(-3), delta)

	tapped := false
	c.OnTapped = func() { tapped = true }
	test.Tap(c)
	assert.True(t, tapped)
}

func TestSpiralCanvasGenerate(t *testing.T) {
	scene := spiral.NewScene(spiral.DefaultSettings(), 100, 100, 1)
	c := NewSpiralCanvas(scene)

	img := c.generate(320, 240)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
	assert.Equal(t, 1, c.generate(0, 0).Bounds().Dx())
}

func TestMainTheme(t *testing.T) {
	th := NewMainTheme()
	assert.Equal(t, float32(14), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
	assert.NotNil(t, th.Color(theme.ColorNameError, theme.VariantLight))
}
