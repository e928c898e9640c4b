package render

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/primespiral/spiral/spiral"
)

// SpiralCanvas draws a spiral.Scene and turns scrolling into zoom requests.
type SpiralCanvas struct {
	widget.BaseWidget

	Scene *spiral.Scene
	// OnScrolled receives the vertical scroll delta, positive toward the user.
	OnScrolled func(deltaY float32)
	// OnTapped is called on a primary click anywhere on the canvas.
	OnTapped func()

	raster *canvas.Raster
}

// NewSpiralCanvas returns a canvas bound to scene.
func NewSpiralCanvas(scene *spiral.Scene) *SpiralCanvas {
	c := &SpiralCanvas{Scene: scene}
	c.raster = canvas.NewRaster(c.generate)
	c.ExtendBaseWidget(c)
	return c
}

func (c *SpiralCanvas) generate(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	c.Scene.Resize(w, h)
	return c.Scene.Frame()
}

// Scrolled implements fyne.Scrollable.
func (c *SpiralCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if c.OnScrolled != nil && ev.Scrolled.DY != 0 {
		// fyne reports wheel-up as positive DY; browsers use the opposite sign.
		c.OnScrolled(-ev.Scrolled.DY)
	}
}

// Tapped implements fyne.Tappable.
func (c *SpiralCanvas) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

func (c *SpiralCanvas) MinSize() fyne.Size {
	c.ExtendBaseWidget(c)
	return fyne.NewSize(200, 200)
}

// CreateRenderer implements fyne.Widget.
func (c *SpiralCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

// Animate advances the scene one frame and redraws.
func (c *SpiralCanvas) Animate() {
	c.Scene.Step()
	c.raster.Refresh()
}
