package render

import (
	"sync"

	"fyne.io/fyne/v2"
)

// SidebarLayout gives the second object a fixed width on the right and the
// remaining space to the first. A zero width hides the sidebar.
type SidebarLayout struct {
	Width float32
}

// NewSidebarLayout creates a new instance of SidebarLayout.
func NewSidebarLayout(width float32) *SidebarLayout {
	return &SidebarLayout{Width: width}
}

func (l *SidebarLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	width := min(l.Width, size.Width)

	objects[0].Resize(fyne.NewSize(size.Width-width, size.Height))
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(width, size.Height))
	objects[1].Move(fyne.NewPos(size.Width-width, 0))
	if width == 0 {
		objects[1].Hide()
	} else {
		objects[1].Show()
	}
}

func (l *SidebarLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) != 2 {
		return fyne.NewSize(0, 0)
	}
	side := objects[1].MinSize()
	if l.Width == 0 {
		side = fyne.NewSize(0, 0)
	}
	return fyne.NewSize(side.Width, side.Height)
}

// ClampLayout stacks its objects and reports every layout pass that is
// larger than the max size so the window can be shrunk back. A zero max
// dimension is unbounded.
type ClampLayout struct {
	OnOversize func(fyne.Size)

	mu  sync.Mutex
	max fyne.Size
}

// NewClampLayout returns an unbounded layout reporting to onOversize.
func NewClampLayout(onOversize func(fyne.Size)) *ClampLayout {
	return &ClampLayout{OnOversize: onOversize}
}

// SetMax changes the bound checked on the next layout pass.
func (l *ClampLayout) SetMax(size fyne.Size) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.max = size
}

// Max returns the current bound.
func (l *ClampLayout) Max() fyne.Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.max
}

func (l *ClampLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	if l.OnOversize == nil {
		return
	}
	bound := l.Max()
	over := (bound.Width > 0 && size.Width > bound.Width) ||
		(bound.Height > 0 && size.Height > bound.Height)
	if over {
		l.OnOversize(size)
	}
}

func (l *ClampLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, o := range objects {
		minSize = minSize.Max(o.MinSize())
	}
	return minSize
}
