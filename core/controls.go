package core

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/primespiral/spiral/spiral"
)

// controls is the sidebar. Every widget writes through onChange and is
// re-synced from the returned settings, so repaired values show up in the UI.
type controls struct {
	onChange func(func(*spiral.Settings)) spiral.Settings

	syncing  bool
	syncers  []func(spiral.Settings)
	checks   map[string]*widget.Check
	sliders  map[string]*widget.Slider
	sweepBox *fyne.Container
	panel    fyne.CanvasObject
}

func newControls(initial spiral.Settings, onChange func(func(*spiral.Settings)) spiral.Settings, actions ...fyne.CanvasObject) *controls {
	c := &controls{
		onChange: onChange,
		checks:   map[string]*widget.Check{},
		sliders:  map[string]*widget.Slider{},
	}

	c.sweepBox = container.NewVBox(
		c.slider("Sweep interval (ms)", 100, 500, 10, "%.0f",
			func(s spiral.Settings) float64 { return float64(s.Sweep.Interval.Milliseconds()) },
			func(s *spiral.Settings, v float64) { s.Sweep.Interval = time.Duration(v) * time.Millisecond }),
		c.slider("Sweep increment", 0.01, 2, 0.01, "%.2f",
			func(s spiral.Settings) float64 { return s.Sweep.Increment },
			func(s *spiral.Settings, v float64) { s.Sweep.Increment = v }),
		c.slider("Sweep min", 0.1, 100, 0.1, "%.1f",
			func(s spiral.Settings) float64 { return s.Sweep.Min },
			func(s *spiral.Settings, v float64) { s.Sweep.Min = v }),
		c.slider("Sweep max", 10, 1000, 1, "%.0f",
			func(s spiral.Settings) float64 { return s.Sweep.Max },
			func(s *spiral.Settings, v float64) { s.Sweep.Max = v }),
	)

	box := container.NewVBox(
		widget.NewLabelWithStyle("Spiral", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		c.check("Focus prime numbers",
			func(s spiral.Settings) bool { return s.ShowPrimes },
			func(s *spiral.Settings, on bool) { s.ShowPrimes = on }),
		c.check("Animate clusters",
			func(s spiral.Settings) bool { return s.ShowClusters },
			func(s *spiral.Settings, on bool) { s.ShowClusters = on }),
		c.check("Rotate",
			func(s spiral.Settings) bool { return s.ShowRotation },
			func(s *spiral.Settings, on bool) { s.ShowRotation = on }),
		c.check("Squares",
			func(s spiral.Settings) bool { return s.UseSquares },
			func(s *spiral.Settings, on bool) { s.UseSquares = on }),
		c.check("Instant render",
			func(s spiral.Settings) bool { return s.InstantRender },
			func(s *spiral.Settings, on bool) { s.InstantRender = on }),
		widget.NewSeparator(),
		c.slider("Spiral coefficient", 1, 500, 0.01, "%.2f",
			func(s spiral.Settings) float64 { return s.Coeff },
			func(s *spiral.Settings, v float64) { s.Coeff = v }),
		c.slider("Points", 1000, 200000, 1000, "%.0f",
			func(s spiral.Settings) float64 { return float64(s.MaxN) },
			func(s *spiral.Settings, v float64) { s.MaxN = int(v) }),
		c.slider("Clusters", 0, spiral.MaxClusters, 1, "%.0f",
			func(s spiral.Settings) float64 { return float64(s.ClusterCount) },
			func(s *spiral.Settings, v float64) { s.ClusterCount = int(v) }),
		c.slider("Rotation speed", 0.1, 5, 0.1, "%.1f",
			func(s spiral.Settings) float64 { return s.RotationSpeed },
			func(s *spiral.Settings, v float64) { s.RotationSpeed = v }),
		c.slider("Dot size", 0.1, 10, 0.1, "%.1f",
			func(s spiral.Settings) float64 { return s.DotSize },
			func(s *spiral.Settings, v float64) { s.DotSize = v }),
		c.slider("Prime size", 0.5, 20, 0.5, "%.1f",
			func(s spiral.Settings) float64 { return s.PrimeSize },
			func(s *spiral.Settings, v float64) { s.PrimeSize = v }),
		widget.NewSeparator(),
		c.check("Animate coefficient",
			func(s spiral.Settings) bool { return s.Sweep.Enabled },
			func(s *spiral.Settings, on bool) { s.Sweep.Enabled = on }),
		c.sweepBox,
		widget.NewSeparator(),
	)
	for _, a := range actions {
		box.Add(a)
	}
	c.panel = container.NewVScroll(box)
	c.sync(initial)
	return c
}

// sync shows s in every widget without feeding the values back.
func (c *controls) sync(s spiral.Settings) {
	c.syncing = true
	defer func() { c.syncing = false }()
	for _, fn := range c.syncers {
		fn(s)
	}
	if s.Sweep.Enabled {
		c.sweepBox.Show()
	} else {
		c.sweepBox.Hide()
	}
}

func (c *controls) check(label string, get func(spiral.Settings) bool, set func(*spiral.Settings, bool)) *widget.Check {
	chk := widget.NewCheck(label, nil)
	chk.OnChanged = func(on bool) {
		if c.syncing {
			return
		}
		c.sync(c.onChange(func(s *spiral.Settings) { set(s, on) }))
	}
	c.checks[label] = chk
	c.syncers = append(c.syncers, func(s spiral.Settings) { chk.SetChecked(get(s)) })
	return chk
}

func (c *controls) slider(label string, lo, hi, step float64, format string, get func(spiral.Settings) float64, set func(*spiral.Settings, float64)) fyne.CanvasObject {
	value := widget.NewLabel("")
	sl := widget.NewSlider(lo, hi)
	sl.Step = step
	sl.OnChanged = func(v float64) {
		value.SetText(fmt.Sprintf(format, v))
		if c.syncing {
			return
		}
		c.onChange(func(s *spiral.Settings) { set(s, v) })
	}
	c.sliders[label] = sl
	c.syncers = append(c.syncers, func(s spiral.Settings) {
		v := get(s)
		sl.SetValue(v)
		value.SetText(fmt.Sprintf(format, v))
	})
	return container.NewVBox(container.NewBorder(nil, nil, widget.NewLabel(label), value), sl)
}
