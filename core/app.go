package core

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/primespiral/spiral/constant"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/primespiral/spiral/model"
	"github.com/primespiral/spiral/render"
	"github.com/primespiral/spiral/spiral"
	"github.com/primespiral/spiral/store"
	"github.com/sirupsen/logrus"
)

// newAppFunc is overridden in tests with the fyne test driver.
var newAppFunc = func() fyne.App { return app.NewWithID(constant.AppID) }

const (
	sidebarWidth  = 280
	frameInterval = time.Second / 60
	saveDelay     = 200 * time.Millisecond
	hintDuration  = 2 * time.Second
)

// App is the spiral viewer: one main window with the canvas and sidebar,
// plus a help window opened on demand.
type App struct {
	cfg         *model.Config
	shell       *Shell
	main        *HostWindow
	store       store.Store[store.Preferences]
	constraints *winsize.Manager

	scene    *spiral.Scene
	canvas   *render.SpiralCanvas
	sidebar  *render.SidebarLayout
	content  *fyne.Container
	controls *controls
	hint     *widget.Label

	fullscreenLimiter *spiral.RateLimiter
	inputLimiter      *spiral.RateLimiter

	mu        sync.Mutex
	prefs     store.Preferences
	sweep     *spiral.Sweep
	saveTimer *time.Timer
	help      *helpWindow

	stop     chan struct{}
	stopOnce sync.Once
}

// NewApp builds the main window. Preferences come from prefs, explicit
// config values override them for this session.
func NewApp(cfg *model.Config, prefs store.Store[store.Preferences], probe display.Prober) (*App, error) {
	fa := newAppFunc()
	fa.Settings().SetTheme(render.NewMainTheme())

	loaded, err := store.LoadPreferences(prefs)
	if err != nil {
		logrus.WithError(err).Warn("failed to load preferences, using defaults")
	}
	loaded.Spiral = applyOverrides(loaded.Spiral, cfg)

	a := &App{
		cfg:               cfg,
		shell:             NewShell(fa, probe),
		store:             prefs,
		constraints:       winsize.NewManager(),
		prefs:             loaded,
		fullscreenLimiter: spiral.NewRateLimiter(5, time.Second),
		inputLimiter:      spiral.NewRateLimiter(100, time.Second),
		stop:              make(chan struct{}),
	}
	a.initUI()

	fa.Lifecycle().SetOnStarted(a.Start)
	fa.Lifecycle().SetOnStopped(a.Stop)
	return a, nil
}

func applyOverrides(s spiral.Settings, cfg *model.Config) spiral.Settings {
	if cfg.MaxN > 0 {
		s.MaxN = cfg.MaxN
	}
	if cfg.Scale > 0 {
		s.Scale = cfg.Scale
	}
	if cfg.SpiralCoeff > 0 {
		s.Coeff = cfg.SpiralCoeff
	}
	if cfg.InstantRender {
		s.InstantRender = true
	}
	return s.Validate()
}

func (a *App) initUI() {
	a.main = a.shell.Wrap(a.shell.App().NewWindow(a.cfg.Title))
	a.main.SetMaster()

	width := max(int(a.cfg.Width)-sidebarWidth, 1)
	a.scene = spiral.NewScene(a.prefs.Spiral, width, int(a.cfg.Height), uint64(time.Now().UnixNano()))
	a.canvas = render.NewSpiralCanvas(a.scene)
	a.canvas.OnScrolled = a.zoom
	a.canvas.OnTapped = a.canvasTapped

	a.hint = widget.NewLabelWithStyle("Press Escape to leave fullscreen", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.hint.Hide()

	a.controls = newControls(a.prefs.Spiral, a.updateSettings,
		widget.NewButton("Fullscreen", func() { a.ToggleFullScreen() }),
		widget.NewButton("Hide sidebar", a.ToggleSidebar),
		widget.NewButton("Help", a.ShowHelp),
	)

	a.sidebar = render.NewSidebarLayout(sidebarWidth)
	a.content = container.New(a.sidebar,
		container.NewStack(a.canvas, container.NewVBox(a.hint)),
		a.controls.panel,
	)
	a.applySidebar()

	a.main.SetContent(a.content)
	a.main.Canvas().SetOnTypedKey(a.handleKey)
	a.main.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.ToggleSidebar() })
	a.main.Resize(fyne.NewSize(a.cfg.Width, a.cfg.Height))
	if a.cfg.Fullscreen {
		a.main.SetFullScreen(true)
		a.applySidebar()
	}
}

// Run shows the main window and blocks until the app quits.
func (a *App) Run() error {
	a.main.ShowAndRun()
	return nil
}

// Start constrains the main window, subscribes to new windows and starts
// the animation loop. It runs once the fyne app is up.
func (a *App) Start() {
	a.constraints.Install(a.main, a.shell)
	go a.loop()
}

// Stop ends the animation loop and flushes a pending preference save.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
		a.mu.Lock()
		pending := a.saveTimer != nil && a.saveTimer.Stop()
		a.saveTimer = nil
		a.mu.Unlock()
		if pending {
			a.save()
		}
	})
}

func (a *App) loop() {
	frame := time.NewTicker(frameInterval)
	defer frame.Stop()
	sweep := time.NewTicker(a.scene.Settings().Sweep.Interval)
	defer sweep.Stop()

	for {
		select {
		case <-a.stop:
			return
		case <-frame.C:
			fyne.Do(a.canvas.Animate)
		case <-sweep.C:
			sweep.Reset(a.sweepStep())
		}
	}
}

// sweepStep advances the coefficient animation when it is enabled and
// returns the interval until the next step.
func (a *App) sweepStep() time.Duration {
	s := a.scene.Settings()
	a.mu.Lock()
	if !s.Sweep.Enabled {
		a.sweep = nil
		a.mu.Unlock()
		return s.Sweep.Interval
	}
	if a.sweep == nil {
		a.sweep = spiral.NewSweep(s.Sweep)
	}
	a.sweep.Min, a.sweep.Max, a.sweep.Increment = s.Sweep.Min, s.Sweep.Max, s.Sweep.Increment
	next := a.sweep.Next(s.Coeff)
	a.mu.Unlock()

	updated := a.updateSettings(func(s *spiral.Settings) { s.Coeff = next })
	fyne.Do(func() { a.controls.sync(updated) })
	return updated.Sweep.Interval
}

// Settings returns the current spiral settings.
func (a *App) Settings() spiral.Settings {
	return a.scene.Settings()
}

// updateSettings applies fn, stores the result and schedules a save.
func (a *App) updateSettings(fn func(*spiral.Settings)) spiral.Settings {
	s := a.scene.Update(fn)
	a.mu.Lock()
	a.prefs.Spiral = s
	a.mu.Unlock()
	a.scheduleSave()
	return s
}

func (a *App) scheduleSave() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.saveTimer != nil {
		a.saveTimer.Stop()
	}
	a.saveTimer = time.AfterFunc(saveDelay, a.save)
}

func (a *App) save() {
	a.mu.Lock()
	prefs := a.prefs
	a.mu.Unlock()
	if err := a.store.Save(prefs); err != nil {
		logrus.WithError(err).Warn("failed to save preferences")
	}
}

func (a *App) zoom(deltaY float32) {
	if !a.inputLimiter.Allow() {
		return
	}
	a.updateSettings(func(s *spiral.Settings) {
		s.Scale = spiral.Zoom(s.Scale, float64(deltaY))
	})
}

// ToggleFullScreen flips fullscreen at most five times a second and
// reports whether the toggle happened.
func (a *App) ToggleFullScreen() bool {
	if !a.fullscreenLimiter.Allow() {
		return false
	}
	a.setFullScreen(!a.main.FullScreen())
	return true
}

func (a *App) setFullScreen(on bool) {
	a.main.SetFullScreen(on)
	if !on {
		a.hint.Hide()
	}
	a.applySidebar()
}

// ToggleSidebar collapses or restores the sidebar and remembers the choice.
func (a *App) ToggleSidebar() {
	a.mu.Lock()
	a.prefs.SidebarCollapsed = !a.prefs.SidebarCollapsed
	a.mu.Unlock()
	a.applySidebar()
	a.scheduleSave()
}

// applySidebar hides the sidebar when collapsed or in fullscreen.
func (a *App) applySidebar() {
	a.mu.Lock()
	collapsed := a.prefs.SidebarCollapsed
	a.mu.Unlock()

	width := float32(sidebarWidth)
	if collapsed || a.main.FullScreen() {
		width = 0
	}
	if a.sidebar.Width == width {
		return
	}
	a.sidebar.Width = width
	a.content.Refresh()
}

// canvasTapped reminds how to leave fullscreen, or brings a collapsed
// sidebar back.
func (a *App) canvasTapped() {
	if !a.main.FullScreen() {
		a.mu.Lock()
		collapsed := a.prefs.SidebarCollapsed
		a.mu.Unlock()
		if collapsed {
			a.ToggleSidebar()
		}
		return
	}
	a.hint.Show()
	time.AfterFunc(hintDuration, func() { fyne.Do(a.hint.Hide) })
}

func (a *App) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		if a.main.FullScreen() {
			a.setFullScreen(false)
		}
	case fyne.KeyF11:
		a.ToggleFullScreen()
	case fyne.KeyF1:
		a.ShowHelp()
	}
}

// ShowHelp opens the help window, or focuses it when already open.
func (a *App) ShowHelp() {
	a.mu.Lock()
	h := a.help
	a.mu.Unlock()
	if h != nil {
		h.win.RequestFocus()
		return
	}

	h = newHelpWindow(a.shell)
	h.win.SetOnClosed(func() {
		a.mu.Lock()
		a.help = nil
		a.mu.Unlock()
	})
	a.mu.Lock()
	a.help = h
	a.mu.Unlock()
	h.win.Show()
}
