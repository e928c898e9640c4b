package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/primespiral/spiral/core"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/primespiral/spiral/model"
	"github.com/primespiral/spiral/render"
)

const usage = `Usage: go run ./cmd/visual-test <test-type>
Available tests:
  windows   - open windows of several sizes and show the limit each got
  oversize  - open one window far larger than the screen`

// probeSizes are the initial sizes of the windows the "windows" test opens.
var probeSizes = []fyne.Size{
	fyne.NewSize(640, 480),
	fyne.NewSize(1600, 1000),
	fyne.NewSize(4000, 600),
}

func main() {
	code, cause := model.ExitCodeFromError(run(os.Args))
	if code != model.NoError {
		if cause != nil {
			fmt.Fprintln(os.Stderr, cause)
		}
		os.Exit(int(code))
	}
}

func run(args []string) error {
	if len(args) < 2 {
		fmt.Println(usage)
		return model.NewExitError(model.UnknownError, nil)
	}

	var sizes []fyne.Size
	switch args[1] {
	case "windows":
		sizes = probeSizes
	case "oversize":
		sizes = []fyne.Size{fyne.NewSize(10000, 10000)}
	default:
		fmt.Printf("Unknown test type: %s\n", args[1])
		return model.NewExitError(model.UnknownError, nil)
	}

	fa := app.New()
	fa.Settings().SetTheme(render.NewMainTheme())
	shell := core.NewShell(fa, display.Primary)
	winsize.NewManager().Install(nil, shell)

	for i, size := range sizes {
		openProbeWindow(shell, i, size)
	}
	fa.Run()
	return nil
}

func openProbeWindow(shell *core.Shell, i int, requested fyne.Size) {
	w := shell.NewWindow(fmt.Sprintf("constraint probe %d", i+1), requested)
	current := widget.NewLabel("")
	refresh := func() {
		size, err := w.CurrentSize()
		if err != nil {
			current.SetText(err.Error())
			return
		}
		current.SetText(fmt.Sprintf("current %dx%d", size.Width, size.Height))
	}

	limit := w.MaxSize()
	limitText := "no primary monitor, window left unconstrained"
	if limit != (winsize.Size{}) {
		limitText = fmt.Sprintf("max %dx%d", limit.Width, limit.Height)
	}
	w.SetContent(container.NewVBox(
		widget.NewLabel(fmt.Sprintf("requested %.0fx%.0f", requested.Width, requested.Height)),
		widget.NewLabel(limitText),
		current,
		widget.NewButton("Refresh", refresh),
		widget.NewButton("Grow past limit", func() {
			w.Resize(fyne.NewSize(requested.Width*2, requested.Height*2))
			refresh()
		}),
	))
	refresh()
	w.Show()
}
