package core

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sahilm/fuzzy"
)

type helpTopic struct {
	Title string
	Body  string
}

var helpTopics = []helpTopic{
	{"Welcome", "Numbers are laid out along a spiral and prime numbers light up. Change the settings in the sidebar and watch the patterns move."},
	{"Spiral canvas", "Every point is a whole number n placed at radius sqrt(n) and angle coefficient × π × sqrt(n). Primes are drawn larger and brighter."},
	{"Rotation", "Rotate turns the whole spiral continuously. Rotation speed sets how fast."},
	{"Spiral coefficient", "The coefficient controls how tightly the spiral winds. Small changes give very different pictures."},
	{"Coefficient animation", "Animate coefficient walks the coefficient between its min and max, reversing at each end."},
	{"Point density", "Points sets how many numbers are drawn. More points show more structure but cost more per frame."},
	{"Clusters", "Animate clusters moves invisible attractors over the canvas that enlarge and lift nearby points."},
	{"Zoom", "Scroll over the canvas to zoom. The zoom level is remembered between sessions."},
	{"Fullscreen", "F11 or the Fullscreen button enters fullscreen. Escape leaves it."},
	{"Keyboard shortcuts", "F11 fullscreen, Escape leave fullscreen, Ctrl+B toggle sidebar, F1 help."},
}

// filterTopics returns the topics whose title fuzzy-matches query, best
// match first. An empty query keeps every topic in order.
func filterTopics(topics []helpTopic, query string) []helpTopic {
	if query == "" {
		return topics
	}
	titles := make([]string, len(topics))
	for i, t := range topics {
		titles[i] = t.Title
	}
	matches := fuzzy.Find(query, titles)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	result := make([]helpTopic, 0, len(matches))
	for _, m := range matches {
		result = append(result, topics[m.Index])
	}
	return result
}

var helpWindowSize = fyne.NewSize(900, 700)

type helpWindow struct {
	win    *HostWindow
	search *widget.Entry
	list   *widget.List
	body   *widget.Label
	shown  []helpTopic
}

func newHelpWindow(shell *Shell) *helpWindow {
	h := &helpWindow{shown: helpTopics}
	h.win = shell.NewWindow("Spiral help", helpWindowSize)

	h.body = widget.NewLabel(helpTopics[0].Body)
	h.body.Wrapping = fyne.TextWrapWord

	h.list = widget.NewList(
		func() int { return len(h.shown) },
		func() fyne.CanvasObject { return widget.NewLabel("topic") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(h.shown[id].Title)
		},
	)
	h.list.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(h.shown) {
			h.body.SetText(h.shown[id].Body)
		}
	}

	h.search = widget.NewEntry()
	h.search.SetPlaceHolder("Search help")
	h.search.OnChanged = h.filter

	split := container.NewHSplit(h.list, container.NewPadded(h.body))
	split.Offset = 0.3
	h.win.SetContent(container.NewBorder(h.search, nil, nil, nil, split))
	h.win.Canvas().Focus(h.search)
	return h
}

func (h *helpWindow) filter(query string) {
	h.shown = filterTopics(helpTopics, query)
	h.list.UnselectAll()
	h.list.Refresh()
	if len(h.shown) > 0 {
		h.list.Select(0)
	} else {
		h.body.SetText("No matching topic.")
	}
}
