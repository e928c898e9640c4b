package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/primespiral/spiral/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type screenReport struct {
	Monitor   string `yaml:"monitor"`
	Width     uint32 `yaml:"width"`
	Height    uint32 `yaml:"height"`
	MaxWidth  uint32 `yaml:"max_width"`
	MaxHeight uint32 `yaml:"max_height"`
}

func newScreenReport(m display.Monitor) screenReport {
	bound := winsize.Compute(m.Resolution())
	return screenReport{
		Monitor:   m.Name,
		Width:     m.Size.Width,
		Height:    m.Size.Height,
		MaxWidth:  bound.Width,
		MaxHeight: bound.Height,
	}
}

func newScreenCmd(probe display.Prober) *cobra.Command {
	return &cobra.Command{
		Use:   "screen",
		Short: "Print the primary monitor and the largest window size allowed on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mon, ok, err := display.Lookup(probe)
			if err != nil {
				return model.NewExitError(model.NoDisplay, errors.Wrap(err, "failed to probe primary monitor"))
			}
			if !ok {
				return model.NewExitError(model.NoDisplay, display.ErrNoMonitor)
			}
			m, _ := mon.(display.Monitor)
			out := cmd.OutOrStdout()
			return writeScreenReport(out, newScreenReport(m), isTerminal(out))
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeScreenReport(w io.Writer, r screenReport, table bool) error {
	if !table {
		data, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		_, err = w.Write(data)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "MONITOR\tRESOLUTION\tMAX WINDOW\n")
	fmt.Fprintf(tw, "%s\t%dx%d\t%dx%d\n", r.Monitor, r.Width, r.Height, r.MaxWidth, r.MaxHeight)
	return tw.Flush()
}
