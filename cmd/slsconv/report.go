package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-viscoconv/anim"
	"github.com/cwbudde/algo-viscoconv/stats/response"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a table and plot of the convolution result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scene, err := sceneFromFlags(cmd)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), scene, reportOptions{
			rows:   getInt(cmd, "rows"),
			width:  getInt(cmd, "width"),
			height: getInt(cmd, "height"),
		})
	},
}

func init() {
	reportCmd.Flags().Int("rows", 10, "number of evenly spaced table rows")
	reportCmd.Flags().Int("width", 72, "plot width in columns")
	reportCmd.Flags().Int("height", 12, "plot height in rows")
}

// settleTolerance is the band around the relaxed stress used for the
// settling time.
const settleTolerance = 0.01

type reportOptions struct {
	rows   int
	width  int
	height int
}

// writeReport prints the scene parameters, a sampled table of the signals
// against the ideal step response, and a plot of the convolution.
func writeReport(w io.Writer, s *anim.Scene, opts reportOptions) error {
	cfg := s.Config()
	t := s.Time()
	load := s.StrainLoad()
	rate := s.StrainRate()
	conv := s.Convolved()

	frames := anim.NewDriver(s).Frames()
	if _, err := fmt.Fprintf(w, "model    %s\nsamples  %d over [%g, %g], step %g\nstrain   on %g, off %g, transition %g\nmethod   %s, %d frames\n\n",
		cfg.Model, cfg.Grid.Samples, cfg.Grid.Start, cfg.Grid.Stop, cfg.Grid.Step(),
		cfg.On, cfg.Off, cfg.Transition, cfg.Method, frames); err != nil {
		return err
	}

	ref := make([]float64, len(t))
	for i, ti := range t {
		ref[i] = cfg.Model.StepResponse(ti, cfg.On, cfg.Off)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "t\tstrain\tstrain rate\tstress\tstep response\t|diff|\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-\t------\t-----------\t------\t-------------\t------\n"); err != nil {
		return err
	}

	var worst float64
	for _, i := range sampleRows(len(t), opts.rows) {
		diff := math.Abs(conv[i] - ref[i])
		worst = math.Max(worst, diff)
		if _, err := fmt.Fprintf(tw, "%.4g\t%.6f\t%.6f\t%.6f\t%.6f\t%.2e\n",
			t[i], load[i], rate[i], conv[i], ref[i], diff); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sum := response.Summarize(conv)
	dev := response.Compare(conv, ref)
	relaxed := cfg.Model.Relaxed() * load[len(load)-1]

	if _, err := fmt.Fprintf(w, "\nstress   max %.6f at t=%.4g, min %.6f at t=%.4g, rms %.6f\n",
		sum.Max, t[sum.MaxPos], sum.Min, t[sum.MinPos], sum.RMS); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "vs step  max |diff| %.2e at t=%.4g, rms %.2e (table %.2e)\n",
		dev.MaxAbs, t[dev.MaxAbsPos], dev.RMS, worst); err != nil {
		return err
	}
	if i := response.Settling(conv, relaxed, settleTolerance); i >= 0 {
		_, err := fmt.Fprintf(w, "settled  within %g of %.4g from t=%.4g\n\n", settleTolerance, relaxed, t[i])
		if err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "settled  not within %g of %.4g\n\n", settleTolerance, relaxed); err != nil {
		return err
	}

	graph := asciigraph.Plot(conv,
		asciigraph.Width(opts.width),
		asciigraph.Height(opts.height),
		asciigraph.Caption("stress = (G_SLS * d(strain)/dt)(t)"),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}

// sampleRows returns up to rows evenly spaced indices in [0, n), always
// including the first and last sample.
func sampleRows(n, rows int) []int {
	if n == 0 || rows <= 0 {
		return nil
	}
	if rows == 1 || n == 1 {
		return []int{0}
	}
	if rows > n {
		rows = n
	}
	idx := make([]int, rows)
	for r := range idx {
		idx[r] = int(math.Round(float64(r) * float64(n-1) / float64(rows-1)))
	}
	return idx
}
