package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-viscoconv/anim"
	"github.com/cwbudde/algo-viscoconv/dsp/conv"
)

// rootCmd plays the animation when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:          "slsconv",
	Short:        "Animate the convolution of an SLS kernel with a strain-rate pulse.",
	Long:         "Animate how a standard linear solid relaxation kernel, reversed and slid\nacross a sigmoid strain-rate pulse, builds up the stress response.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	addSceneFlags(rootCmd)
	addPlayFlags(rootCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(playCmd, reportCmd)
}

// addSceneFlags registers the flags shared by every subcommand that builds
// a scene.
func addSceneFlags(cmd *cobra.Command) {
	def := anim.DefaultConfig()
	fs := cmd.PersistentFlags()
	fs.String("preset", string(anim.PresetReference), "canned configuration: reference or short")
	fs.Int("samples", def.Grid.Samples, "number of time samples")
	fs.Float64("start", def.Grid.Start, "first time sample")
	fs.Float64("stop", def.Grid.Stop, "last time sample")
	fs.Float64("g0", def.Model.G0, "relaxed modulus")
	fs.Float64("g1", def.Model.G1, "relaxing modulus")
	fs.Float64("tau", def.Model.Tau, "relaxation time")
	fs.Float64("on", def.On, "strain application time")
	fs.Float64("off", def.Off, "strain removal time")
	fs.Float64("transition", def.Transition, "sigmoid transition width")
	fs.Bool("repeat", def.Repeat, "restart the animation after the last frame")
	fs.String("method", def.Method.String(), "convolution method: auto, direct or fft")
	fs.String("tail", def.Tail.String(), "frame range: stop or slide")
	fs.String("kernel-view", def.KernelView.String(), "kernel panel: full or trailing")
}

// sceneFromFlags starts from the selected preset and overrides every flag
// the user set explicitly.
func sceneFromFlags(cmd *cobra.Command) (*anim.Scene, error) {
	opts, err := anim.Preset(getString(cmd, "preset")).Options()
	if err != nil {
		return nil, err
	}
	cfg := anim.ApplyOptions(opts...)

	fs := cmd.Flags()
	if fs.Changed("samples") {
		cfg.Grid.Samples = getInt(cmd, "samples")
	}
	if fs.Changed("start") {
		cfg.Grid.Start = getFloat(cmd, "start")
	}
	if fs.Changed("stop") {
		cfg.Grid.Stop = getFloat(cmd, "stop")
	}
	if fs.Changed("g0") {
		cfg.Model.G0 = getFloat(cmd, "g0")
	}
	if fs.Changed("g1") {
		cfg.Model.G1 = getFloat(cmd, "g1")
	}
	if fs.Changed("tau") {
		cfg.Model.Tau = getFloat(cmd, "tau")
	}
	if fs.Changed("on") {
		cfg.On = getFloat(cmd, "on")
	}
	if fs.Changed("off") {
		cfg.Off = getFloat(cmd, "off")
	}
	if fs.Changed("transition") {
		cfg.Transition = getFloat(cmd, "transition")
	}
	if fs.Changed("repeat") {
		cfg.Repeat = getFlag(cmd, "repeat")
	}
	if fs.Changed("method") {
		if cfg.Method, err = conv.ParseMethod(getString(cmd, "method")); err != nil {
			return nil, err
		}
	}
	if fs.Changed("tail") {
		if cfg.Tail, err = anim.ParseTailPolicy(getString(cmd, "tail")); err != nil {
			return nil, err
		}
	}
	if fs.Changed("kernel-view") {
		if cfg.KernelView, err = anim.ParseKernelView(getString(cmd, "kernel-view")); err != nil {
			return nil, err
		}
	}

	scene, err := anim.NewSceneFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"samples": cfg.Grid.Samples,
		"span":    fmt.Sprintf("[%g, %g]", cfg.Grid.Start, cfg.Grid.Stop),
		"model":   cfg.Model.String(),
		"method":  cfg.Method.String(),
		"tail":    cfg.Tail.String(),
	}).Debug("scene ready")

	return scene, nil
}

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	exitOnFlagError(err)
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	exitOnFlagError(err)
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	exitOnFlagError(err)
	return r
}

func getFloat(cmd *cobra.Command, flag string) float64 {
	r, err := cmd.Flags().GetFloat64(flag)
	exitOnFlagError(err)
	return r
}

func getDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	exitOnFlagError(err)
	return r
}

func exitOnFlagError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
