package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/jsvensson/colorgap"
)

var (
	flagVerbosity  string
	flagStep       int
	flagGap        float64
	flagAvoid      []string
	flagAvoidFiles []string
	flagLight      bool
	flagDark       bool
	flagRoles      bool
	flagWorkers    int
	version        = "dev" // Injected at build time via ldflags
)

// verbosities maps level names to commonlog.Configure verbosity values.
var verbosities = map[string]int{
	"none":     -4,
	"critical": -3,
	"error":    -2,
	"warning":  -1,
	"notice":   0,
	"info":     1,
	"debug":    2,
}

var rootCmd = &cobra.Command{
	Use:   "colorgap",
	Short: "Find colors that keep a perceptual distance from a set of colors to avoid",
	Long: `Colorgap sweeps the RGB cube with a fixed stride and collects every color
whose CIEDE2000 difference to all avoided colors (and all colors found so
far) stays above the gap threshold. The result is printed hue-sorted, one
hex color per line.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runSearch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	addSearchFlags(rootCmd.Flags())
	rootCmd.AddCommand(versionCmd)
}

func addSearchFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&flagVerbosity, "verbosity", "v", "info",
		"log verbosity (none, critical, error, warning, notice, info, debug)")
	fs.IntVarP(&flagStep, "step", "s", 4, "RGB increment between lattice points (1-255)")
	fs.Float64VarP(&flagGap, "gap", "g", 15,
		"minimum CIEDE2000 difference to every avoided color; 100 means completely dissimilar")
	fs.StringSliceVarP(&flagAvoid, "avoid", "a", nil, "hex colors to avoid (can be repeated)")
	fs.StringArrayVarP(&flagAvoidFiles, "avoid-file", "f", nil, "HCL avoid files (can be repeated)")
	fs.BoolVarP(&flagLight, "discord-light", "l", false,
		"avoid the Discord light mode background and text colors")
	fs.BoolVarP(&flagDark, "discord-dark", "d", false,
		"avoid the Discord dark mode background and text colors")
	fs.BoolVarP(&flagRoles, "discord-roles", "r", false, "avoid the default Discord role colors")
	fs.IntVarP(&flagWorkers, "workers", "w", 1, "parallel workers for the rejection scan")
}

func runSearch(cmd *cobra.Command, args []string) error {
	verbosity, ok := verbosities[flagVerbosity]
	if !ok {
		return fmt.Errorf("unknown verbosity %q (valid: none, critical, error, warning, notice, info, debug)", flagVerbosity)
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("colorgap")

	colors, err := colorgap.Run(cmd.Context(), colorgap.Options{
		Step:         flagStep,
		Gap:          flagGap,
		Avoid:        flagAvoid,
		AvoidFiles:   flagAvoidFiles,
		DiscordLight: flagLight,
		DiscordDark:  flagDark,
		DiscordRoles: flagRoles,
		Workers:      flagWorkers,
		Sink:         logSink{log: log},
	})
	if err != nil {
		return err
	}

	log.Infof("found %d valid colors", len(colors))
	if len(colors) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(colors, "\n"))
	}
	return nil
}

// logSink adapts the engine's progress notifications onto commonlog.
type logSink struct {
	log commonlog.Logger
}

func (s logSink) Begin(total int) {
	s.log.Infof("looping through %d colors", total)
}

func (s logSink) Checking(hex string) {
	s.log.Debugf("checking color %s", hex)
}

func (s logSink) Collision(hex, with string) {
	s.log.Debugf("color %s collides with %s", hex, with)
}

func (s logSink) Found(hex string) {
	s.log.Infof("valid color found %s", hex)
}

func (s logSink) Progress(checked, total int) {
	s.log.Infof("checked %d/%d colors", checked, total)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
