// Package main is the entry point for the harmony CLI
package main

import (
	"fmt"
	"os"

	"github.com/james-see/harmony/pkg/api"
	"github.com/james-see/harmony/pkg/config"
	"github.com/james-see/harmony/pkg/export"
	"github.com/james-see/harmony/pkg/theory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFile string
	verbose    bool
	modeName   string
	outputFile string
	descend    bool
	serverPort int

	cfg config.Config
	log = logrus.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "harmony",
	Short: "Parse notes, build diatonic scales and identify modes",
	Long: `harmony works with Western pitch notation: it parses notes such as F#3,
measures half-step distances and spells the seven diatonic modes from any tonic.

Examples:
  harmony scale G3
  harmony scale Fb3 --mode lydian -o fb-lydian.mid
  harmony identify C3 D3 Eb3 F3 G3 Ab3 Bb3
  harmony distance B3 C##5
  harmony serve --port 8080`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var scaleCmd = &cobra.Command{
	Use:   "scale <tonic>",
	Short: "Spell the diatonic scale of a mode on a tonic",
	Args:  cobra.ExactArgs(1),
	RunE:  runScale,
}

var identifyCmd = &cobra.Command{
	Use:   "identify <note>...",
	Short: "Identify the mode of seven ascending notes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIdentify,
}

var parseCmd = &cobra.Command{
	Use:   "parse <note>",
	Short: "Show how a note is parsed",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var distanceCmd = &cobra.Command{
	Use:   "distance <from> <to>",
	Short: "Count half steps between two notes",
	Args:  cobra.ExactArgs(2),
	RunE:  runDistance,
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the diatonic modes and their interval patterns",
	Args:  cobra.NoArgs,
	RunE:  runModes,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	// scale command
	scaleCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Mode (ionian, dorian, ..., locrian; default from config)")
	scaleCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Also write the scale to a .mid, .txt or .json file")
	scaleCmd.Flags().BoolVar(&descend, "descend", false, "MIDI output plays back down to the tonic")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "Server port (default from config)")

	// Add commands
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	log = cfg.NewLogger()
	log.WithField("config", configFile).Debug("configuration loaded")
	return nil
}

func runScale(cmd *cobra.Command, args []string) error {
	tonic, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}

	mode := cfg.DefaultMode()
	if modeName != "" {
		if mode, err = theory.ParseMode(modeName); err != nil {
			return err
		}
	}

	if err := theory.CheckSpelling(tonic, mode); err != nil {
		return err
	}
	scale := theory.NewDiatonicScale(tonic, mode)
	log.WithFields(logrus.Fields{"tonic": tonic, "mode": mode}).Debug("scale built")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderScale(scale))

	if outputFile != "" {
		opts := cfg.MIDIOptions()
		opts.Descend = opts.Descend || descend
		if err := export.WriteFile(outputFile, scale, opts); err != nil {
			return err
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Wrote %s", outputFile)))
	}
	return nil
}

func runIdentify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	notes, err := theory.ParseNotes(args)
	if err != nil {
		return err
	}

	gaps := theory.Intervals(notes)
	log.WithField("intervals", gaps).Debug("intervals computed")

	mode, err := theory.IdentifyMode(notes)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Mode:"), valueStyle.Render(mode.String()))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Intervals:"), formatIntervals(gaps))
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	n, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}

	accidental := n.Accidental.String()
	if accidental == "" {
		accidental = "natural"
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(n.Name.String()))
	fmt.Fprintf(out, "%s %s (%+d)\n", labelStyle.Render("Accidental:"), valueStyle.Render(accidental), n.Accidental.Offset())
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Octave:"), valueStyle.Render(fmt.Sprint(n.Octave)))
	if key, err := export.KeyNumber(n); err == nil {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("MIDI key:"), valueStyle.Render(fmt.Sprint(key)))
	}
	return nil
}

func runDistance(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	from, err := theory.ParseNote(args[0])
	if err != nil {
		return err
	}
	to, err := theory.ParseNote(args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s → %s: %s half steps\n", from, to, valueStyle.Render(fmt.Sprintf("%+d", from.DistHsteps(to))))
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderModes())
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Starting API server on port %d...\n", cfg.Server.Port)
	return api.NewServer(cfg, log).Start()
}
