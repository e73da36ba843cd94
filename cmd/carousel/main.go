// Package main implements carousel, a terminal slide carousel. It runs the
// carousel interactively, serves it over SSH or in the browser, and prints
// the computed track and dots for scripting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode      bool
	asciiOnly      bool
	themeName      string
	listThemes     bool
	borderStyle    string
	showClones     bool
	itemsFile      string
	itemCount      int
	slidesToShow   int
	slidesToScroll int
	infinite       bool
	centerMode     bool
	rtl            bool
	fade           bool
	vertical       bool
	lazyLoad       bool
	autoplay       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "carousel [slide text...]",
		Short: "Terminal slide carousel",
		Long: `carousel - a slide carousel for the terminal

Shows a window of slides with infinite wrapping, center mode, right-to-left
order, fading, lazy loading and pagination dots. Slides come from the
arguments, a file (one slide per line) or are generated.`,
		Example: `  # Run with generated slides
  carousel

  # One slide per argument
  carousel "first" "second" "third" "fourth"

  # One slide per line of a file, two at a time, centered
  carousel --file slides.txt --slides-to-show 2 --center

  # Run with a specific theme
  carousel --theme dracula

  # List all available themes
  carousel --list-themes

  # Print the track the carousel would draw
  carousel track --count 5 --current 2 --json

  # Run as SSH server
  carousel ssh --port 2222

  # Play a tape script
  carousel tape run demo.tape`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listThemes {
				for _, t := range theme.Available() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal(cmd, args)
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&debugMode, "debug", false, "Enable debug logging (every handled command is logged)")
	pf.BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Unicode and Nerd Font glyphs")
	pf.StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors without theming")
	pf.BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	pf.StringVar(&borderStyle, "border-style", "", "Slide border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	pf.BoolVar(&showClones, "show-clones", false, "Draw the whole track, clones included")
	pf.StringVarP(&itemsFile, "file", "f", "", "Read slides from a file, one per line (- for stdin)")
	pf.IntVarP(&itemCount, "count", "n", 0, "Number of generated slides when none are given (default: 8)")
	pf.IntVar(&slidesToShow, "slides-to-show", 0, "Slides visible at once (default: from config or 3)")
	pf.IntVar(&slidesToScroll, "slides-to-scroll", 0, "Slides moved per step (default: from config or 1)")
	pf.BoolVar(&infinite, "infinite", true, "Wrap around at both ends")
	pf.BoolVar(&centerMode, "center", false, "Keep the current slide centered")
	pf.BoolVar(&rtl, "rtl", false, "Right-to-left slide order")
	pf.BoolVar(&fade, "fade", false, "Fade between single slides")
	pf.BoolVar(&vertical, "vertical", false, "Stack slides vertically")
	pf.BoolVar(&lazyLoad, "lazy", false, "Draw placeholders until a slide has been in view")
	pf.BoolVar(&autoplay, "autoplay", false, "Advance automatically")

	var sshPort, sshHost, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the carousel over SSH",
		Long: `Serve the carousel over SSH

Every connection gets its own carousel over the same slides. A host key is
generated on first start unless --key-path is given.`,
		Example: `  # Start SSH server on default port
  carousel ssh

  # Start on custom port with your own slides
  carousel ssh --port 2323 --file slides.txt

  # Use a specific host key
  carousel ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(cmd, args, sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", "", "SSH server port (default: from config or 2222)")
	sshCmd.Flags().StringVar(&sshHost, "host", "", "SSH server host (default: from config or localhost)")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	var webPort, webHost string
	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the carousel in the browser",
		Long:  `Serve the carousel as a web terminal; every browser tab gets its own carousel`,
		Example: `  carousel web --port 7681
  carousel web --host 0.0.0.0 --file slides.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWebServer(cmd, args, webHost, webPort)
		},
	}
	webCmd.Flags().StringVar(&webPort, "port", "", "Web server port (default: 7681)")
	webCmd.Flags().StringVar(&webHost, "host", "", "Web server host (default: localhost)")

	var inspect inspectOptions
	trackCmd := &cobra.Command{
		Use:   "track [slide text...]",
		Short: "Print the track directives",
		Long: `Print the render directives of the whole track for one carousel state:
pre-clones, real slides and post-clones with their classification, style and
hydration. Use --render to draw the visible window instead.`,
		Example: `  carousel track --count 6 --current 2
  carousel track --count 6 --rtl --json | jq '.[].key'
  carousel track --count 4 --center --render`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTrack(cmd, args, inspect)
		},
	}
	dotsCmd := &cobra.Command{
		Use:   "dots [slide text...]",
		Short: "Print the pagination dots",
		Long:  `Print the pagination dots and the slide range each one covers`,
		Example: `  carousel dots --count 10 --slides-to-scroll 3 --infinite=false
  carousel dots --count 7 --current 4 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDots(cmd, args, inspect)
		},
	}
	for _, c := range []*cobra.Command{trackCmd, dotsCmd} {
		c.Flags().IntVar(&inspect.current, "current", 0, "Current slide")
		c.Flags().IntSliceVar(&inspect.loaded, "loaded", nil, "Hydrated slide indices (with --lazy; default: the visible window)")
		c.Flags().BoolVar(&inspect.json, "json", false, "Output as JSON")
		c.Flags().BoolVar(&inspect.render, "render", false, "Draw instead of listing")
		c.Flags().IntVar(&inspect.width, "width", 0, "Render width (default: terminal width)")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage carousel configuration",
		Long:  `Manage the carousel configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the carousel configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the carousel configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetForce bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the carousel configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd, resetForce)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetForce, "yes", "y", false, "Do not ask for confirmation")

	configValidateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a configuration file",
		Long:  `Load and validate a configuration file (default: your config) and report errors and warnings`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return validateConfigFile(path)
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configValidateCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect carousel keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCustomCmd := &cobra.Command{
		Use:   "list-custom",
		Short: "List customized keybindings",
		Long: `Display only keybindings that differ from defaults

Shows a comparison of default and custom keybindings.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listCustomKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd, keybindsCustomCmd)

	var tapeHeadless bool
	tapeCmd := &cobra.Command{
		Use:   "tape",
		Short: "Run and check .tape scripts",
		Long: `Run and check .tape automation scripts

Tape files drive the carousel line by line: Next, Prev, Dot, Select, Goto,
Sleep, Set, Expect and Autoplay. Lines starting with # are comments.
Tapes are given as a path or by name from the tape directory.`,
		Example: `  # Watch a tape play in the TUI
  carousel tape run demo.tape

  # Run a tape without a terminal and check its Expect lines
  carousel tape run --headless demo.tape

  # Validate tape file syntax
  carousel tape validate demo.tape`,
	}

	tapeRunCmd := &cobra.Command{
		Use:   "run <file.tape> [slide text...]",
		Short: "Run a tape file",
		Long: `Execute a tape script

By default the carousel is shown and the script plays in real time. With
--headless the script runs without a terminal (Sleep lines are skipped) and
the command fails on the first failed Expect.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tapeHeadless {
				return runTapeHeadless(cmd, args[0], args[1:])
			}
			return runTapeInteractive(cmd, args[0], args[1:])
		},
	}
	tapeRunCmd.Flags().BoolVar(&tapeHeadless, "headless", false, "Run without the TUI")

	tapeValidateCmd := &cobra.Command{
		Use:   "validate <file.tape>",
		Short: "Validate a tape file without running it",
		Long:  `Check if a tape file is syntactically correct`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return validateTapeFile(args[0])
		},
	}

	tapeListCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved tapes",
		Long:  `Display all tape files in the carousel data directory`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listTapeFiles()
		},
	}

	tapeDirCmd := &cobra.Command{
		Use:   "dir",
		Short: "Show the tape directory path",
		Long:  `Print the path where saved tapes are looked up`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showTapeDirectory()
		},
	}

	tapeDeleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved tape",
		Long:  `Delete a tape file from the tape directory`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return deleteTapeFile(args[0])
		},
	}

	tapeShowCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a tape file",
		Long:  `Parse a tape and print it back, one normalised command per line`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return showTapeFile(args[0])
		},
	}

	tapeCmd.AddCommand(tapeRunCmd, tapeValidateCmd, tapeListCmd, tapeDirCmd, tapeDeleteCmd, tapeShowCmd)

	rootCmd.AddCommand(sshCmd, webCmd, trackCmd, dotsCmd)
	rootCmd.AddCommand(configCmd, keybindsCmd, tapeCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
