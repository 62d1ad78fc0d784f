package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sethgrid/tamagotchi/internal/pet"
	"github.com/sethgrid/tamagotchi/internal/ruleset"
	"github.com/sethgrid/tamagotchi/internal/session"
	"github.com/sethgrid/tamagotchi/internal/tui"
	"github.com/spf13/cobra"
)

var (
	seed    uint64
	logFile string
	debug   bool
)

const Version = "v1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tamagotchi",
		Short:         "Tamagotchi - keep a virtual pet alive in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If version flag is set, print version and exit
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
				return nil
			}
			return play()
		},
	}

	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for disease and healing rolls (0 = random)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Log every command and tick")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newAdminCmd())
	return rootCmd
}

func play() error {
	logger, closeLog, err := newLogger(logFile, debug)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := session.New(pet.DefaultRules(), pet.NewRandRoller(seed), logger)
	if err != nil {
		return err
	}
	logger.Info("session started", "seed", seed, "tickRate", pet.DefaultRules().TickInterval())

	program := tea.NewProgram(tui.New(s), tea.WithAltScreen())
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

// newLogger keeps logs off the game screen: they go to path, or nowhere.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tamagotchi",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rules every pet lives by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("format")
			format, err := ruleset.ParseFormat(name)
			if err != nil {
				return err
			}
			return ruleset.Write(cmd.OutOrStdout(), pet.DefaultRules(), format)
		},
	}
	cmd.Flags().StringP("format", "f", string(ruleset.FormatTOML), "Output format (toml or yaml)")
	return cmd
}

func newAdminCmd() *cobra.Command {
	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
	}

	adminCompletionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for tamagotchi.

To load completions:

Bash:
  $ source <(tamagotchi admin completion bash)

Zsh:
  $ tamagotchi admin completion zsh > "${fpath[1]}/_tamagotchi"

Fish:
  $ tamagotchi admin completion fish | source

PowerShell:
  PS> tamagotchi admin completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletion(out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}

	adminCmd.AddCommand(adminCompletionCmd)
	return adminCmd
}
