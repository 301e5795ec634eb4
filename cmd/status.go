package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/tassist/internal/config"
	"github.com/quocvuong92/tassist/internal/githubapi"
)

// newStatusCmd creates the status command
func (app *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the roster and settings in use",
		Long: `Show where the roster is stored, how many students it holds and which
settings are in effect.

Examples:
  tassist status
  tassist --storage sqlite -d data/tassist.db status`,
		Args: cobra.NoArgs,
		RunE: app.runStatus,
	}
}

func (app *App) runStatus(cmd *cobra.Command, args []string) error {
	if err := app.open(); err != nil {
		return err
	}

	configFile := app.cfg.ConfigPath
	if configFile == "" {
		configFile = "(none)"
	}

	token := "not set"
	switch {
	case app.cfg.GithubToken != "":
		token = "from environment or config"
	case githubapi.HasToken():
		token = "stored (tassist login)"
	}

	historyPath := "disabled"
	if h := app.openHistory(); h != nil {
		historyPath = fmt.Sprintf("%s (%d lines)", h.Path(), h.Len())
	}

	app.out.ShowKeyValues("TAssist status", [][2]string{
		{"Data file", app.store.Path()},
		{"Storage", app.cfg.Storage},
		{"Students", strconv.Itoa(app.model.AddressBook().Len())},
		{"Config file", configFile},
		{"GitHub verification", strconv.FormatBool(app.cfg.VerifyGithub)},
		{"GitHub token", token},
		{"History", historyPath},
	})
	return nil
}

// newConfigCmd creates the config command group
func (app *App) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfigFile()
			if err != nil {
				return err
			}
			app.out.ShowSuccess("Created " + path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.out.ShowKeyValues("Configuration", app.cfg.Entries())
			return nil
		},
	})

	return configCmd
}

// newHistoryCmd creates the history command
func (app *App) newHistoryCmd() *cobra.Command {
	var limit int
	var clearAll bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently entered command lines",
		Long: `Show recently entered command lines, oldest first.

Examples:
  tassist history
  tassist history -n 50
  tassist history --clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.cfg.HistoryEnabled {
				return errors.New("command history is disabled")
			}
			h := app.openHistory()
			if h == nil {
				return errors.New("command history is not available")
			}

			if clearAll {
				h.Clear()
				if err := h.Save(); err != nil {
					return err
				}
				app.out.ShowSuccess("History cleared.")
				return nil
			}
			if limit <= 0 {
				return fmt.Errorf("invalid limit %d: must be positive", limit)
			}
			return app.showHistory(strconv.Itoa(limit))
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryShown, "Number of lines to show")
	historyCmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded lines")
	return historyCmd
}
