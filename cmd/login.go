package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quocvuong92/tassist/internal/githubapi"
)

// newLoginCmd creates the login command
func (app *App) newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [token]",
		Short: "Store a GitHub token for account verification",
		Long: `Store a GitHub personal access token for account verification.

The token raises the GitHub API rate limit used by --verify-github. It is
read from the argument, or prompted for when omitted, and stored with
owner-only permissions. GITHUB_TOKEN and github.token take precedence.

Examples:
  tassist login
  echo "$TOKEN" | tassist login`,
		Args: cobra.MaximumNArgs(1),
		RunE: app.runLogin,
	}
}

// newLogoutCmd creates the logout command
func (app *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored GitHub token",
		Long: `Remove the stored GitHub token.

Examples:
  tassist logout`,
		Args: cobra.NoArgs,
		RunE: app.runLogout,
	}
}

func (app *App) runLogin(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		var err error
		token, err = readToken(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}

	if err := githubapi.SaveToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	tokenPath, _ := githubapi.TokenPath()
	app.out.ShowSuccess("GitHub token saved.")
	app.out.ShowContent("Token stored at: " + tokenPath)
	return nil
}

func (app *App) runLogout(cmd *cobra.Command, args []string) error {
	if !githubapi.HasToken() {
		app.out.ShowContent("No GitHub token stored.")
		return nil
	}
	if err := githubapi.DeleteToken(); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	app.out.ShowSuccess("GitHub token removed.")
	return nil
}

// readToken prompts without echo on a terminal, otherwise reads one line
func readToken(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "GitHub token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
