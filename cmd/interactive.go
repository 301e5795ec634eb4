package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"golang.org/x/term"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/parser"
)

// commandSuggestions are offered while the command word is being typed
var commandSuggestions = []prompt.Suggest{
	// Most used commands first
	{Text: command.ListWord, Description: "List every student"},
	{Text: command.FindWord, Description: "Find students by name"},
	{Text: command.AddWord, Description: "Add a student"},
	{Text: command.EditWord, Description: "Edit a student's details"},
	{Text: command.DeleteWord, Description: "Delete a student"},
	{Text: command.ClassWord, Description: "Assign a tutorial class"},
	{Text: command.GithubWord, Description: "Set or remove a GitHub profile"},
	{Text: command.RepoWord, Description: "Set a project repository"},
	{Text: command.ProgressWord, Description: "Update progress"},
	{Text: command.OpenWord, Description: "Open a repository or profile in the browser"},
	{Text: command.ClearWord, Description: "Remove every student"},

	// Session
	{Text: historyWord, Description: "Show recent command lines"},
	{Text: command.HelpWord, Description: "Show all available commands"},
	{Text: command.ExitWord, Description: "Exit interactive mode"},
}

// prefixDescriptions labels the argument prefixes
var prefixDescriptions = map[string]string{
	"Name":       "name",
	"Phone":      "phone number",
	"Email":      "email address",
	"Class":      "tutorial class, e.g. T01",
	"StudentID":  "student ID, e.g. A1234567X",
	"Github":     "GitHub profile URL",
	"Tag":        "tag, repeatable",
	"Progress":   "progress from 0 to 100",
	"Username":   "GitHub username",
	"Repository": "repository name",
}

// commandPrefixes lists the prefixes each command accepts
func commandPrefixes(s parser.Syntax) map[string][]prompt.Suggest {
	sg := func(p parser.Prefix, field string) prompt.Suggest {
		return prompt.Suggest{Text: p.String(), Description: prefixDescriptions[field]}
	}
	name, phone, email := sg(s.Name, "Name"), sg(s.Phone, "Phone"), sg(s.Email, "Email")
	class, id, github := sg(s.Class, "Class"), sg(s.StudentID, "StudentID"), sg(s.Github, "Github")
	tag, progress := sg(s.Tag, "Tag"), sg(s.Progress, "Progress")

	return map[string][]prompt.Suggest{
		command.AddWord:      {name, phone, email, id, class, github, progress, tag},
		command.EditWord:     {name, phone, email, class, id, github, progress, tag},
		command.GithubWord:   {github},
		command.RepoWord:     {sg(s.Username, "Username"), sg(s.Repository, "Repository")},
		command.ClassWord:    {class},
		command.ProgressWord: {progress},
	}
}

// InteractiveSession holds the state of one REPL session
type InteractiveSession struct {
	app      *App
	ctx      context.Context
	prefixes map[string][]prompt.Suggest
	exitFlag bool
}

// completer suggests command words, then the prefixes the typed command accepts
func (s *InteractiveSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	trimmed := strings.TrimLeft(text, " \t")
	if !strings.ContainsAny(trimmed, " \t") {
		return prompt.FilterHasPrefix(commandSuggestions, w, true), startIndex, endIndex
	}

	// Only complete a prefix at the start of a new argument
	if w == "" || strings.Contains(w, "/") {
		return []prompt.Suggest{}, startIndex, endIndex
	}
	word, _ := parser.SplitCommandWord(trimmed)
	return prompt.FilterHasPrefix(s.prefixes[strings.ToLower(word)], w, true), startIndex, endIndex
}

// runInteractive starts the REPL and returns when the user exits
func (app *App) runInteractive(ctx context.Context) {
	out := app.out.Writer()
	fmt.Fprintln(out, "TAssist - Interactive Mode")
	fmt.Fprintf(out, "Roster: %s (%d students)\n", app.cfg.DataFile, app.model.AddressBook().Len())
	if app.cfg.VerifyGithub {
		fmt.Fprintln(out, "GitHub accounts: verified before saving")
	}
	fmt.Fprintln(out, "Type help for commands, Ctrl+C or Ctrl+D to quit")
	fmt.Fprintln(out)

	h := app.openHistory()

	session := &InteractiveSession{
		app:      app,
		ctx:      ctx,
		prefixes: commandPrefixes(app.logic.Parser().Syntax()),
	}

	opts := []prompt.Option{
		prompt.WithCompleter(session.completer),
		prompt.WithPrefix("> "),
		prompt.WithTitle("TAssist"),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkBlue),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithSelectedDescriptionBGColor(prompt.Cyan),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithScrollbarBGColor(prompt.DarkGray),
		prompt.WithScrollbarThumbColor(prompt.White),
		prompt.WithMaxSuggestion(15),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Fprintln(out, "\nGoodbye!")
				app.saveHistory()
				session.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Fprintln(out, "Goodbye!")
					app.saveHistory()
					session.exitFlag = true
				}
				return false
			},
		}),
	}
	if h != nil {
		opts = append(opts, prompt.WithHistory(h.Lines()))
	}

	prompt.New(session.executor, opts...).Run()
	app.saveHistory()
}

// executor handles one line entered at the prompt
func (s *InteractiveSession) executor(input string) {
	if s.exitFlag {
		return
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if exit := s.app.handleLine(s.ctx, input); exit {
		s.exitFlag = true
	}
}

// runLines executes one command per line read from r, as the REPL would.
// Errors are printed and do not stop the run.
func (app *App) runLines(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if exit := app.handleLine(ctx, line); exit {
			break
		}
	}
	app.saveHistory()
	return scanner.Err()
}

// handleLine records and executes one line, printing any error. It reports
// whether the session should end.
func (app *App) handleLine(ctx context.Context, line string) bool {
	if h := app.openHistory(); h != nil {
		h.Add(line)
	}
	exit, err := app.execute(ctx, line)
	if err != nil {
		app.out.ShowError(err.Error())
	}
	return exit
}

// stdinIsTerminal reports whether input comes from an interactive terminal
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
