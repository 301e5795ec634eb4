// Package logic runs command lines against the roster.
//
// It parses a line, optionally verifies GitHub accounts, executes the command,
// launches the browser when asked to and persists the roster after every
// successful change. A failed line leaves the roster as it was.
package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/githubapi"
	"github.com/quocvuong92/tassist/internal/logging"
	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/parser"
	"github.com/quocvuong92/tassist/internal/person"
)

// Store persists the roster
type Store interface {
	Save(ab *model.AddressBook) error
}

// Launcher opens links in the user's browser
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
}

// Verifier checks that a GitHub account exists. It returns an error wrapping
// githubapi.ErrUserNotFound when it does not.
type Verifier interface {
	VerifyUser(ctx context.Context, username string) error
}

// CollaboratorError reports a failure outside the roster itself
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// Options configures a Logic. Only Syntax may be left zero; nil
// collaborators are skipped.
type Options struct {
	Syntax   parser.Syntax
	Store    Store
	Launcher Launcher
	Verifier Verifier
	Logger   *logging.Logger
}

// Logic executes command lines
type Logic struct {
	model    model.Model
	parser   *parser.Parser
	store    Store
	launcher Launcher
	verifier Verifier
	log      *logging.Logger
}

// New creates a Logic operating on m
func New(m model.Model, opts Options) (*Logic, error) {
	syntax := opts.Syntax
	if syntax == (parser.Syntax{}) {
		syntax = parser.DefaultSyntax()
	}
	p, err := parser.New(syntax)
	if err != nil {
		return nil, fmt.Errorf("invalid prefix table: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logging.DefaultLogger
	}
	return &Logic{
		model:    m,
		parser:   p,
		store:    opts.Store,
		launcher: opts.Launcher,
		verifier: opts.Verifier,
		log:      log,
	}, nil
}

// Model returns the model commands run against
func (l *Logic) Model() model.Model {
	return l.model
}

// Parser returns the parser in use
func (l *Logic) Parser() *parser.Parser {
	return l.parser
}

// FilteredPersons returns the persons currently shown
func (l *Logic) FilteredPersons() []person.Person {
	return l.model.FilteredPersons()
}

// Execute parses and runs one command line
func (l *Logic) Execute(ctx context.Context, line string) (command.Result, error) {
	start := time.Now()
	word, _ := parser.SplitCommandWord(line)
	fields := logging.Fields{"command": word}

	res, err := l.execute(ctx, line)

	fields["duration_ms"] = time.Since(start).Milliseconds()
	if err != nil {
		fields["error"] = err.Error()
		l.log.Warn("Command failed", fields)
		return command.Result{}, err
	}
	l.log.Debug("Command executed", fields)
	return res, nil
}

func (l *Logic) execute(ctx context.Context, line string) (command.Result, error) {
	cmd, err := l.parser.Parse(line)
	if err != nil {
		return command.Result{}, err
	}

	if err := l.verifyAccount(ctx, cmd); err != nil {
		return command.Result{}, err
	}

	readOnly := command.IsReadOnly(cmd)
	var snapshot *model.AddressBook
	if !readOnly {
		snapshot = l.model.AddressBook()
	}

	res, err := cmd.Execute(l.model)
	if err != nil {
		return command.Result{}, err
	}

	if !readOnly && l.store != nil {
		if err := l.store.Save(l.model.AddressBook()); err != nil {
			l.model.SetAddressBook(snapshot)
			l.model.UpdateFilteredPersonList(model.ShowAll)
			return command.Result{}, &CollaboratorError{Op: "save the roster", Err: err}
		}
	}

	if res.OpenURL != "" && l.launcher != nil {
		if err := l.launcher.OpenURL(ctx, res.OpenURL); err != nil {
			return command.Result{}, &CollaboratorError{Op: "open " + res.OpenURL, Err: err}
		}
	}
	return res, nil
}

func (l *Logic) verifyAccount(ctx context.Context, cmd command.Command) error {
	if l.verifier == nil {
		return nil
	}
	setter, ok := cmd.(command.AccountSetter)
	if !ok {
		return nil
	}
	name, ok := setter.GithubAccount()
	if !ok {
		return nil
	}

	err := l.verifier.VerifyUser(ctx, name)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, githubapi.ErrUserNotFound):
		return &command.ExecutionError{
			Kind:    command.InvalidGithub,
			Message: fmt.Sprintf(messages.GithubAccountNotFound, name),
			Err:     err,
		}
	default:
		return &CollaboratorError{Op: "verify GitHub account " + name, Err: err}
	}
}
