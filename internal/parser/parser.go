// Package parser turns command lines into commands.
//
// A line is "<word> <preamble> [<prefix><value>]...". The word selects a
// command parser; each parser tokenizes the rest with the prefixes it
// declares, validates the values and builds an immutable command.
package parser

import (
	"slices"
	"strings"
	"unicode"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/messages"
)

type parseFunc func(args string) (command.Command, error)

// Parser dispatches a command line to the parser of its command word
type Parser struct {
	syntax  Syntax
	parsers map[string]parseFunc
}

// New creates a Parser using syntax for every command
func New(syntax Syntax) (*Parser, error) {
	if err := syntax.Validate(); err != nil {
		return nil, err
	}
	p := &Parser{syntax: syntax}
	p.parsers = map[string]parseFunc{
		command.AddWord:      p.parseAdd,
		command.EditWord:     p.parseEdit,
		command.DeleteWord:   p.parseDelete,
		command.GithubWord:   p.parseGithub,
		command.RepoWord:     p.parseRepo,
		command.ClassWord:    p.parseClass,
		command.ProgressWord: p.parseProgress,
		command.OpenWord:     p.parseOpen,
		command.FindWord:     p.parseFind,
		command.ListWord:     constant(command.List{}),
		command.ClearWord:    constant(command.Clear{}),
		command.HelpWord:     constant(command.Help{}),
		command.ExitWord:     constant(command.Exit{}),
	}
	return p, nil
}

// Syntax returns the prefix table in use
func (p *Parser) Syntax() Syntax {
	return p.syntax
}

// Words returns the known command words, sorted
func (p *Parser) Words() []string {
	words := make([]string, 0, len(p.parsers))
	for w := range p.parsers {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Parse turns line into a command
func (p *Parser) Parse(line string) (command.Command, error) {
	word, args := SplitCommandWord(line)
	if word == "" {
		return nil, invalidFormat(command.HelpUsage, nil)
	}
	parse, ok := p.parsers[word]
	if !ok {
		return nil, &ParseError{Kind: UnknownCommand, Message: messages.UnknownCommand}
	}
	return parse(args)
}

// SplitCommandWord returns the lowercased command word of line and the
// untrimmed remainder
func SplitCommandWord(line string) (word, args string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), line[i:]
}

func constant(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}
