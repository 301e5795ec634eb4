package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

func (p *Parser) parseGithub(args string) (command.Command, error) {
	g := p.syntax.Github
	m := Tokenize(args, g)

	if strings.TrimSpace(m.Preamble()) == "" || !m.Has(g) {
		return nil, invalidFormat(command.GithubUsage, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(g); err != nil {
		return nil, err
	}

	raw, _ := m.Value(g)
	link, err := person.NewGithub(raw)
	if err != nil {
		return nil, invalidValue(command.GithubInvalid, err)
	}

	target, err := ParseTarget(m.Preamble(), command.GithubUsage)
	if err != nil {
		return nil, err
	}
	return command.Github{Target: target, Github: link}, nil
}
