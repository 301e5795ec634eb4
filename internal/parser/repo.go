package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

func (p *Parser) parseRepo(args string) (command.Command, error) {
	u, r := p.syntax.Username, p.syntax.Repository
	m := Tokenize(args, u, r)

	if !m.HasAll(u, r) {
		return nil, invalidFormat(command.RepoUsage, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(u, r); err != nil {
		return nil, err
	}
	if strings.TrimSpace(m.Preamble()) == "" {
		return nil, &ParseError{Kind: InvalidFormat, Message: command.RepoNoIndexOrStudentID}
	}

	username, _ := m.Value(u)
	if !person.IsValidGithubUsername(username) {
		return nil, invalidFormat(command.RepoInvalidUsername, nil)
	}
	name, _ := m.Value(r)
	if !person.IsValidRepositoryName(name) {
		return nil, invalidFormat(command.RepoInvalidRepositoryName, nil)
	}
	repo, err := person.RepositoryFor(username, name)
	if err != nil {
		return nil, invalidValue("", err)
	}

	target, err := ParseTarget(m.Preamble(), command.RepoUsage)
	if err != nil {
		return nil, err
	}
	return command.Repo{Target: target, Repository: repo}, nil
}
