package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

func (p *Parser) parseClass(args string) (command.Command, error) {
	c := p.syntax.Class
	m := Tokenize(args, c)

	if strings.TrimSpace(m.Preamble()) == "" {
		return nil, invalidFormat(command.ClassUsage, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(c); err != nil {
		return nil, err
	}
	if !m.Has(c) {
		return nil, invalidFormat(command.ClassUsage, nil)
	}

	raw, _ := m.Value(c)
	class, err := person.NewClassNumber(raw)
	if err != nil {
		return nil, invalidValue(command.ClassInvalid, err)
	}

	target, err := ParseTarget(m.Preamble(), command.ClassUsage)
	if err != nil {
		return nil, err
	}
	return command.Class{Target: target, ClassNumber: class}, nil
}

func (p *Parser) parseProgress(args string) (command.Command, error) {
	pr := p.syntax.Progress
	m := Tokenize(args, pr)

	if strings.TrimSpace(m.Preamble()) == "" || !m.Has(pr) {
		return nil, invalidFormat(command.ProgressUsage, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(pr); err != nil {
		return nil, err
	}

	progress, err := required(m, pr, person.NewProgress)
	if err != nil {
		return nil, err
	}

	target, err := ParseTarget(m.Preamble(), command.ProgressUsage)
	if err != nil {
		return nil, err
	}
	return command.Progress{Target: target, Progress: progress}, nil
}
