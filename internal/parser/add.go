package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

func (p *Parser) parseAdd(args string) (command.Command, error) {
	s := p.syntax
	m := Tokenize(args, s.Name, s.Phone, s.Email, s.Class, s.StudentID, s.Github, s.Tag, s.Progress)

	if !m.HasAll(s.Name, s.Phone, s.StudentID, s.Email) || strings.TrimSpace(m.Preamble()) != "" {
		return nil, invalidFormat(command.AddUsage, nil)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(s.Name, s.Phone, s.Email, s.Class, s.StudentID, s.Github, s.Progress); err != nil {
		return nil, err
	}

	var (
		d   person.Details
		err error
	)
	if d.Name, err = required(m, s.Name, person.NewName); err != nil {
		return nil, err
	}
	if d.Phone, err = required(m, s.Phone, person.NewPhone); err != nil {
		return nil, err
	}
	if d.Email, err = required(m, s.Email, person.NewEmail); err != nil {
		return nil, err
	}
	if d.StudentID, err = required(m, s.StudentID, person.NewStudentID); err != nil {
		return nil, err
	}
	if d.ClassNumber, err = optional(m, s.Class, person.NewClassNumber, person.UnassignedClass()); err != nil {
		return nil, err
	}
	if d.Github, err = optional(m, s.Github, person.NewGithub, person.Github{}); err != nil {
		return nil, err
	}
	if d.Progress, err = optional(m, s.Progress, person.NewProgress, person.Progress{}); err != nil {
		return nil, err
	}
	if d.Tags, err = person.NewTags(m.AllValues(s.Tag)); err != nil {
		return nil, invalidValue("", err)
	}

	return command.Add{Person: person.New(d)}, nil
}
