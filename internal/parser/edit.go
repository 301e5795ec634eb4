package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
	"github.com/quocvuong92/tassist/internal/person"
)

func (p *Parser) parseEdit(args string) (command.Command, error) {
	s := p.syntax
	m := Tokenize(args, s.Name, s.Phone, s.Email, s.Class, s.StudentID, s.Github, s.Tag, s.Progress)

	if strings.TrimSpace(m.Preamble()) == "" {
		return nil, invalidFormat(command.EditUsage, nil)
	}
	target, err := ParseTarget(m.Preamble(), command.EditUsage)
	if err != nil {
		return nil, err
	}
	if err := m.VerifyNoDuplicatePrefixesFor(s.Name, s.Phone, s.Email, s.Class, s.StudentID, s.Github, s.Progress); err != nil {
		return nil, err
	}

	var d command.EditDescriptor
	if d.Name, err = optionalPtr(m, s.Name, person.NewName); err != nil {
		return nil, err
	}
	if d.Phone, err = optionalPtr(m, s.Phone, person.NewPhone); err != nil {
		return nil, err
	}
	if d.Email, err = optionalPtr(m, s.Email, person.NewEmail); err != nil {
		return nil, err
	}
	if d.ClassNumber, err = optionalPtr(m, s.Class, person.NewClassNumber); err != nil {
		return nil, err
	}
	if d.StudentID, err = optionalPtr(m, s.StudentID, person.NewStudentID); err != nil {
		return nil, err
	}
	if d.Github, err = optionalPtr(m, s.Github, person.NewGithub); err != nil {
		return nil, err
	}
	if d.Progress, err = optionalPtr(m, s.Progress, person.NewProgress); err != nil {
		return nil, err
	}
	if d.Tags, err = tagsForEdit(m.AllValues(s.Tag)); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, &ParseError{Kind: InvalidFormat, Message: command.NotEdited}
	}
	return command.Edit{Target: target, Descriptor: d}, nil
}

// tagsForEdit returns nil when no tag was given, and an empty set for a
// single empty "t/"
func tagsForEdit(raw []string) ([]person.Tag, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) == 1 && raw[0] == "" {
		return []person.Tag{}, nil
	}
	tags, err := person.NewTags(raw)
	if err != nil {
		return nil, invalidValue("", err)
	}
	return tags, nil
}
