package parser

import (
	"strings"

	"github.com/quocvuong92/tassist/internal/command"
)

func (p *Parser) parseDelete(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.DeleteUsage, nil)
	}
	target, err := ParseTarget(args, command.DeleteUsage)
	if err != nil {
		return nil, err
	}
	return command.Delete{Target: target}, nil
}

func (p *Parser) parseOpen(args string) (command.Command, error) {
	if strings.TrimSpace(args) == "" {
		return nil, invalidFormat(command.OpenUsage, nil)
	}
	target, err := ParseTarget(args, command.OpenUsage)
	if err != nil {
		return nil, err
	}
	return command.Open{Target: target}, nil
}

func (p *Parser) parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage, nil)
	}
	return command.Find{Keywords: keywords}, nil
}
