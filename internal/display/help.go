package display

import (
	"strings"
)

// HelpMarkdown builds the command reference from "word: description" usage
// texts. Lines starting with "Example: " become code blocks.
func HelpMarkdown(usages []string) string {
	var b strings.Builder
	b.WriteString("# TAssist commands\n\n")
	b.WriteString("Commands take an `INDEX` from the last listing or a `STUDENTID` such as `A0123456X`.\n")

	for _, usage := range usages {
		word, rest, _ := strings.Cut(usage, ": ")
		b.WriteString("\n## " + word + "\n\n")

		var examples []string
		for _, line := range strings.Split(rest, "\n") {
			if example, ok := strings.CutPrefix(line, "Example: "); ok {
				examples = append(examples, example)
				continue
			}
			desc, params, ok := strings.Cut(line, "Parameters: ")
			if ok {
				b.WriteString(strings.TrimSpace(desc) + "\n\n")
				b.WriteString("Parameters: `" + strings.TrimSpace(params) + "`\n")
				continue
			}
			b.WriteString(line + "\n")
		}

		if len(examples) > 0 {
			b.WriteString("\n```\n")
			for _, e := range examples {
				b.WriteString(e + "\n")
			}
			b.WriteString("```\n")
		}
	}
	return b.String()
}

// ShowHelp prints the command reference
func (p *Printer) ShowHelp(usages []string) {
	p.ShowContentRendered(HelpMarkdown(usages))
}

// ShowHelp prints the command reference to stdout
func ShowHelp(usages []string) { Default.ShowHelp(usages) }
