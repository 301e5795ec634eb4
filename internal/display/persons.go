package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/quocvuong92/tassist/internal/person"
)

const (
	maxNameWidth   = 24
	maxGithubWidth = 32
	maxTagsWidth   = 24
	ellipsis       = "…"
)

var personColumns = []string{"#", "Name", "Student ID", "Class", "GitHub", "Progress", "Tags"}

// ShowPersons prints persons as a table numbered from 1, matching the
// indexes commands accept
func (p *Printer) ShowPersons(persons []person.Person) {
	if len(persons) == 0 {
		fmt.Fprintln(p.out, mutedStyle.Render("No students to show."))
		return
	}

	rows := make([][]string, 0, len(persons))
	for i, s := range persons {
		rows = append(rows, personRow(i+1, s))
	}

	widths := make([]int, len(personColumns))
	for i, h := range personColumns {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	fmt.Fprintln(p.out, headerStyle.Render(formatRow(personColumns, widths)))
	for _, row := range rows {
		fmt.Fprintln(p.out, formatRow(row, widths))
	}
}

// ShowPersons prints persons to stdout
func ShowPersons(persons []person.Person) { Default.ShowPersons(persons) }

func personRow(index int, s person.Person) []string {
	github := s.Github().Username()
	if !s.Repository().IsEmpty() {
		github = strings.TrimPrefix(s.Repository().String(), person.GithubBaseURL)
	}

	tags := make([]string, 0, len(s.Tags()))
	for _, t := range s.Tags() {
		tags = append(tags, t.String())
	}

	return []string{
		strconv.Itoa(index),
		runewidth.Truncate(s.Name().String(), maxNameWidth, ellipsis),
		s.StudentID().String(),
		s.ClassNumber().String(),
		runewidth.Truncate(github, maxGithubWidth, ellipsis),
		s.Progress().String() + "%",
		runewidth.Truncate(strings.Join(tags, ","), maxTagsWidth, ellipsis),
	}
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		b.WriteString(runewidth.FillRight(cell, widths[i]))
	}
	return b.String()
}
