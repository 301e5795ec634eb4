package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	GithubWord  = "github"
	GithubUsage = GithubWord + ": Edits the github of the person identified by the STUDENTID or INDEX. " +
		"Existing github will be overwritten by the input.\n" +
		"Parameters: STUDENTID or INDEX , g/[GITHUB_URL]\n" +
		"Example: " + GithubWord + " 2 g/https://github.com/tammzz\n" +
		"or: " + GithubWord + " AxxxxxxxB g/https://github.com/tammzz"
	GithubAdded   = "Added github to Person: %s"
	GithubRemoved = "Removed github from Person: %s"
	GithubEmpty   = "Github is empty."
	GithubInvalid = "Invalid GitHub URL! The correct format is: https://github.com/{username}"
)

// Github sets or clears the GitHub link of the targeted person
type Github struct {
	Target Target
	Github person.Github
}

func (c Github) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithGithub(c.Github)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)

	format := GithubAdded
	if c.Github.IsEmpty() {
		format = GithubRemoved
	}
	return Result{Feedback: fmt.Sprintf(format, messages.FormatPerson(edited))}, nil
}

func (c Github) GithubAccount() (string, bool) {
	return accountOf(c.Github)
}
