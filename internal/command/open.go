package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
)

const (
	OpenWord  = "open"
	OpenUsage = OpenWord + ": Opens the repository, or else the GitHub profile, of the person " +
		"identified by the STUDENTID or INDEX in the browser.\n" +
		"Parameters: STUDENTID or INDEX\n" +
		"Example: " + OpenWord + " 1\n" +
		"or: " + OpenWord + " A1234567X"
	OpenSuccess = "Opening GitHub page of Person: %s"
)

// Open asks the UI to show the targeted person's repository or profile
type Open struct {
	Target Target
}

func (Open) readOnly() {}

func (c Open) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	url := target.Repository().String()
	if url == "" {
		url = target.Github().String()
	}
	if url == "" {
		return Result{}, executionError(InvalidGithub, GithubEmpty, nil)
	}
	return Result{
		Feedback: fmt.Sprintf(OpenSuccess, messages.FormatPerson(target)),
		OpenURL:  url,
	}, nil
}
