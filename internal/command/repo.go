package command

import (
	"fmt"

	"github.com/quocvuong92/tassist/internal/messages"
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

const (
	RepoWord  = "repo"
	RepoUsage = RepoWord + ": Sets the repository of the person identified by the STUDENTID or INDEX. " +
		"Existing repository will be overwritten by the input.\n" +
		"Parameters: STUDENTID or INDEX u/GITHUB_USERNAME r/REPOSITORY_NAME\n" +
		"Example: " + RepoWord + " 1 u/tammzz r/ip\n" +
		"or: " + RepoWord + " A1234567X u/tammzz r/tp"
	RepoSuccess               = "Added repository to Person: %s"
	RepoNoIndexOrStudentID    = "Please provide the INDEX or STUDENTID of the person."
	RepoInvalidUsername       = "Invalid GitHub username! It may only contain alphanumeric characters or single hyphens, and cannot begin or end with a hyphen."
	RepoInvalidRepositoryName = "Invalid repository name! It may only contain alphanumeric characters, '.', '_' or '-'."
)

// Repo sets the repository link of the targeted person
type Repo struct {
	Target     Target
	Repository person.Repository
}

func (c Repo) Execute(m model.Model) (Result, error) {
	target, err := c.Target.Resolve(m)
	if err != nil {
		return Result{}, err
	}

	edited := target.WithRepository(c.Repository)
	if err := m.SetPerson(target, edited); err != nil {
		return Result{}, modelError(err)
	}
	m.UpdateFilteredPersonList(model.ShowAll)
	return Result{Feedback: fmt.Sprintf(RepoSuccess, messages.FormatPerson(edited))}, nil
}

func (c Repo) GithubAccount() (string, bool) {
	if c.Repository.IsEmpty() {
		return "", false
	}
	return c.Repository.Owner(), true
}
