package person

import (
	"regexp"
	"strconv"
	"strings"
)

// Constraint messages shown to the user when a raw value is rejected
const (
	NameConstraints = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

	PhoneConstraints = "Phone numbers should only contain numbers, and it should be at least 3 digits long"

	EmailConstraints = "Emails should be of the format local-part@domain and adhere to the following constraints:\n" +
		"1. The local-part should only contain alphanumeric characters and these special characters, excluding " +
		"the parentheses, (+_.-). The local-part may not start or end with any special characters.\n" +
		"2. This is followed by a '@' and then a domain name. The domain name is made up of domain labels " +
		"separated by periods.\n" +
		"The domain name must:\n" +
		"    - end with a domain label at least 2 characters long\n" +
		"    - have each domain label start and end with alphanumeric characters\n" +
		"    - have each domain label consist of alphanumeric characters, separated only by hyphens, if any."

	StudentIDConstraints = "The Student ID must follow the format AXXXXXXXN, where:\n" +
		"- A is the uppercase letter 'A'.\n" +
		"- X represents seven digits (0-9).\n" +
		"- N is any uppercase letter from A to Z.\n" +
		"Both 'A' and 'N' must be capitalized."

	ClassNumberConstraints = "Class numbers should be of the format TXX, where XX are two digits. T00 means unassigned"

	GithubConstraints = "GitHub links should be empty or of the format https://github.com/{username}"

	RepositoryConstraints = "Repositories should be empty or of the format https://github.com/{username}/{repository}"

	ProgressConstraints = "Progress should be a whole number between 0 and 100"

	TagConstraints = "Tags names should be alphanumeric"
)

// DefaultClassNumber marks a student who has no tutorial class yet
const DefaultClassNumber = "T00"

// GithubBaseURL is the only host accepted for profile and repository links
const GithubBaseURL = "https://github.com/"

var (
	nameRegex        = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRegex       = regexp.MustCompile(`^\d{3,}$`)
	emailRegex       = regexp.MustCompile(`^[A-Za-z0-9]+([+_.-][A-Za-z0-9]+)*@([A-Za-z0-9]+(-[A-Za-z0-9]+)*\.)*([A-Za-z0-9]+(-[A-Za-z0-9]+)*){2,}$`)
	studentIDRegex   = regexp.MustCompile(`^A\d{7}[A-Z]$`)
	classNumberRegex = regexp.MustCompile(`^T\d{2}$`)
	usernameRegex    = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)
	repoNameRegex    = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)
	progressRegex    = regexp.MustCompile(`^\d{1,3}$`)
	tagRegex         = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// Name is a student's display name
type Name struct{ value string }

// NewName validates and creates a Name
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if !IsValidName(v) {
		return Name{}, invalid("name", raw, NameConstraints)
	}
	return Name{value: v}, nil
}

// IsValidName reports whether s is a valid name
func IsValidName(s string) bool { return nameRegex.MatchString(s) }

func (n Name) String() string { return n.value }

// Phone is a contact number of at least three digits
type Phone struct{ value string }

// NewPhone validates and creates a Phone
func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if !IsValidPhone(v) {
		return Phone{}, invalid("phone", raw, PhoneConstraints)
	}
	return Phone{value: v}, nil
}

// IsValidPhone reports whether s is a valid phone number
func IsValidPhone(s string) bool { return phoneRegex.MatchString(s) }

func (p Phone) String() string { return p.value }

// Email is a contact address
type Email struct{ value string }

// NewEmail validates and creates an Email
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if !IsValidEmail(v) {
		return Email{}, invalid("email", raw, EmailConstraints)
	}
	return Email{value: v}, nil
}

// IsValidEmail reports whether s is a valid email address
func IsValidEmail(s string) bool { return emailRegex.MatchString(s) }

func (e Email) String() string { return e.value }

// StudentID is the business identity of a Person. It is never case-normalized.
type StudentID struct{ value string }

// NewStudentID validates and creates a StudentID
func NewStudentID(raw string) (StudentID, error) {
	if !IsValidStudentID(raw) {
		return StudentID{}, invalid("student ID", raw, StudentIDConstraints)
	}
	return StudentID{value: raw}, nil
}

// IsValidStudentID reports whether s is a valid student ID
func IsValidStudentID(s string) bool { return studentIDRegex.MatchString(s) }

func (id StudentID) String() string { return id.value }

// ClassNumber is a tutorial class such as T01. T00 is unassigned.
type ClassNumber struct{ value string }

// NewClassNumber validates and creates a ClassNumber
func NewClassNumber(raw string) (ClassNumber, error) {
	v := strings.TrimSpace(raw)
	if !IsValidClassNumber(v) {
		return ClassNumber{}, invalid("class number", raw, ClassNumberConstraints)
	}
	return ClassNumber{value: v}, nil
}

// UnassignedClass returns the sentinel class number
func UnassignedClass() ClassNumber { return ClassNumber{value: DefaultClassNumber} }

// IsValidClassNumber reports whether s is a valid class number
func IsValidClassNumber(s string) bool { return classNumberRegex.MatchString(s) }

// IsUnassigned reports whether the class is the T00 sentinel
func (c ClassNumber) IsUnassigned() bool { return c.value == DefaultClassNumber }

func (c ClassNumber) String() string { return c.value }

// Github is a GitHub profile URL, or empty when the student has none
type Github struct{ value string }

// NewGithub validates and creates a Github link. An empty string is allowed.
func NewGithub(raw string) (Github, error) {
	if !IsValidGithub(raw) {
		return Github{}, invalid("github", raw, GithubConstraints)
	}
	return Github{value: raw}, nil
}

// IsValidGithub reports whether s is empty or a GitHub profile URL
func IsValidGithub(s string) bool {
	if s == "" {
		return true
	}
	rest, ok := strings.CutPrefix(s, GithubBaseURL)
	if !ok {
		return false
	}
	return IsValidGithubUsername(strings.TrimSuffix(rest, "/"))
}

// IsValidGithubUsername reports whether s can be a GitHub account name
func IsValidGithubUsername(s string) bool {
	return usernameRegex.MatchString(s) && !strings.Contains(s, "--")
}

// IsEmpty reports whether no profile is set
func (g Github) IsEmpty() bool { return g.value == "" }

// Username returns the account name in the URL, or "" when empty
func (g Github) Username() string {
	return strings.TrimSuffix(strings.TrimPrefix(g.value, GithubBaseURL), "/")
}

func (g Github) String() string { return g.value }

// Repository is a GitHub repository URL, or empty
type Repository struct{ value string }

// NewRepository validates and creates a Repository from a full URL
func NewRepository(raw string) (Repository, error) {
	if raw == "" {
		return Repository{}, nil
	}
	rest, ok := strings.CutPrefix(raw, GithubBaseURL)
	if !ok {
		return Repository{}, invalid("repository", raw, RepositoryConstraints)
	}
	user, name, ok := strings.Cut(strings.TrimSuffix(rest, "/"), "/")
	if !ok {
		return Repository{}, invalid("repository", raw, RepositoryConstraints)
	}
	return RepositoryFor(user, name)
}

// RepositoryFor builds the repository URL of user/name
func RepositoryFor(user, name string) (Repository, error) {
	raw := GithubBaseURL + user + "/" + name
	if !IsValidGithubUsername(user) || !IsValidRepositoryName(name) {
		return Repository{}, invalid("repository", raw, RepositoryConstraints)
	}
	return Repository{value: raw}, nil
}

// IsValidRepositoryName reports whether s can be a GitHub repository name
func IsValidRepositoryName(s string) bool {
	return repoNameRegex.MatchString(s) && s != "." && s != ".."
}

// IsEmpty reports whether no repository is set
func (r Repository) IsEmpty() bool { return r.value == "" }

// Owner returns the account that owns the repository
func (r Repository) Owner() string {
	owner, _, _ := strings.Cut(strings.TrimPrefix(r.value, GithubBaseURL), "/")
	return owner
}

func (r Repository) String() string { return r.value }

// Progress is a completion percentage between 0 and 100
type Progress struct{ value int }

// NewProgress validates and creates a Progress from its decimal form
func NewProgress(raw string) (Progress, error) {
	if !progressRegex.MatchString(raw) {
		return Progress{}, invalid("progress", raw, ProgressConstraints)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n > 100 {
		return Progress{}, invalid("progress", raw, ProgressConstraints)
	}
	return Progress{value: n}, nil
}

// Int returns the percentage
func (p Progress) Int() int { return p.value }

func (p Progress) String() string { return strconv.Itoa(p.value) }

// Tag is a free-form label attached to a student
type Tag struct{ name string }

// NewTag validates and creates a Tag
func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	if !tagRegex.MatchString(v) {
		return Tag{}, invalid("tag", raw, TagConstraints)
	}
	return Tag{name: v}, nil
}

// NewTags validates every raw value and returns the resulting set
func NewTags(raw []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return normalizeTags(tags), nil
}

func (t Tag) String() string { return t.name }
