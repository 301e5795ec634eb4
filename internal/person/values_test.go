package person

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudentID(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"A0000000B", true},
		{"A1234567Z", true},
		{"A9999999A", true},
		{"a1234567Z", false},
		{"A1234567z", false},
		{"A123456Z", false},
		{"A12345678Z", false},
		{"B1234567Z", false},
		{" A1234567Z", false},
		{"A1234567Z ", false},
		{"", false},
		{"A12345X7Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, err := NewStudentID(tt.raw)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, id.String())
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, StudentIDConstraints, verr.Message)
			assert.Equal(t, tt.raw, verr.Value)
		})
	}
}

func TestStudentIDAcceptsEveryWellFormedValue(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for range 500 {
		raw := fmt.Sprintf("A%07d%c", r.IntN(10_000_000), 'A'+rune(r.IntN(26)))
		_, err := NewStudentID(raw)
		require.NoError(t, err, raw)
		assert.True(t, IsValidStudentID(raw))
	}
}

func TestStudentIDRejectsLowercase(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for range 100 {
		raw := fmt.Sprintf("A%07d%c", r.IntN(10_000_000), 'a'+rune(r.IntN(26)))
		_, err := NewStudentID(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewName(t *testing.T) {
	n, err := NewName("  Alice Pauline ")
	require.NoError(t, err)
	assert.Equal(t, "Alice Pauline", n.String())

	for _, raw := range []string{"", "   ", "^", "peter*", "-dash"} {
		_, err := NewName(raw)
		assert.EqualError(t, err, NameConstraints, raw)
	}

	_, err = NewName("Zoë 2nd")
	assert.NoError(t, err)
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"911", true},
		{"93121534", true},
		{"124293842033123", true},
		{"91", false},
		{"phone", false},
		{"9011p041", false},
		{"9312 1534", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := NewPhone(tt.raw)
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}

func TestNewEmail(t *testing.T) {
	valid := []string{
		"PeterJack_1190@example.com",
		"a@bc",
		"test@localhost",
		"a1+be.d@example1.com",
		"peter_jack@very-very-very-long-example.com",
		"e1234567@u.nus.edu",
	}
	for _, raw := range valid {
		_, err := NewEmail(raw)
		assert.NoError(t, err, raw)
	}

	invalidEmails := []string{
		"",
		"@example.com",
		"peterjackexample.com",
		"peterjack@",
		"peterjack@-",
		"peterjack@exam_ple.com",
		"peter jack@example.com",
		"-peterjack@example.com",
		"peterjack-@example.com",
		"peterjack@example.c",
		"peterjack@example.com-",
		"peter..jack@example.com",
	}
	for _, raw := range invalidEmails {
		_, err := NewEmail(raw)
		assert.EqualError(t, err, EmailConstraints, raw)
	}
}

func TestNewClassNumber(t *testing.T) {
	c, err := NewClassNumber("T01")
	require.NoError(t, err)
	assert.False(t, c.IsUnassigned())

	assert.True(t, UnassignedClass().IsUnassigned())
	assert.Equal(t, DefaultClassNumber, UnassignedClass().String())

	for _, raw := range []string{"t01", "T1", "T001", "01", ""} {
		_, err := NewClassNumber(raw)
		assert.EqualError(t, err, ClassNumberConstraints, raw)
	}
}

func TestNewGithub(t *testing.T) {
	tests := []struct {
		raw      string
		valid    bool
		username string
	}{
		{"", true, ""},
		{"https://github.com/tammzz", true, "tammzz"},
		{"https://github.com/tammzz/", true, "tammzz"},
		{"https://github.com/a-b-c", true, "a-b-c"},
		{"http://github.com/tammzz", false, ""},
		{"https://gitlab.com/tammzz", false, ""},
		{"https://github.com/", false, ""},
		{"https://github.com/-tammzz", false, ""},
		{"https://github.com/tammzz-", false, ""},
		{"https://github.com/a--b", false, ""},
		{"https://github.com/tammzz/repo", false, ""},
		{"github.com/tammzz", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g, err := NewGithub(tt.raw)
			if !tt.valid {
				assert.EqualError(t, err, GithubConstraints)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw == "", g.IsEmpty())
			assert.Equal(t, tt.username, g.Username())
		})
	}
}

func TestRepository(t *testing.T) {
	r, err := RepositoryFor("tammzz", "ip.tp-1")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/tammzz/ip.tp-1", r.String())
	assert.Equal(t, "tammzz", r.Owner())

	parsed, err := NewRepository(r.String())
	require.NoError(t, err)
	assert.Equal(t, r, parsed)

	empty, err := NewRepository("")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	for _, raw := range []string{
		"https://github.com/tammzz",
		"https://github.com/tammzz/bad repo",
		"https://example.com/tammzz/repo",
		"https://github.com/-x/repo",
	} {
		_, err := NewRepository(raw)
		assert.EqualError(t, err, RepositoryConstraints, raw)
	}

	_, err = RepositoryFor("tammzz", "..")
	assert.Error(t, err)
}

func TestNewProgress(t *testing.T) {
	for _, raw := range []string{"0", "7", "50", "100", "007"} {
		_, err := NewProgress(raw)
		assert.NoError(t, err, raw)
	}
	for _, raw := range []string{"", "-1", "101", "1000", "50%", "4.5", "+5"} {
		_, err := NewProgress(raw)
		assert.EqualError(t, err, ProgressConstraints, raw)
	}

	p, err := NewProgress("042")
	require.NoError(t, err)
	assert.Equal(t, 42, p.Int())
	assert.Equal(t, "42", p.String())
}

func TestNewTags(t *testing.T) {
	tags, err := NewTags([]string{"friends", "colleague", "friends"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "colleague", tags[0].String())
	assert.Equal(t, "friends", tags[1].String())

	_, err = NewTags([]string{"ok", "not ok"})
	assert.EqualError(t, err, TagConstraints)
}
