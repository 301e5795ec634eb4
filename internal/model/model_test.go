package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
	"github.com/quocvuong92/tassist/internal/testutil"
)

func TestAddressBookAddRejectsDuplicateStudentID(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	clash := testutil.PersonBuilderFrom(testutil.Bob).WithStudentID(testutil.Alice.StudentID().String()).Build()

	err := ab.Add(clash)
	require.ErrorIs(t, err, model.ErrDuplicatePerson)
	assert.Equal(t, len(testutil.TypicalPersons()), ab.Len())
}

func TestAddressBookSet(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	edited := testutil.PersonBuilderFrom(testutil.Benson).WithPhone("999").Build()

	require.NoError(t, ab.Set(testutil.Benson, edited))
	assert.Equal(t, edited, ab.Persons()[1], "position is kept")

	t.Run("target missing", func(t *testing.T) {
		err := ab.Set(testutil.Bob, testutil.Bob)
		assert.ErrorIs(t, err, model.ErrPersonNotFound)
	})

	t.Run("edited clashes with another person", func(t *testing.T) {
		clash := testutil.PersonBuilderFrom(testutil.Carl).WithStudentID(testutil.Alice.StudentID().String()).Build()
		err := ab.Set(testutil.Carl, clash)
		assert.ErrorIs(t, err, model.ErrDuplicatePerson)
	})
}

func TestAddressBookRemove(t *testing.T) {
	ab := testutil.TypicalAddressBook()
	require.NoError(t, ab.Remove(testutil.Carl))
	assert.False(t, ab.Has(testutil.Carl))
	assert.ErrorIs(t, ab.Remove(testutil.Carl), model.ErrPersonNotFound)
}

func TestNewAddressBookFromRejectsDuplicates(t *testing.T) {
	_, err := model.NewAddressBookFrom([]person.Person{testutil.Alice, testutil.Alice})
	assert.ErrorIs(t, err, model.ErrDuplicatePerson)
}

func TestManagerFilteredView(t *testing.T) {
	m := testutil.TypicalManager()
	assert.Len(t, m.FilteredPersons(), 7)

	m.UpdateFilteredPersonList(model.NameContainsKeywords([]string{"meier"}))
	assert.Equal(t, []person.Person{testutil.Benson, testutil.Daniel}, m.FilteredPersons())

	m.UpdateFilteredPersonList(model.ShowAll)
	assert.Len(t, m.FilteredPersons(), 7)
}

func TestManagerSnapshotsAreIndependent(t *testing.T) {
	m := testutil.TypicalManager()
	snapshot := m.AddressBook()

	require.NoError(t, m.DeletePerson(testutil.Alice))
	assert.Equal(t, 7, snapshot.Len())

	m.SetAddressBook(snapshot)
	assert.True(t, m.HasPerson(testutil.Alice))

	require.NoError(t, snapshot.Remove(testutil.Benson))
	assert.True(t, m.HasPerson(testutil.Benson))
}

func TestNameContainsKeywords(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		person   string
		want     bool
	}{
		{"single keyword", []string{"Alice"}, "Alice Bob", true},
		{"mixed case", []string{"aLIce", "bOB"}, "Alice Bob", true},
		{"one of many", []string{"Bob", "Carol"}, "Alice Bob", true},
		{"no match", []string{"Carol"}, "Alice Bob", false},
		{"partial word is not a match", []string{"Ali"}, "Alice Bob", false},
		{"empty keywords", nil, "Alice", false},
		{"unicode fold", []string{"zoë"}, "ZOË Tan", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.NewPersonBuilder().WithName(tt.person).Build()
			assert.Equal(t, tt.want, model.NameContainsKeywords(tt.keywords)(p))
		})
	}
}
