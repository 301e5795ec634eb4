package testutil

import (
	"github.com/quocvuong92/tassist/internal/model"
	"github.com/quocvuong92/tassist/internal/person"
)

// Typical persons, in roster order
var (
	Alice = NewPersonBuilder().WithName("Alice Pauline").WithPhone("94351253").
		WithEmail("alice@example.com").WithClass("T01").WithStudentID("A0000001A").
		WithGithub("https://github.com/alice").WithProgress("10").WithTags("friends").Build()
	Benson = NewPersonBuilder().WithName("Benson Meier").WithPhone("98765432").
		WithEmail("johnd@example.com").WithClass("T02").WithStudentID("A0000002B").
		WithGithub("https://github.com/benson").WithProgress("20").WithTags("owesMoney", "friends").Build()
	Carl = NewPersonBuilder().WithName("Carl Kurz").WithPhone("95352563").
		WithEmail("heinz@example.com").WithClass("T01").WithStudentID("A0000003C").
		WithGithub("").Build()
	Daniel = NewPersonBuilder().WithName("Daniel Meier").WithPhone("87652533").
		WithEmail("cornelia@example.com").WithClass("T03").WithStudentID("A0000004D").
		WithGithub("https://github.com/daniel").WithRepository("https://github.com/daniel/ip").
		WithTags("friends").Build()
	Elle = NewPersonBuilder().WithName("Elle Meyer").WithPhone("9482224").
		WithEmail("werner@example.com").WithClass("T02").WithStudentID("A0000005E").
		WithGithub("").Build()
	Fiona = NewPersonBuilder().WithName("Fiona Kunz").WithPhone("9482427").
		WithEmail("lydia@example.com").WithClass("T03").WithStudentID("A0000006F").
		WithGithub("").Build()
	George = NewPersonBuilder().WithName("George Best").WithPhone("9482442").
		WithEmail("anna@example.com").WithClass("T01").WithStudentID("A0000007G").
		WithGithub("").Build()

	// Amy and Bob are not in the typical roster
	Amy = NewPersonBuilder().WithName("Amy Bee").WithPhone("11111111").
		WithEmail("amy@example.com").WithClass("T04").WithStudentID("A0000008H").
		WithGithub("").WithTags("friend").Build()
	Bob = NewPersonBuilder().WithName("Bob Choo").WithPhone("22222222").
		WithEmail("bob@example.com").WithClass("T04").WithStudentID("A0000009Z").
		WithGithub("https://github.com/bobchoo").WithTags("husband", "friend").Build()
)

// TypicalPersons returns the typical roster
func TypicalPersons() []person.Person {
	return []person.Person{Alice, Benson, Carl, Daniel, Elle, Fiona, George}
}

// TypicalAddressBook returns a fresh address book holding TypicalPersons
func TypicalAddressBook() *model.AddressBook {
	ab := model.NewAddressBook()
	for _, p := range TypicalPersons() {
		if err := ab.Add(p); err != nil {
			panic(err)
		}
	}
	return ab
}

// TypicalManager returns a model over TypicalAddressBook
func TypicalManager() *model.Manager {
	return model.NewManager(TypicalAddressBook())
}
