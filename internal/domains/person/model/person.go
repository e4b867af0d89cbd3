package model

import "slices"

// Person holds the fields shared by every person kind.
// Ids are unique across authors, managers and narrators combined.
type Person struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// FullName returns "firstname lastname".
func (p Person) FullName() string {
	return p.Firstname + " " + p.Lastname
}

// Author writes books. PublisherNITs is the sorted set of distinct publishers
// the author has books with.
type Author struct {
	Person
	PublisherNITs []string `json:"publisher_nits"`
}

func NewAuthor(id int64, firstname, lastname string) Author {
	return Author{Person: Person{ID: id, Firstname: firstname, Lastname: lastname}}
}

func (a Author) Key() int64 { return a.ID }

func (a Author) Clone() Author {
	return Author{Person: a.Person, PublisherNITs: slices.Clone(a.PublisherNITs)}
}

// PublisherQuantity is the number of distinct publishers of the author's books.
func (a Author) PublisherQuantity() int {
	return len(a.PublisherNITs)
}

// AddPublisher records nit; it returns false if it was already present.
func (a *Author) AddPublisher(nit string) bool {
	i, found := slices.BinarySearch(a.PublisherNITs, nit)
	if found {
		return false
	}
	a.PublisherNITs = slices.Insert(a.PublisherNITs, i, nit)
	return true
}

// Manager runs one or more publishers.
type Manager struct {
	Person
}

func NewManager(id int64, firstname, lastname string) Manager {
	return Manager{Person: Person{ID: id, Firstname: firstname, Lastname: lastname}}
}

func (m Manager) Key() int64     { return m.ID }
func (m Manager) Clone() Manager { return Manager{Person: m.Person} }

// Narrator reads audiobooks.
type Narrator struct {
	Person
}

func NewNarrator(id int64, firstname, lastname string) Narrator {
	return Narrator{Person: Person{ID: id, Firstname: firstname, Lastname: lastname}}
}

func (n Narrator) Key() int64      { return n.ID }
func (n Narrator) Clone() Narrator { return Narrator{Person: n.Person} }
