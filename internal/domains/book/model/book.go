package model

import (
	"encoding/json"

	personModel "megaferia-backend/internal/domains/person/model"
	publisherModel "megaferia-backend/internal/domains/publisher/model"

	"github.com/shopspring/decimal"
)

// Kind identifies the concrete variant of a book.
type Kind string

const (
	KindPrinted Kind = "printed"
	KindDigital Kind = "digital"
	KindAudio   Kind = "audio"
)

// Type labels accepted by the book type filter.
const (
	TypeLabelPrinted = "Libros Impresos"
	TypeLabelDigital = "Libros Digitales"
	TypeLabelAudio   = "Audiolibros"
	TypeLabelAll     = "Todos los Libros"
)

// Edition is the variant-specific part of a book. The set of implementations
// is closed: PrintedEdition, DigitalEdition and AudioEdition.
type Edition interface {
	Kind() Kind
	cloneEdition() Edition
}

// PrintedEdition is a paper book.
type PrintedEdition struct {
	Pages  int `json:"pages"`
	Copies int `json:"copies"`
}

func (PrintedEdition) Kind() Kind              { return KindPrinted }
func (e PrintedEdition) cloneEdition() Edition { return e }

// DigitalEdition is an e-book; Hyperlink may be empty.
type DigitalEdition struct {
	Hyperlink string `json:"hyperlink,omitempty"`
}

func (DigitalEdition) Kind() Kind              { return KindDigital }
func (e DigitalEdition) cloneEdition() Edition { return e }

func (e DigitalEdition) HasHyperlink() bool { return e.Hyperlink != "" }

// AudioEdition is an audiobook read by a narrator. Duration is in minutes.
type AudioEdition struct {
	Duration int                  `json:"duration"`
	Narrator personModel.Narrator `json:"narrator"`
}

func (AudioEdition) Kind() Kind { return KindAudio }

func (e AudioEdition) cloneEdition() Edition {
	return AudioEdition{Duration: e.Duration, Narrator: e.Narrator.Clone()}
}

// Book is identified by its ISBN. Authors, Publisher and the audio narrator
// are copies taken when the book was built.
type Book struct {
	Title     string                   `json:"title"`
	Authors   []personModel.Author     `json:"authors"`
	ISBN      string                   `json:"isbn"`
	Genre     string                   `json:"genre"`
	Format    string                   `json:"format"`
	Value     decimal.Decimal          `json:"value"`
	Publisher publisherModel.Publisher `json:"publisher"`
	Edition   Edition                  `json:"edition"`
}

// Common carries the fields every variant shares, already validated.
type Common struct {
	Title     string
	Authors   []personModel.Author
	ISBN      string
	Genre     string
	Format    string
	Value     decimal.Decimal
	Publisher publisherModel.Publisher
}

// New builds a book copying every referenced entity.
func New(c Common, edition Edition) Book {
	return Book{
		Title:     c.Title,
		Authors:   cloneAuthors(c.Authors),
		ISBN:      c.ISBN,
		Genre:     c.Genre,
		Format:    c.Format,
		Value:     c.Value,
		Publisher: c.Publisher.Clone(),
		Edition:   edition.cloneEdition(),
	}
}

func (b Book) Key() string { return b.ISBN }

func (b Book) Clone() Book {
	clone := b
	clone.Authors = cloneAuthors(b.Authors)
	clone.Publisher = b.Publisher.Clone()
	if b.Edition != nil {
		clone.Edition = b.Edition.cloneEdition()
	}
	return clone
}

// Kind returns the variant tag, or "" for a book without edition.
func (b Book) Kind() Kind {
	if b.Edition == nil {
		return ""
	}
	return b.Edition.Kind()
}

// MarshalJSON adds the variant tag next to the book fields.
func (b Book) MarshalJSON() ([]byte, error) {
	type plain Book
	return json.Marshal(struct {
		plain
		Kind Kind `json:"kind"`
	}{plain(b), b.Kind()})
}

// HasAuthor reports whether authorID is among the book's authors.
func (b Book) HasAuthor(authorID int64) bool {
	for _, a := range b.Authors {
		if a.ID == authorID {
			return true
		}
	}
	return false
}

// MatchesTypeLabel reports whether the book passes the type filter label.
// Unknown labels match nothing.
func (b Book) MatchesTypeLabel(label string) bool {
	switch label {
	case TypeLabelAll:
		return true
	case TypeLabelPrinted:
		return b.Kind() == KindPrinted
	case TypeLabelDigital:
		return b.Kind() == KindDigital
	case TypeLabelAudio:
		return b.Kind() == KindAudio
	default:
		return false
	}
}

func cloneAuthors(authors []personModel.Author) []personModel.Author {
	if authors == nil {
		return nil
	}
	out := make([]personModel.Author, len(authors))
	for i, a := range authors {
		out[i] = a.Clone()
	}
	return out
}
