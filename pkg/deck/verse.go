package deck

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/versedeck/versedeck/pkg/errors"
)

// Verse is a single memorization item: a scripture reference and its text
// in one translation.
type Verse struct {
	ID          string    `json:"id" bson:"id"`
	Reference   string    `json:"reference" bson:"reference"`
	Text        string    `json:"text" bson:"text"`
	Translation string    `json:"translation,omitempty" bson:"translation,omitempty"`
	AddedAt     time.Time `json:"added_at" bson:"added_at"`
}

// NewVerse creates a verse with a fresh ID after validating the reference.
func NewVerse(reference, text, translation string) (Verse, error) {
	if err := errors.ValidateReference(reference); err != nil {
		return Verse{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Verse{}, errors.New(errors.ErrCodeInvalidInput, "verse text cannot be empty")
	}
	if translation != "" {
		if err := errors.ValidateTranslation(translation); err != nil {
			return Verse{}, err
		}
	}
	return Verse{
		ID:          uuid.NewString(),
		Reference:   reference,
		Text:        text,
		Translation: translation,
		AddedAt:     time.Now().UTC(),
	}, nil
}

// Pack is an ordered collection of verses reviewed together.
type Pack struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Verses      []Verse   `json:"verses" bson:"verses"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// NewPack creates an empty pack with a fresh ID after validating the name.
func NewPack(name, description string) (Pack, error) {
	if err := errors.ValidatePackName(name); err != nil {
		return Pack{}, err
	}
	now := time.Now().UTC()
	return Pack{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// AddVerse appends v to the pack and bumps UpdatedAt.
// Adding a duplicate reference in the same translation is rejected.
func (p *Pack) AddVerse(v Verse) error {
	for _, existing := range p.Verses {
		if existing.Reference == v.Reference && existing.Translation == v.Translation {
			return errors.New(errors.ErrCodeInvalidInput, "pack %q already contains %s", p.Name, v.Reference)
		}
	}
	p.Verses = append(p.Verses, v)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveVerse deletes the verse with the given ID, preserving order.
func (p *Pack) RemoveVerse(verseID string) error {
	for i, v := range p.Verses {
		if v.ID == verseID {
			p.Verses = append(p.Verses[:i], p.Verses[i+1:]...)
			p.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return errors.New(errors.ErrCodeVerseNotFound, "no verse %q in pack %q", verseID, p.Name)
}

// Verse returns the verse with the given ID.
func (p *Pack) Verse(verseID string) (Verse, bool) {
	for _, v := range p.Verses {
		if v.ID == verseID {
			return v, true
		}
	}
	return Verse{}, false
}
