// Package catalog holds the built-in breathing techniques and the practice
// notes shown alongside them. A Catalog never changes after construction.
package catalog

import (
	"fmt"

	"github.com/akyairhashvil/breathe/internal/models"
)

// Entry is a technique plus the descriptive content of its catalog card.
type Entry struct {
	Technique   models.Technique
	Description string
	Pattern     string
	Benefits    []string
	Color       string // hex accent for the card
}

// Catalog is an ordered, read-only lookup table of entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog, rejecting duplicate IDs and invalid techniques.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := e.Technique.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[e.Technique.ID]; dup {
			return nil, fmt.Errorf("duplicate technique %q", e.Technique.ID)
		}
		c.index[e.Technique.ID] = len(c.entries)
		e.Benefits = append([]string(nil), e.Benefits...)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Lookup returns the technique registered under id.
func (c *Catalog) Lookup(id string) (models.Technique, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Technique{}, false
	}
	return c.entries[i].Technique, true
}

// Entry returns the full card for id.
func (c *Catalog) Entry(id string) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	e := c.entries[i]
	e.Benefits = append([]string(nil), e.Benefits...)
	return e, true
}

// Entries returns a copy of every entry in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		e.Benefits = append([]string(nil), e.Benefits...)
		out[i] = e
	}
	return out
}

// Techniques returns the techniques in display order.
func (c *Catalog) Techniques() []models.Technique {
	out := make([]models.Technique, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Technique
	}
	return out
}

// IDs lists technique IDs in display order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Technique.ID
	}
	return out
}

func (c *Catalog) Len() int { return len(c.entries) }

// IndexOf returns the display position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}
