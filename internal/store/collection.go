// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-abroad-journal/models"
)

// CollectionState is the load state of a [DiaryCollection].
type CollectionState int

const (
	// StateEmpty means nothing was ever loaded or added.
	StateEmpty CollectionState = iota
	// StateLoading means at least one load is in flight.
	StateLoading
	// StateReady means the collection holds a settled result.
	StateReady
)

func (s CollectionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// DiaryCollection is the ordered, session-scoped list of diary entries.
//
// Every method is atomic. Loads are counted rather than serialised: several
// may be in flight at once and each applies its result when it resolves, so
// the last one to resolve wins.
type DiaryCollection struct {
	mu       sync.RWMutex
	entries  []models.DiaryEntry
	settled  bool
	inFlight int
}

// NewDiaryCollection returns an empty collection.
func NewDiaryCollection() *DiaryCollection {
	return &DiaryCollection{}
}

// State reports Loading while any load is in flight, otherwise Ready once
// the collection has been filled and Empty before that.
func (c *DiaryCollection) State() CollectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.inFlight > 0:
		return StateLoading
	case c.settled:
		return StateReady
	default:
		return StateEmpty
	}
}

// BeginLoad marks a load as in flight.
func (c *DiaryCollection) BeginLoad() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inFlight++
}

// FinishLoad replaces the whole collection with entries, keeping their order.
func (c *DiaryCollection) FinishLoad(entries []models.DiaryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = cloneEntries(entries)
	c.settled = true
	if c.inFlight > 0 {
		c.inFlight--
	}
}

// FailLoad ends an in-flight load without touching the entries.
func (c *DiaryCollection) FailLoad() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight > 0 {
		c.inFlight--
	}
}

// Prepend inserts entry at index 0.
func (c *DiaryCollection) Prepend(entry models.DiaryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]models.DiaryEntry, 0, len(c.entries)+1)
	entries = append(entries, cloneEntry(entry))
	c.entries = append(entries, c.entries...)
	c.settled = true
}

// Patch applies the present fields of patch to the entry with id and bumps
// its UpdatedAt to now, never moving it backwards. ID and CreatedAt are
// left alone. It returns [ErrEntryNotFound] and changes nothing when id is
// absent.
func (c *DiaryCollection) Patch(id string, patch models.EntryPatch, now time.Time) (models.DiaryEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return models.DiaryEntry{}, ErrEntryNotFound
	}

	entry := c.entries[idx]
	if patch.Title != nil {
		entry.Title = *patch.Title
	}
	if patch.Category != nil {
		entry.Category = *patch.Category
	}
	if patch.Content != nil {
		entry.Content = *patch.Content
	}
	if now.After(entry.UpdatedAt) {
		entry.UpdatedAt = now
	}

	c.entries[idx] = entry
	return cloneEntry(entry), nil
}

// Entries returns a copy of the collection in order.
func (c *DiaryCollection) Entries() []models.DiaryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneEntries(c.entries)
}

// Get returns the entry with id.
func (c *DiaryCollection) Get(id string) (models.DiaryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return models.DiaryEntry{}, false
	}
	return cloneEntry(c.entries[idx]), true
}

// Len returns the number of entries.
func (c *DiaryCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Reset drops every entry and returns the collection to Empty.
func (c *DiaryCollection) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.settled = false
	c.inFlight = 0
}

func (c *DiaryCollection) indexOf(id string) int {
	for i := range c.entries {
		if c.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneEntries(entries []models.DiaryEntry) []models.DiaryEntry {
	out := make([]models.DiaryEntry, len(entries))
	for i := range entries {
		out[i] = cloneEntry(entries[i])
	}
	return out
}

func cloneEntry(entry models.DiaryEntry) models.DiaryEntry {
	if entry.Location != nil {
		loc := *entry.Location
		entry.Location = &loc
	}
	return entry
}
