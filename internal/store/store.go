// Package store holds the in-process data aggregate. It is the local
// fallback when the sheet gateway is unconfigured and the read model for
// all page renders in both modes.
package store

import (
	"errors"
	"sync"

	"emurai-be-svc/internal/models"
)

// ErrNotFound is returned when an update or delete targets a missing id
var ErrNotFound = errors.New("record not found")

// Collection keys for the local id sequences
const (
	colKas   = "kas"
	colIuran = "iuran"
	colRonda = "ronda"
	colInfo  = "info"
)

// Store is the explicit application state object. Renderers read snapshots;
// command services mutate through the typed methods. Local ids come from
// per-collection monotonic sequences scoped to this process, reseeded on
// every wholesale replace.
type Store struct {
	mu     sync.RWMutex
	data   models.Dataset
	nextID map[string]int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		nextID: map[string]int64{
			colKas:   1,
			colIuran: 1,
			colRonda: 1,
			colInfo:  1,
		},
	}
}

// Replace swaps in a freshly loaded aggregate wholesale and reseeds the
// local id sequences past the highest loaded id of each collection.
func (s *Store) Replace(ds models.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = ds.Clone()

	s.nextID[colKas] = 1
	for _, e := range s.data.Kas {
		if e.ID >= s.nextID[colKas] {
			s.nextID[colKas] = e.ID + 1
		}
	}
	s.nextID[colIuran] = 1
	for _, r := range s.data.Iuran {
		if r.ID >= s.nextID[colIuran] {
			s.nextID[colIuran] = r.ID + 1
		}
	}
	s.nextID[colRonda] = 1
	for _, r := range s.data.Ronda {
		if r.ID >= s.nextID[colRonda] {
			s.nextID[colRonda] = r.ID + 1
		}
	}
	s.nextID[colInfo] = 1
	for _, i := range s.data.Info {
		if i.ID >= s.nextID[colInfo] {
			s.nextID[colInfo] = i.ID + 1
		}
	}
}

// Snapshot returns a deep copy of the aggregate for rendering
func (s *Store) Snapshot() models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// Empty reports whether no collection holds any record
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Kas) == 0 && len(s.data.Iuran) == 0 &&
		len(s.data.Ronda) == 0 && len(s.data.Info) == 0
}

func (s *Store) claimID(collection string) int64 {
	id := s.nextID[collection]
	s.nextID[collection] = id + 1
	return id
}

// InsertKas appends a ledger entry with a freshly assigned id
func (s *Store) InsertKas(entry models.KasEntry) models.KasEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.claimID(colKas)
	s.data.Kas = append(s.data.Kas, entry)
	return entry
}

// UpdateKas replaces the entry with the same id in place
func (s *Store) UpdateKas(entry models.KasEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Kas {
		if s.data.Kas[i].ID == entry.ID {
			s.data.Kas[i] = entry
			return nil
		}
	}
	return ErrNotFound
}

// DeleteKas removes the entry with the given id
func (s *Store) DeleteKas(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Kas[:0]
	found := false
	for _, e := range s.data.Kas {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return ErrNotFound
	}
	s.data.Kas = kept
	return nil
}

// InsertIuran appends a dues record with a freshly assigned id
func (s *Store) InsertIuran(record models.IuranRecord) models.IuranRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.claimID(colIuran)
	s.data.Iuran = append(s.data.Iuran, record)
	return record
}

// UpdateIuran replaces the record with the same id in place
func (s *Store) UpdateIuran(record models.IuranRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Iuran {
		if s.data.Iuran[i].ID == record.ID {
			s.data.Iuran[i] = record
			return nil
		}
	}
	return ErrNotFound
}

// DeleteIuran removes the record with the given id
func (s *Store) DeleteIuran(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Iuran[:0]
	found := false
	for _, r := range s.data.Iuran {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	s.data.Iuran = kept
	return nil
}

// InsertRonda appends a watch shift with a freshly assigned id
func (s *Store) InsertRonda(shift models.RondaShift) models.RondaShift {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift.ID = s.claimID(colRonda)
	s.data.Ronda = append(s.data.Ronda, shift)
	return shift
}

// UpdateRonda replaces the shift with the same id in place
func (s *Store) UpdateRonda(shift models.RondaShift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Ronda {
		if s.data.Ronda[i].ID == shift.ID {
			s.data.Ronda[i] = shift
			return nil
		}
	}
	return ErrNotFound
}

// DeleteRonda removes the shift with the given id
func (s *Store) DeleteRonda(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Ronda[:0]
	found := false
	for _, r := range s.data.Ronda {
		if r.ID == id {
			found = true
			continue
		}
		kept = append(kept, r)
	}
	if !found {
		return ErrNotFound
	}
	s.data.Ronda = kept
	return nil
}

// InsertInfo prepends an announcement with a freshly assigned id.
// Prepending keeps the collection-order-equals-recency convention the
// dashboard relies on when taking the latest three.
func (s *Store) InsertInfo(item models.InfoItem) models.InfoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.claimID(colInfo)
	s.data.Info = append([]models.InfoItem{item}, s.data.Info...)
	return item
}

// UpdateInfo replaces the announcement with the same id in place
func (s *Store) UpdateInfo(item models.InfoItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Info {
		if s.data.Info[i].ID == item.ID {
			s.data.Info[i] = item
			return nil
		}
	}
	return ErrNotFound
}

// DeleteInfo removes the announcement with the given id
func (s *Store) DeleteInfo(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.data.Info[:0]
	found := false
	for _, i := range s.data.Info {
		if i.ID == id {
			found = true
			continue
		}
		kept = append(kept, i)
	}
	if !found {
		return ErrNotFound
	}
	s.data.Info = kept
	return nil
}
