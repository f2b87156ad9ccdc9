// Package kvstore implements the record stores over the key-value
// persistence collaborator. Each entity collection is one JSON array blob
// under a fixed storage key; the keys and field names are a durable
// contract shared with migration tooling.
package kvstore

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
)

// Storage keys of the persisted collections.
const (
	keyEmployees           = "employees"
	keyCompanies           = "companies"
	keyTeams               = "teams"
	keyLeaves              = "leaves"
	keyIllnesses           = "illnesses"
	keyIllnessHistory      = "illnesses_history"
	keyClaims              = "claims"
	keyInvoices            = "invoices"
	keyMedications         = "medications"
	keyPrescriptionHistory = "prescriptions_history"
)

// stored is satisfied by pointers to entities embedding record.Meta.
type stored[T any] interface {
	*T
	RecordID() string
	StampCreated(id string, now time.Time)
	StampUpdated(now time.Time)
}

// collection is the generic CRUD core shared by every record store:
// identifier assignment, created/updated stamping, whole-array reads and
// writes. Update and delete of a missing id are no-ops, lookups of a
// missing id return nil.
type collection[T any, P stored[T]] struct {
	store kv.Store
	key   string
	now   func() time.Time
	newID func() string
}

func newCollection[T any, P stored[T]](store kv.Store, key string) collection[T, P] {
	return collection[T, P]{
		store: store,
		key:   key,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (c collection[T, P]) load() ([]T, error) {
	raw, ok := c.store.GetString(c.key)
	if !ok || raw == "" {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode %q collection: %w", c.key, err)
	}
	return items, nil
}

func (c collection[T, P]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %q collection: %w", c.key, err)
	}
	return c.store.SetString(c.key, string(raw))
}

func (c collection[T, P]) getAll() ([]T, error) {
	return c.load()
}

func (c collection[T, P]) getByID(id string) (*T, error) {
	items, err := c.load()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if P(&items[i]).RecordID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (c collection[T, P]) add(item P) (string, error) {
	items, err := c.load()
	if err != nil {
		return "", err
	}
	item.StampCreated(c.newID(), c.now())
	items = append(items, *item)
	if err := c.save(items); err != nil {
		return "", err
	}
	return item.RecordID(), nil
}

// update applies the mutation to the stored record and refreshes its
// updatedAt stamp. The bool reports whether the id was found.
func (c collection[T, P]) update(id string, apply func(*T)) (bool, error) {
	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() != id {
			continue
		}
		apply(&items[i])
		P(&items[i]).StampUpdated(c.now())
		return true, c.save(items)
	}
	return false, nil
}

// delete removes the record. The bool reports whether the id was found.
func (c collection[T, P]) delete(id string) (bool, error) {
	items, err := c.load()
	if err != nil {
		return false, err
	}
	for i := range items {
		if P(&items[i]).RecordID() != id {
			continue
		}
		items = append(items[:i], items[i+1:]...)
		return true, c.save(items)
	}
	return false, nil
}
