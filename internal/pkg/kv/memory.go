package kv

import "strconv"

// MemoryStore keeps everything in a plain map. Used by tests and as a
// throwaway backend when no storage path is configured.
type MemoryStore struct {
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) GetString(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) SetString(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryStore) GetBoolean(key string) (bool, bool) {
	v, ok := m.values[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

func (m *MemoryStore) SetBoolean(key string, value bool) error {
	m.values[key] = strconv.FormatBool(value)
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.values, key)
	return nil
}
