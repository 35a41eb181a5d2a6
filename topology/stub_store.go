package topology

import (
	"sort"
	"strings"
)

// StubStore is an in-memory KeyStore for tests and local development.
// Values maps full key paths to raw values; writes land in Written.
type StubStore struct {
	Values        map[string]string
	LeaderAddress string
	Written       []KVPair
	// Fail, when set, is returned by every operation.
	Fail error
}

func NewStubStore() *StubStore {
	return &StubStore{Values: map[string]string{}}
}

func (store *StubStore) ListValues(prefix string) (map[string]string, error) {
	if store.Fail != nil {
		return nil, store.Fail
	}
	values := map[string]string{}
	for key, value := range store.Values {
		if strings.HasPrefix(key, prefix) {
			values[key] = value
		}
	}
	return values, nil
}

func (store *StubStore) ListKeys(prefix string) ([]string, error) {
	if store.Fail != nil {
		return nil, store.Fail
	}
	keys := []string{}
	for key := range store.Values {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (store *StubStore) Leader() (string, error) {
	if store.Fail != nil {
		return "", store.Fail
	}
	return store.LeaderAddress, nil
}

func (store *StubStore) Put(key, value string) error {
	if store.Fail != nil {
		return store.Fail
	}
	store.Written = append(store.Written, KVPair{Key: key, Value: value})
	return nil
}
