package topology

import "errors"

// ErrNotConfigured is returned by every service operation when no key/value
// gateway was supplied at construction time. It is detected before any store
// call is attempted.
var ErrNotConfigured = errors.New("consul gateway not configured")

// KeyStore is the capability set this service needs from the distributed
// key/value store. Prefix scans over empty subtrees return empty collections,
// not errors; transport and leader failures come back as errors and are
// never retried here.
type KeyStore interface {
	// ListValues returns every key under prefix together with its raw value.
	ListValues(prefix string) (map[string]string, error)
	// ListKeys returns every key under prefix, values not fetched.
	ListKeys(prefix string) ([]string, error)
	// Leader returns the address of the current store leader.
	Leader() (string, error)
	// Put writes a single key/value pair.
	Put(key, value string) error
}
