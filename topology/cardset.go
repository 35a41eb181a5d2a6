package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CardEntry couples a card's inventory record with its stored configuration.
// Config stays an empty object until the configuration store has something
// for this identity.
type CardEntry struct {
	Info   Card                   `json:"info"`
	Config map[string]interface{} `json:"config"`
}

// CardSet is an insertion-ordered CardID to CardEntry mapping. The order is
// established by the resolver (serial then endpoint ascending) and has to
// survive into rendered JSON and into write-back key sequences.
type CardSet struct {
	order   []CardID
	entries map[CardID]*CardEntry
}

func NewCardSet() *CardSet {
	return &CardSet{entries: map[CardID]*CardEntry{}}
}

// Put stores an entry under the given identifier. An existing identifier
// keeps its position but the entry is replaced, so the last write wins.
func (set *CardSet) Put(id CardID, entry *CardEntry) {
	if _, exists := set.entries[id]; !exists {
		set.order = append(set.order, id)
	}
	set.entries[id] = entry
}

func (set *CardSet) Get(id CardID) (*CardEntry, bool) {
	entry, exists := set.entries[id]
	return entry, exists
}

func (set *CardSet) Len() int {
	return len(set.order)
}

// IDs returns the identifiers in insertion order.
func (set *CardSet) IDs() []CardID {
	ids := make([]CardID, len(set.order))
	copy(ids, set.order)
	return ids
}

func (set *CardSet) MarshalJSON() ([]byte, error) {
	return set.marshalOrdered(func(entry *CardEntry) (interface{}, error) {
		return entry, nil
	})
}

func (set *CardSet) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	open, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("card set must be a json object")
	}
	*set = *NewCardSet()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		id := CardID(keyToken.(string))
		entry := &CardEntry{}
		if err := decoder.Decode(entry); err != nil {
			return err
		}
		if entry.Config == nil {
			entry.Config = map[string]interface{}{}
		}
		set.Put(id, entry)
	}
	_, err = decoder.Token()
	return err
}

func (set *CardSet) marshalOrdered(value func(*CardEntry) (interface{}, error)) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for index, id := range set.order {
		if index > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		item, err := value(set.entries[id])
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// InfoSet renders a CardSet with configuration stripped, the shape served by
// the card listing endpoint.
type InfoSet struct {
	set *CardSet
}

func (view InfoSet) MarshalJSON() ([]byte, error) {
	return view.set.marshalOrdered(func(entry *CardEntry) (interface{}, error) {
		return entry.Info, nil
	})
}

// Topology maps host names to their resolved card sets. It is rebuilt from
// the store on every request, never cached.
type Topology map[string]*CardSet

// InfoOnly returns the inventory-only view of the topology, configuration
// objects removed.
func (t Topology) InfoOnly() map[string]InfoSet {
	view := make(map[string]InfoSet, len(t))
	for host, set := range t {
		view[host] = InfoSet{set: set}
	}
	return view
}

// KVPair is one write-back unit: a full store key and its JSON-encoded
// configuration value.
type KVPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
