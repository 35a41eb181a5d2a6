package topology

import (
	"encoding/json"
	"ovis/cardmap/util"
	"strings"
)

// cardsLeaf is the only inventory leaf holding card records. Hosts keep
// other leaves ("info" and friends) under the same subtree; those are not
// topology input.
const cardsLeaf = "cards"

// Inventory is the raw per-host card listing as stored: host name to store
// index to card descriptor.
type Inventory map[string]map[string]Card

// ParseInventory turns a raw value scan of the hardware subtree into typed
// per-host card records. Only "<prefix>/<host>/cards" keys contribute; a
// malformed card blob fails the whole parse instead of dropping the host.
func ParseInventory(prefix string, raw map[string]string) (Inventory, error) {
	inventory := Inventory{}
	for key, value := range raw {
		host, ok := hostLeafKey(prefix, key)
		if !ok {
			continue
		}
		cards := map[string]Card{}
		if err := json.Unmarshal([]byte(value), &cards); err != nil {
			return nil, util.NewError(err, "malformed card inventory for host %s", host)
		}
		inventory[host] = cards
	}
	return inventory, nil
}

// hostLeafKey extracts the host name from "<prefix>/<host>/cards" keys and
// rejects everything else.
func hostLeafKey(prefix, key string) (string, bool) {
	rest, ok := underPrefix(prefix, key)
	if !ok {
		return "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != cardsLeaf {
		return "", false
	}
	return parts[0], true
}

// underPrefix returns the part of key below the prefix. Keys rooted
// elsewhere, and bare "<prefix>/<host>" keys with nothing underneath, do
// not qualify.
func underPrefix(prefix, key string) (string, bool) {
	rest := strings.TrimPrefix(key, prefix+"/")
	if rest == key || rest == "" || !strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
