package topology

import (
	"encoding/json"
	"fmt"
	"sort"
)

// FlattenConfig renders a topology back into individual store writes, one
// pair per card. The key decomposes the card identifier into path segments,
// "<configPrefix>/<host>/<kind>/<serial>/<endpoint>", the value is the
// JSON-encoded configuration object. Hosts come out in sorted order, cards
// in the order their set established.
func FlattenConfig(configPrefix string, t Topology) ([]KVPair, error) {
	hosts := make([]string, 0, len(t))
	for host := range t {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	pairs := []KVPair{}
	for _, host := range hosts {
		set := t[host]
		for _, id := range set.IDs() {
			kind, serial, endpoint, err := id.Split()
			if err != nil {
				return nil, err
			}
			entry, _ := set.Get(id)
			config := entry.Config
			if config == nil {
				config = map[string]interface{}{}
			}
			value, err := json.Marshal(config)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, KVPair{
				Key:   fmt.Sprintf("%s/%s/%s/%s/%s", configPrefix, host, kind, serial, endpoint),
				Value: string(value),
			})
		}
	}
	return pairs, nil
}
