package topology

import (
	"sort"
	"strconv"
)

// ResolveCards filters one host's raw inventory down to CRUs and assigns
// canonical identifiers. Cards come out ordered by serial then endpoint;
// when two raw entries collide on (serial, endpoint) the one stored under
// the higher index wins, both sorts below are stable to keep that
// deterministic.
func ResolveCards(raw map[string]Card) *CardSet {
	indexes := make([]string, 0, len(raw))
	for index := range raw {
		indexes = append(indexes, index)
	}
	sort.SliceStable(indexes, func(i, j int) bool {
		numI, errI := strconv.Atoi(indexes[i])
		numJ, errJ := strconv.Atoi(indexes[j])
		if errI == nil && errJ == nil {
			return numI < numJ
		}
		return indexes[i] < indexes[j]
	})

	cards := make([]Card, 0, len(raw))
	for _, index := range indexes {
		card := raw[index]
		if !card.IsCRU() {
			continue
		}
		cards = append(cards, card)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return lessCard(cards[i], cards[j])
	})

	set := NewCardSet()
	for _, card := range cards {
		set.Put(card.ID(), &CardEntry{
			Info:   card,
			Config: map[string]interface{}{},
		})
	}
	return set
}

// ResolveInventory runs ResolveCards over every host of a parsed inventory.
func ResolveInventory(inventory Inventory) Topology {
	topology := Topology{}
	for host, raw := range inventory {
		topology[host] = ResolveCards(raw)
	}
	return topology
}
