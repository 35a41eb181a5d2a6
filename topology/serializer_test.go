package topology

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlattenConfig(t *testing.T) {
	config := map[string]interface{}{
		"cru": map[string]interface{}{"clock": "local", "loopback": false},
	}
	set := NewCardSet()
	set.Put("cru_12_1", &CardEntry{Info: Card{Type: "CRU", Serial: "12", Endpoint: 1}, Config: config})
	set.Put("cru_12_3", &CardEntry{Info: Card{Type: "CRU", Serial: "12", Endpoint: 3}})
	cards := Topology{"flpOne": set}

	pairs, err := FlattenConfig("o2/components/readoutcard", cards)
	if err != nil {
		t.Fatalf("FlattenConfig() error = %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("FlattenConfig() pairs = %d, want 2", len(pairs))
	}
	if pairs[0].Key != "o2/components/readoutcard/flpOne/cru/12/1" {
		t.Errorf("FlattenConfig() key = %q", pairs[0].Key)
	}
	if pairs[1].Key != "o2/components/readoutcard/flpOne/cru/12/3" {
		t.Errorf("FlattenConfig() key = %q", pairs[1].Key)
	}
	if pairs[1].Value != "{}" {
		t.Errorf("FlattenConfig() empty config value = %q, want {}", pairs[1].Value)
	}

	restored := map[string]interface{}{}
	if err := json.Unmarshal([]byte(pairs[0].Value), &restored); err != nil {
		t.Fatalf("written value is not json: %v", err)
	}
	if !reflect.DeepEqual(restored, config) {
		t.Errorf("round trip = %v, want %v", restored, config)
	}
}

func TestFlattenConfigHostOrder(t *testing.T) {
	cards := Topology{}
	for _, host := range []string{"flpTwo", "flpOne"} {
		set := NewCardSet()
		set.Put("cru_1_0", &CardEntry{Info: Card{Type: "CRU", Serial: "1"}})
		cards[host] = set
	}
	pairs, err := FlattenConfig("o2/components/readoutcard", cards)
	if err != nil {
		t.Fatalf("FlattenConfig() error = %v", err)
	}
	got := []string{pairs[0].Key, pairs[1].Key}
	want := []string{
		"o2/components/readoutcard/flpOne/cru/1/0",
		"o2/components/readoutcard/flpTwo/cru/1/0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenConfig() keys = %v, want %v", got, want)
	}
}

func TestFlattenConfigMalformedID(t *testing.T) {
	set := NewCardSet()
	set.Put("garbage", &CardEntry{})
	if _, err := FlattenConfig("o2/components/readoutcard", Topology{"flpOne": set}); err == nil {
		t.Error("FlattenConfig() expected error for malformed id")
	}
}
