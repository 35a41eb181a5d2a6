package topology

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCardUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		blob string
		want Card
	}{
		{
			name: "full record",
			blob: `{"type":"CRU","serial":"0561","endpoint":1,"pciAddress":"3b:00.0"}`,
			want: Card{
				Type:     "CRU",
				Serial:   "0561",
				Endpoint: 1,
				Extra:    map[string]json.RawMessage{"pciAddress": json.RawMessage(`"3b:00.0"`)},
			},
		},
		{
			name: "numeric serial and string endpoint",
			blob: `{"type":"CRU","serial":561,"endpoint":"2"}`,
			want: Card{Type: "CRU", Serial: "561", Endpoint: 2, Extra: map[string]json.RawMessage{}},
		},
		{
			name: "endpoint defaults to zero",
			blob: `{"type":"CRORC","serial":"9"}`,
			want: Card{Type: "CRORC", Serial: "9", Extra: map[string]json.RawMessage{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Card{}
			if err := json.Unmarshal([]byte(tt.blob), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCardMarshalRoundTrip(t *testing.T) {
	original := Card{
		Type:     "CRU",
		Serial:   "0561",
		Endpoint: 1,
		Extra: map[string]json.RawMessage{
			"pciAddress": json.RawMessage(`"3b:00.0"`),
			"numa":       json.RawMessage(`0`),
		},
	}
	blob, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	restored := Card{}
	if err := json.Unmarshal(blob, &restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round trip = %+v, want %+v", restored, original)
	}
}

func TestCardID(t *testing.T) {
	card := Card{Type: "CRU", Serial: "0231", Endpoint: 0}
	if got := card.ID(); got != "cru_0231_0" {
		t.Errorf("ID() = %q, want %q", got, "cru_0231_0")
	}
}

func TestCardIDSplit(t *testing.T) {
	tests := []struct {
		name     string
		id       CardID
		kind     string
		serial   string
		endpoint string
		wantErr  bool
	}{
		{name: "plain", id: "cru_0231_0", kind: "cru", serial: "0231", endpoint: "0"},
		{name: "serial with underscore", id: "cru_ab_cd_2", kind: "cru", serial: "ab_cd", endpoint: "2"},
		{name: "malformed", id: "whatever", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, serial, endpoint, err := tt.id.Split()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Split() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if kind != tt.kind || serial != tt.serial || endpoint != tt.endpoint {
				t.Errorf("Split() = %q %q %q, want %q %q %q",
					kind, serial, endpoint, tt.kind, tt.serial, tt.endpoint)
			}
		})
	}
}
