package topology

import (
	"encoding/json"
	"fmt"
	"ovis/cardmap/util"
	"strconv"
	"strings"
)

// KindCRU is the only card type exposed as a configurable unit. Everything
// else in the inventory (CRORCs and whatever comes next) stays
// inventory-only and never gets an identifier.
const KindCRU = "cru"

// Card is a single readout card as described by the hardware inventory.
// Only Type, Serial and Endpoint are inspected by this service; any other
// descriptor field is carried in Extra untouched, so the inventory schema
// can grow without breaking round-trips.
type Card struct {
	Type     string
	Serial   string
	Endpoint int
	Extra    map[string]json.RawMessage
}

// IsCRU reports whether the card type matches KindCRU, case-insensitively.
func (c Card) IsCRU() bool {
	return strings.EqualFold(c.Type, KindCRU)
}

// ID returns the canonical composite identifier of the card, for example
// "cru_0231_0". Identity within a host is the (serial, endpoint) pair.
func (c Card) ID() CardID {
	return CardID(fmt.Sprintf("%s_%s_%d", KindCRU, c.Serial, c.Endpoint))
}

func (c *Card) UnmarshalJSON(data []byte) error {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	card := Card{Extra: map[string]json.RawMessage{}}
	for name, value := range fields {
		switch name {
		case "type":
			if err := json.Unmarshal(value, &card.Type); err != nil {
				return util.NewError(err, "invalid card type")
			}
		case "serial":
			serial, err := flexibleString(value)
			if err != nil {
				return util.NewError(err, "invalid card serial")
			}
			card.Serial = serial
		case "endpoint":
			endpoint, err := flexibleInt(value)
			if err != nil {
				return util.NewError(err, "invalid card endpoint")
			}
			card.Endpoint = endpoint
		default:
			card.Extra[name] = value
		}
	}
	*c = card
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	for name, value := range c.Extra {
		fields[name] = value
	}
	typeJson, err := json.Marshal(c.Type)
	if err != nil {
		return nil, err
	}
	serialJson, err := json.Marshal(c.Serial)
	if err != nil {
		return nil, err
	}
	fields["type"] = typeJson
	fields["serial"] = serialJson
	fields["endpoint"] = json.RawMessage(strconv.Itoa(c.Endpoint))
	return json.Marshal(fields)
}

// flexibleString accepts both JSON string and number encodings, the
// inventory is not consistent about which one it stores.
func flexibleString(raw json.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err != nil {
		return "", err
	}
	return asNumber.String(), nil
}

func flexibleInt(raw json.RawMessage) (int, error) {
	var asInt int
	if err := json.Unmarshal(raw, &asInt); err == nil {
		return asInt, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return 0, err
	}
	return strconv.Atoi(asString)
}

// lessCard orders cards by serial first, then by endpoint. Serials that are
// both numeric compare by value, so "9" sorts before "10" regardless of
// string length; anything else falls back to lexical order.
func lessCard(a, b Card) bool {
	if a.Serial != b.Serial {
		if less, equal := lessSerial(a.Serial, b.Serial); !equal {
			return less
		}
	}
	return a.Endpoint < b.Endpoint
}

// lessSerial compares two serials as arbitrary-precision decimal strings:
// leading zeros stripped, shorter digit string first, equal lengths
// lexically. Non-digit serials compare lexically; equal reports numerically
// equal spellings such as "01" and "1".
func lessSerial(a, b string) (less, equal bool) {
	if !isDigits(a) || !isDigits(b) {
		return a < b, false
	}
	trimmedA := strings.TrimLeft(a, "0")
	trimmedB := strings.TrimLeft(b, "0")
	if len(trimmedA) != len(trimmedB) {
		return len(trimmedA) < len(trimmedB), false
	}
	if trimmedA != trimmedB {
		return trimmedA < trimmedB, false
	}
	return false, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// CardID is the canonical "<kind>_<serial>_<endpoint>" identifier, used both
// as map key and as the tail of configuration store paths.
type CardID string

// Split decomposes the identifier back into its kind, serial and endpoint
// path segments. Serials containing underscores survive because kind is the
// first segment and endpoint the last.
func (id CardID) Split() (kind, serial, endpoint string, err error) {
	value := string(id)
	first := strings.Index(value, "_")
	last := strings.LastIndex(value, "_")
	if first == -1 || first == last {
		return "", "", "", fmt.Errorf("malformed card id %q", value)
	}
	return value[:first], value[first+1 : last], value[last+1:], nil
}
