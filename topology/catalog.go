package topology

import (
	"fmt"
	"strings"
)

// FLPList is the host catalog together with the externally visible
// configuration prefixes for the readout and quality-control views.
type FLPList struct {
	Hosts         []string `json:"flps"`
	ReadoutPrefix string   `json:"consulReadoutPrefix"`
	QcPrefix      string   `json:"consulQcPrefix"`
}

// HostsFromKeys derives the distinct FLP names from a keys-only scan of the
// hardware subtree. The host is the segment right below the prefix; keys
// from other subtrees are dropped, duplicates keep their first position.
func HostsFromKeys(prefix string, keys []string) []string {
	hosts := []string{}
	seen := map[string]bool{}
	for _, key := range keys {
		rest, ok := underPrefix(prefix, key)
		if !ok {
			continue
		}
		host := rest[:strings.Index(rest, "/")]
		if seen[host] {
			continue
		}
		seen[host] = true
		hosts = append(hosts, host)
	}
	return hosts
}

// UIPrefix composes "<hostname>:<port>/<subpath>". Both hostname and port
// must be set, a half-configured endpoint yields the empty string.
func UIPrefix(hostname string, port int, subpath string) string {
	if hostname == "" || port == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d/%s", hostname, port, subpath)
}
