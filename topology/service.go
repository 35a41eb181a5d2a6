package topology

import (
	"encoding/json"
	"ovis/cardmap/util"
	"strings"

	"github.com/rs/zerolog"
)

// ServiceOptions carries the store paths and the optional UI endpoint used
// to compute externally visible prefixes.
type ServiceOptions struct {
	FlpHardwarePath string
	ReadoutPath     string
	QcPath          string
	Hostname        string
	Port            int
}

// Service answers topology queries against the key/value store. It keeps no
// state between calls, every query rebuilds its result from a fresh scan.
// The store may be nil, in which case every operation fails immediately
// with ErrNotConfigured.
type Service struct {
	store  KeyStore
	opts   ServiceOptions
	logger zerolog.Logger
}

func NewService(store KeyStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	return &Service{store: store, opts: opts, logger: logger}
}

func (service *Service) ready() error {
	if service.store == nil {
		return ErrNotConfigured
	}
	return nil
}

// FLPs lists the known hosts and the UI configuration prefixes.
func (service *Service) FLPs() (*FLPList, error) {
	if err := service.ready(); err != nil {
		return nil, err
	}
	keys, err := service.store.ListKeys(service.opts.FlpHardwarePath)
	if err != nil {
		return nil, err
	}
	list := &FLPList{
		Hosts:         HostsFromKeys(service.opts.FlpHardwarePath, keys),
		ReadoutPrefix: UIPrefix(service.opts.Hostname, service.opts.Port, service.opts.ReadoutPath),
		QcPrefix:      UIPrefix(service.opts.Hostname, service.opts.Port, service.opts.QcPath),
	}
	service.logger.Debug().Int("hosts", len(list.Hosts)).Msg("host catalog resolved")
	return list, nil
}

// CRUs scans the hardware inventory and resolves the per-host CRU sets.
// Configurations are left empty.
func (service *Service) CRUs() (Topology, error) {
	if err := service.ready(); err != nil {
		return nil, err
	}
	raw, err := service.store.ListValues(service.opts.FlpHardwarePath)
	if err != nil {
		return nil, err
	}
	inventory, err := ParseInventory(service.opts.FlpHardwarePath, raw)
	if err != nil {
		return nil, err
	}
	return ResolveInventory(inventory), nil
}

// CRUsWithConfig resolves the CRU topology and merges in the stored per-card
// configuration. Configuration entries with no matching card refer to
// hardware that is gone or not yet discovered and are skipped.
func (service *Service) CRUsWithConfig() (Topology, error) {
	topology, err := service.CRUs()
	if err != nil {
		return nil, err
	}
	values, err := service.store.ListValues(service.opts.ReadoutPath)
	if err != nil {
		return nil, err
	}
	for key, value := range values {
		host, id, ok := configKey(service.opts.ReadoutPath, key)
		if !ok {
			continue
		}
		set, exists := topology[host]
		if !exists {
			continue
		}
		entry, exists := set.Get(id)
		if !exists {
			continue
		}
		config := map[string]interface{}{}
		if err := json.Unmarshal([]byte(value), &config); err != nil {
			return nil, util.NewError(err, "malformed configuration at %s", key)
		}
		entry.Config = config
	}
	return topology, nil
}

// SaveConfig flattens the given topology and writes every card configuration
// back to the store. The written pairs are returned; a failed write aborts
// the remainder.
func (service *Service) SaveConfig(t Topology) ([]KVPair, error) {
	if err := service.ready(); err != nil {
		return nil, err
	}
	pairs, err := FlattenConfig(service.opts.ReadoutPath, t)
	if err != nil {
		return nil, err
	}
	for _, pair := range pairs {
		if err := service.store.Put(pair.Key, pair.Value); err != nil {
			return nil, err
		}
	}
	service.logger.Info().Int("cards", len(pairs)).Msg("configuration written back")
	return pairs, nil
}

// Leader reports the store leader address, used as a liveness probe only.
func (service *Service) Leader() (string, error) {
	if err := service.ready(); err != nil {
		return "", err
	}
	return service.store.Leader()
}

// configKey parses "<prefix>/<host>/<kind>/<serial>/<endpoint>" keys and
// reconstructs the card identifier the resolver would have assigned.
func configKey(prefix, key string) (string, CardID, bool) {
	rest, ok := underPrefix(prefix, key)
	if !ok {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 4 {
		return "", "", false
	}
	return parts[0], CardID(parts[1] + "_" + parts[2] + "_" + parts[3]), true
}
