package consul

import (
	"ovis/cardmap/util"

	"github.com/dustin/go-humanize"
	consulapi "github.com/hashicorp/consul/api"
	"github.com/rs/zerolog"
)

// KeyStore implements topology.KeyStore on top of a consul agent.
type KeyStore struct {
	client *consulapi.Client
	logger zerolog.Logger
}

func New(address string, logger zerolog.Logger) (*KeyStore, error) {
	config := consulapi.DefaultConfig()
	config.Address = address
	client, err := consulapi.NewClient(config)
	if err != nil {
		return nil, util.NewError(err, "cannot create consul client for %s", address)
	}
	return &KeyStore{client: client, logger: logger}, nil
}

func (store *KeyStore) ListValues(prefix string) (map[string]string, error) {
	pairs, _, err := store.client.KV().List(prefix, nil)
	if err != nil {
		return nil, util.NewError(err, "consul value scan failed for %s", prefix)
	}
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		values[pair.Key] = string(pair.Value)
	}
	return values, nil
}

func (store *KeyStore) ListKeys(prefix string) ([]string, error) {
	keys, _, err := store.client.KV().Keys(prefix, "", nil)
	if err != nil {
		return nil, util.NewError(err, "consul key scan failed for %s", prefix)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func (store *KeyStore) Leader() (string, error) {
	leader, err := store.client.Status().Leader()
	if err != nil {
		return "", util.NewError(err, "cannot query consul leader")
	}
	return leader, nil
}

func (store *KeyStore) Put(key, value string) error {
	pair := &consulapi.KVPair{Key: key, Value: []byte(value)}
	if _, err := store.client.KV().Put(pair, nil); err != nil {
		return util.NewError(err, "consul write failed for %s", key)
	}
	store.logger.Debug().
		Str("key", key).
		Str("size", humanize.Bytes(uint64(len(value)))).
		Msg("value written")
	return nil
}
