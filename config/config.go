package config

import (
	"io/ioutil"
	"ovis/cardmap/util"

	"github.com/hashicorp/hcl"
	"github.com/imdario/mergo"
)

type WebConfig struct {
	Listen string `hcl:"listen"`
	Debug  bool   `hcl:"debug"`
}

type ConsulConfig struct {
	// Address of the consul agent. When empty the key/value gateway is
	// considered not configured and topology queries fail fast.
	Address         string `hcl:"address"`
	FlpHardwarePath string `hcl:"flp_hardware_path"`
	ReadoutPath     string `hcl:"readout_path"`
	QcPath          string `hcl:"qc_path"`
	Hostname        string `hcl:"hostname"`
	Port            int    `hcl:"port"`
}

type Config struct {
	LogLevel string       `hcl:"log_level"`
	Web      WebConfig    `hcl:"web"`
	Consul   ConsulConfig `hcl:"consul"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Web: WebConfig{
			Listen: ":8084",
		},
		Consul: ConsulConfig{
			FlpHardwarePath: "o2/hardware/flps",
			ReadoutPath:     "o2/components/readoutcard",
			QcPath:          "o2/components/qc",
		},
	}
}

// Parse loads configuration from an hcl file. A missing or malformed file is
// not fatal: the full default configuration is returned along with the
// problem so the caller can report it and keep going.
func Parse(filename string) (*Config, error) {
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		return Default(), util.NewError(err, "cannot read configuration file")
	}
	config := &Config{}
	if err := hcl.Unmarshal(content, config); err != nil {
		return Default(), util.NewError(err, "invalid configuration format")
	}
	if err := mergo.Merge(config, Default()); err != nil {
		return Default(), util.NewError(err, "cannot apply default configuration value")
	}
	return config, nil
}
