package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/swg-tools/sginfo/pkg/config/types"
)

const (
	defaultPort = 8082
	defaultUser = "admin"
)

// Open reads the appliance inventory and fills in the management console
// defaults for every appliance that does not override them.
func Open(path string) (types.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Config{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var src types.Config
	if err := json.NewDecoder(f).Decode(&src); err != nil {
		return types.Config{}, errors.Wrap(err, "decode json")
	}

	config := types.Config{Appliances: map[string]types.Appliance{}}
	for n, a := range src.Appliances {
		if a.Host == "" {
			return types.Config{}, errors.Errorf("appliance %q has no host", n)
		}
		if a.Port == 0 {
			a.Port = defaultPort
		}
		if a.User == "" {
			a.User = defaultUser
		}
		config.Appliances[n] = a
	}

	return config, nil
}
