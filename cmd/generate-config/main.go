// Command generate-config writes a config file with default values to stdout.
package main

import (
	"os"

	"bigtwo-server/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func main() {
	enc := yaml.NewEncoder(os.Stdout)
	defer func() { _ = enc.Close() }()

	if err := enc.Encode(config.DefaultConfig()); err != nil {
		logrus.Fatal(err)
	}
}
