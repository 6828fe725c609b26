/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-sgtin-generator/pkg/encodingscheme"
	"github.com/intel/rsp-sw-toolkit-im-suite-utilities/configuration"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultServiceName      = "sgtin-generator"
	defaultLoggingLevel     = "info"
	defaultLastSerial       = "9000"
	defaultGeneratorWorkers = 4
	defaultMaxQtyPerRow     = 100000
	maxGeneratorWorkers     = 64
	defaultOutputHeader     = true
)

// MaxQtyPerRowLimit caps maxQtyPerRow regardless of configuration
const MaxQtyPerRowLimit = 10000000

type (
	variables struct {
		ServiceName, LoggingLevel string

		// DefaultLastSerial is used for rows that do not carry a last serial
		DefaultLastSerial string
		GeneratorWorkers  int
		MaxQtyPerRow      int
		OutputHeader      bool
	}
)

// AppConfig exports all config variables
var AppConfig variables

// LoadDefaults resets AppConfig to the values used when configuration.json
// omits a key.
func LoadDefaults() {
	AppConfig = variables{
		ServiceName:       defaultServiceName,
		LoggingLevel:      defaultLoggingLevel,
		DefaultLastSerial: defaultLastSerial,
		GeneratorWorkers:  defaultGeneratorWorkers,
		MaxQtyPerRow:      defaultMaxQtyPerRow,
		OutputHeader:      defaultOutputHeader,
	}
}

// InitConfig loads application variables
func InitConfig() error {
	LoadDefaults()

	config, err := configuration.NewConfiguration()
	if err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.ServiceName = getOrDefaultString(config, "serviceName", defaultServiceName)
	AppConfig.LoggingLevel = getOrDefaultString(config, "loggingLevel", defaultLoggingLevel)

	AppConfig.DefaultLastSerial = getOrDefaultString(config, "defaultLastSerial", defaultLastSerial)
	if err := validateLastSerial(AppConfig.DefaultLastSerial); err != nil {
		return errors.Wrapf(err, "Unable to load config variables: %s", err.Error())
	}

	AppConfig.GeneratorWorkers, err = boundInt("generatorWorkers",
		getOrDefaultInt(config, "generatorWorkers", defaultGeneratorWorkers), maxGeneratorWorkers)
	if err != nil {
		return err
	}

	AppConfig.MaxQtyPerRow, err = boundInt("maxQtyPerRow",
		getOrDefaultInt(config, "maxQtyPerRow", defaultMaxQtyPerRow), MaxQtyPerRowLimit)
	if err != nil {
		return err
	}

	AppConfig.OutputHeader = getOrDefaultBool(config, "outputHeader", defaultOutputHeader)

	return nil
}

func getOrDefaultBool(config *configuration.Configuration, path string, defaultValue bool) bool {
	value, err := config.GetBool(path)
	if err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %v", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultString(config *configuration.Configuration, path string, defaultValue string) string {
	value, err := config.GetString(path)
	if err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %s", path, defaultValue)
		return defaultValue
	}
	return value
}

func getOrDefaultInt(config *configuration.Configuration, path string, defaultValue int) int {
	value, err := config.GetInt(path)
	if err != nil {
		log.Debugf("%s was missing from configuration, setting to default value of %d", path, defaultValue)
		return defaultValue
	}
	return value
}

// boundInt rejects values below 1 and limits values above max to max.
func boundInt(name string, value, max int) (int, error) {
	if value < 1 {
		return 0, errors.Errorf("%s cannot be lesser than 1", name)
	}
	if value > max {
		// limit to max value
		log.Debugf("%s value %d exceeds the max value allowed, set to max value %d",
			name, value, max)
		return max, nil
	}
	return value, nil
}

// validateLastSerial checks that a batch can start right after lastSerial.
func validateLastSerial(lastSerial string) error {
	_, err := encodingscheme.NextSerial(lastSerial)
	return errors.Wrapf(err, "invalid defaultLastSerial '%s'", lastSerial)
}
