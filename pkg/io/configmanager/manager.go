package configmanager

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/ui/notify"
	"github.com/smithfarm/handson/pkg/ui/timer"

	"github.com/spf13/viper"
)

// DefaultConfigName is the basename of the cluster description file looked up
// in the working directory.
const DefaultConfigName = "ho"

// envPrefix is the prefix of environment variables overriding description
// fields, e.g. HO_SPEC_REGION.
const envPrefix = "HO"

// ErrNoConfigFile is returned when persisting is requested but no description
// file was ever read.
var ErrNoConfigFile = errors.New("no cluster description file loaded")

// ConfigManager implements configuration management for handson
// v1alpha1.Cluster descriptions.
type ConfigManager struct {
	Viper *viper.Viper
	// Config is the loaded cluster description.
	Config *v1alpha1.Cluster
	// Writer receives loading notifications.
	Writer io.Writer

	configLoaded    bool
	configFileFound bool
}

// NewConfigManager creates a configuration manager writing notifications to
// the given writer. An explicit configFile overrides the default ho.yaml
// lookup; pass "" to keep the default.
func NewConfigManager(writer io.Writer, configFile string) *ConfigManager {
	viperInstance := initializeViper(configFile)

	return &ConfigManager{
		Viper:  viperInstance,
		Config: v1alpha1.NewCluster(),
		Writer: writer,
	}
}

// initializeViper configures config paths and environment handling.
func initializeViper(configFile string) *viper.Viper {
	viperInstance := viper.New()

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName(DefaultConfigName)
		viperInstance.SetConfigType("yaml")
		viperInstance.AddConfigPath(".")
	}

	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// LoadConfig loads the cluster description from file and environment.
// Returns the loaded description, either freshly loaded or previously cached.
// If tmr is provided, timing information is included in the success
// notification.
func (m *ConfigManager) LoadConfig(tmr timer.Timer) (*v1alpha1.Cluster, error) {
	return m.loadConfigWithOptions(tmr, false)
}

// LoadConfigSilent loads the cluster description without notifications.
func (m *ConfigManager) LoadConfigSilent() (*v1alpha1.Cluster, error) {
	return m.loadConfigWithOptions(nil, true)
}

func (m *ConfigManager) loadConfigWithOptions(
	tmr timer.Timer,
	silent bool,
) (*v1alpha1.Cluster, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	if !silent {
		notify.Activityf(m.Writer, "loading cluster description")
	}

	err := m.readConfig(silent)
	if err != nil {
		return nil, err
	}

	err = m.Viper.Unmarshal(m.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cluster description: %w", err)
	}

	err = m.Config.Validate()
	if err != nil {
		return nil, err
	}

	if !silent {
		notify.SuccessWithTimerf(m.Writer, tmr, "cluster description loaded")
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig(silent bool) error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read cluster description file: %w", err)
		}

		m.configFileFound = false
		if !silent {
			notify.Warningf(m.Writer, "no description file found, using defaults")
		}

		return nil
	}

	m.configFileFound = true
	if !silent {
		notify.Infof(m.Writer, "using description file %q", m.Viper.ConfigFileUsed())
	}

	return nil
}

// ConfigFileFound reports whether a description file was read from disk.
func (m *ConfigManager) ConfigFileFound() bool {
	return m.configFileFound
}

// SaveConfig writes the (possibly updated) cluster description back to the
// file it was read from, e.g. after provisioning filled in VPC or subnet IDs.
func (m *ConfigManager) SaveConfig() error {
	path := m.Viper.ConfigFileUsed()
	if path == "" {
		return ErrNoConfigFile
	}

	data, err := m.Config.ToYAML()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write cluster description file: %w", err)
	}

	return nil
}
