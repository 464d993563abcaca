package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/DiegoGarzaro/cookbook-2.0/pkg/logging"
)

// Config tells the store where the receipts file lives.
type Config interface {
	Path() string
}

// LoadConfig resolves the receipts file path from a .cookbook config
// file, COOKBOOK_* environment variables, or the default location.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.cookbook/receipts.txt")
	viper.SetConfigName(".cookbook") // .yaml is implicit
	viper.SetEnvPrefix("COOKBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("COOKBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logging.Default().Error().Err(err).Msg("error reading config file")
			return nil, err
		}
	}

	if level := viper.GetString("log_level"); level != "" {
		logging.SetLevel(level)
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{FilePath: path}, nil
}

type fileConfig struct {
	FilePath string `json:"path"`
}

func (f *fileConfig) Path() string {
	return f.FilePath
}
