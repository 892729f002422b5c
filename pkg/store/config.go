package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the locations the client needs: where the override store
// lives on disk and where the checklist service lives on the network.
type Config interface {
	BasePath() string
	APIBase() string
}

// LoadConfig reads the .checklist config file (yaml implicit) and the
// CHECKLIST_* environment, falling back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.checklist.db")
	viper.SetDefault("api", "http://94.74.86.174:8080/api")
	viper.SetConfigName(".checklist")
	viper.SetEnvPrefix("CHECKLIST")
	viper.AutomaticEnv()

	if override := os.Getenv("CHECKLIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path, API: viper.GetString("api")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	API  string `json:"api"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIBase() string {
	return f.API
}
