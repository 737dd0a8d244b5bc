package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the location of the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store location from a .todo config file, TODO_*
// environment variables, or the default of ~/.todo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.todo.db")
	viper.SetConfigName(".todo") // .yaml is implicit
	viper.SetEnvPrefix("TODO")
	viper.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
