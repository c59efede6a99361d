package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	configFileName = "contextdb"
	configFileType = "yaml"

	cfgKeyDBType      = "db_type"
	cfgKeyDBHost      = "db_host"
	cfgKeyDBPort      = "db_port"
	cfgKeyDBDatabase  = "db_database"
	cfgKeyDBUser      = "db_user"
	cfgKeyDBPassword  = "db_password"
	cfgKeyDBConnLimit = "db_connection_limit"
)

// LoadFile loads configuration for the schema tools from a YAML file overlaid
// on the environment. File values win over environment values. When path is
// empty, contextdb.yaml is looked up in the working directory and a missing
// file is not an error; an explicit path must exist.
func LoadFile(path string) (*Config, error) {
	cfg := FromEnv()

	v := viper.New()
	v.SetDefault(cfgKeyDBType, cfg.DBType)
	v.SetDefault(cfgKeyDBHost, cfg.DBHost)
	v.SetDefault(cfgKeyDBPort, cfg.DBPort)
	v.SetDefault(cfgKeyDBDatabase, cfg.DBDatabase)
	v.SetDefault(cfgKeyDBUser, cfg.DBUser)
	v.SetDefault(cfgKeyDBPassword, cfg.DBPassword)
	v.SetDefault(cfgKeyDBConnLimit, cfg.DBConnectionLimit)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
			// Missing contextdb.yaml is fine, the environment carries it.
		}
	}

	cfg.DBType = v.GetString(cfgKeyDBType)
	cfg.DBHost = v.GetString(cfgKeyDBHost)
	cfg.DBPort = v.GetString(cfgKeyDBPort)
	cfg.DBDatabase = v.GetString(cfgKeyDBDatabase)
	cfg.DBUser = v.GetString(cfgKeyDBUser)
	cfg.DBPassword = v.GetString(cfgKeyDBPassword)
	cfg.DBConnectionLimit = v.GetInt(cfgKeyDBConnLimit)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
