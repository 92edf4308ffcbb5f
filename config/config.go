// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels       = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers         = []string{"sqlite", "postgres"}
	validDeletePolicies  = []string{"cascade", "restrict"}
	defaultMaxBodySize   = int64(1 << 20)
	defaultCatalogTTLSec = 15
)

// Setup prepares everything config-related so that the app can
// start working. args are the command line arguments without the
// program name. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup(args []string) error {
	v.Reset()

	flags := pflag.NewFlagSet("market-api", pflag.ContinueOnError)
	flags.String("seed-catalog", "", "Seeds the card catalog from a JSON file or an s3://bucket/key object")
	flags.String("config", "", "Path to a config.toml file")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags, %w", err)
	}

	v.BindPFlag("seed.catalog", flags.Lookup("seed-catalog"))

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")

	v.BindEnv("host.port", "HOST_PORT")
	v.BindEnv("host.domain", "HOST_DOMAIN")
	v.BindEnv("host.cors", "HOST_CORS")

	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.dsn", "DATABASE_DSN")

	v.BindEnv("security.rate_limit", "SECURITY_RATE_LIMIT")
	v.BindEnv("security.max_body_size", "SECURITY_MAX_BODY_SIZE")

	v.BindEnv("listings.on_user_delete", "LISTINGS_ON_USER_DELETE")

	v.BindEnv("cache.catalog_ttl", "CACHE_CATALOG_TTL")

	v.BindEnv("mail.enabled", "MAIL_ENABLED")
	v.BindEnv("mail.host", "MAIL_HOST")
	v.BindEnv("mail.port", "MAIL_PORT")
	v.BindEnv("mail.sender", "MAIL_SENDER")
	v.BindEnv("mail.password", "MAIL_PASSWORD")

	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.endpoint", "AWS_ENDPOINT")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.cors", "http://localhost:5173")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "market.db")

	v.SetDefault("security.rate_limit", 20)
	v.SetDefault("security.max_body_size", defaultMaxBodySize)

	v.SetDefault("listings.on_user_delete", "cascade")

	v.SetDefault("cache.catalog_ttl", defaultCatalogTTLSec)

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.port", 587)

	v.SetDefault("aws.region", "us-east-1")

	if err := v.ReadInConfig(); err != nil {
		var notFound v.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	return validate()
}

func validate() error {
	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if p := v.GetInt("host.port"); p <= 0 || p > 65535 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if strings.TrimSpace(v.GetString("database.dsn")) == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetInt("security.rate_limit") < 0 {
		return errors.New("security.rate_limit can't be negative")
	}

	if v.GetInt64("security.max_body_size") <= 0 {
		return errors.New("security.max_body_size must be bigger than 0")
	}

	if !slices.Contains(validDeletePolicies, strings.ToLower(v.GetString("listings.on_user_delete"))) {
		return errors.New("listings.on_user_delete must be cascade or restrict")
	}

	if v.GetInt("cache.catalog_ttl") < 0 {
		return errors.New("cache.catalog_ttl can't be negative")
	}

	if v.GetBool("mail.enabled") {
		if v.GetString("mail.host") == "" {
			return errors.New("mail host can't be empty")
		}
		if v.GetString("mail.sender") == "" {
			return errors.New("mail sender can't be empty")
		}
		if v.GetInt("mail.port") <= 0 {
			return errors.New("invalid mail port provided")
		}
	}

	return nil
}

// Origins splits host.cors into a list of allowed origins.
func Origins() []string {
	var origins []string

	for o := range strings.SplitSeq(v.GetString("host.cors"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}
