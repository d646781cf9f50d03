// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Mongo         MongoConfiguration
	Redis         RedisConfiguration
	Neo4j         Neo4jConfiguration
	Elasticsearch ElasticsearchConfiguration
	Auth          AuthConfiguration
	Pagination    PaginationConfiguration
	RateLimit     RateLimitConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// MongoConfiguration stores data for the document store connection
type MongoConfiguration struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr     string
	Password string
	DB       int
}

// Neo4jConfiguration stores data for the group graph connection
type Neo4jConfiguration struct {
	URI      string
	Username string
	Password string
	Enabled  bool
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL     string
	Index   string
	Enabled bool
}

// AuthConfiguration holds session and sign-in settings
type AuthConfiguration struct {
	JWTSecret       string
	SessionTTL      time.Duration
	VerificationTTL time.Duration
	CookieSecure    bool
}

type PaginationConfiguration struct {
	DefaultPageSize int
}

type RateLimitConfiguration struct {
	Requests int
	Per      time.Duration
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "backoffice")
	viper.SetDefault("mongo.timeout", "10s")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "actions-history")
	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("auth.jwtSecret", "change-me")
	viper.SetDefault("auth.sessionTTL", "24h")
	viper.SetDefault("auth.verificationTTL", "5m")
	viper.SetDefault("auth.cookieSecure", false)
	viper.SetDefault("pagination.defaultPageSize", 10)
	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.per", "1m")
	viper.SetDefault("log.dir", "logging")
	viper.SetDefault("notification.sender", "no-reply@backoffice.local")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
