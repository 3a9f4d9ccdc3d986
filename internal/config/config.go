package config

import (
	"strings"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort         string
	GinMode            string
	LogLevel           string
	DBDriver           string
	DBDSN              string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	CORSAllowedOrigins []string
}

var defaults = map[string]string{
	"SERVER_PORT":          "5000",
	"GIN_MODE":             "debug",
	"LOG_LEVEL":            "info",
	"DB_DRIVER":            "mysql",
	"DB_DSN":               "",
	"DB_HOST":              "localhost",
	"DB_PORT":              "3306",
	"DB_USER":              "orgadmin",
	"DB_PASSWORD":          "orgadmin",
	"DB_NAME":              "b2b_admin",
	"CORS_ALLOWED_ORIGINS": "*",
}

// Load reads configuration from a .env file (if any), the environment and
// command line flags, in increasing order of precedence.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.String("port", "", "HTTP listen port (overrides SERVER_PORT)")
	fs.String("db-driver", "", "database driver: mysql, postgres or sqlite (overrides DB_DRIVER)")
	fs.String("db-dsn", "", "database DSN (overrides DB_DSN)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	bindFlag(v, fs, "port", "SERVER_PORT")
	bindFlag(v, fs, "db-driver", "DB_DRIVER")
	bindFlag(v, fs, "db-dsn", "DB_DSN")

	return &Config{
		ServerPort:         v.GetString("SERVER_PORT"),
		GinMode:            v.GetString("GIN_MODE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBDriver:           strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:              v.GetString("DB_DSN"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBName:             v.GetString("DB_NAME"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// bindFlag lets an explicitly set flag win over the environment.
func bindFlag(v *viper.Viper, fs *flag.FlagSet, name, key string) {
	if f := fs.Lookup(name); f != nil && f.Changed {
		v.Set(key, f.Value.String())
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
