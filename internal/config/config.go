package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

// AuthCfg drives the token service. Rotating Secret invalidates every
// outstanding token; there is no revocation list.
type AuthCfg struct {
	Secret        string
	Algorithm     string
	TokenTTLMin   int
	BcryptCost    int
	CookieDomain  string
	SeedAdmin     bool
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type RedisCfg struct {
	Addr           string
	Password       string
	DB             int
	PoolSize       int
	LoginLimit     int
	LoginWindowSec int
}

type MQCfg struct {
	URL   string
	Queue string
}

type S3Cfg struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
	PublicURL    string
}

// StorageCfg selects where uploaded images land: "local" keeps the
// original uploads-directory behavior, "s3" pushes to object storage.
type StorageCfg struct {
	Driver   string
	LocalDir string
	BasePath string
	S3       S3Cfg
}

type CORSCfg struct {
	AllowOrigins []string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Auth      AuthCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	Storage   StorageCfg
	CORS      CORSCfg
	Telemetry TelemetryCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("LEO") // e.g. LEO_AUTH_SECRET -> auth.secret

	setDefaults(base)

	// When a config file exists, expand ${ENV} placeholders before parsing
	// so secrets can live in the environment while structure lives in yaml.
	if err := base.ReadInConfig(); err == nil {
		raw, err := os.ReadFile(base.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("LEO")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No file is fine too, env + defaults only.
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "leo-backend")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.tokenTTLMin", 30)
	v.SetDefault("auth.bcryptCost", 12)
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.loginLimit", 10)
	v.SetDefault("redis.loginWindowSec", 60)
	v.SetDefault("rabbitmq.queue", "leo_events")
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.localDir", "uploads")
	v.SetDefault("storage.basePath", "/uploads")
	v.SetDefault("storage.s3.region", "auto")
	v.SetDefault("storage.s3.usePathStyle", true)
	v.SetDefault("telemetry.sampleRatio", 1.0)
}
