package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// MaxTimeLimitMinutes is the longest mock exam a request may ask for. It
// matches the binding on dto.StartMockExamRequest.TimeLimitMinutes.
const MaxTimeLimitMinutes = 600

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Exam     Exam
	LogLevel string
}

type Server struct {
	Port               string
	Env                string
	CORSAllowedOrigins []string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string `json:"-"`
	Name       string
	SSLMode    string
	SQLitePath string
}

type Auth struct {
	JWTSecret string `json:"-"`
}

type Exam struct {
	DefaultCount            int
	DefaultTimeLimitMinutes int
	MaxCount                int
	SessionTTL              time.Duration
	PassMark                float64
}

func (s Server) IsProduction() bool {
	return s.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "examprep.db")

	v.SetDefault("EXAM_DEFAULT_COUNT", 50)
	v.SetDefault("EXAM_DEFAULT_TIME_LIMIT_MINUTES", 60)
	v.SetDefault("EXAM_MAX_COUNT", 200)
	v.SetDefault("EXAM_SESSION_TTL", "6h")
	v.SetDefault("EXAM_PASS_MARK", 60.0)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	config := load(v)

	log.Info().Interface("config", config).Msg("Config loaded")
	return config, nil
}

func load(v *viper.Viper) *Config {
	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.Env = v.GetString("APP_ENV")
	config.Server.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	config.LogLevel = v.GetString("LOG_LEVEL")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = v.GetString("SQLITE_PATH")

	config.Auth.JWTSecret = v.GetString("AUTH_JWT_SECRET")

	config.Exam.DefaultCount = v.GetInt("EXAM_DEFAULT_COUNT")
	config.Exam.DefaultTimeLimitMinutes = v.GetInt("EXAM_DEFAULT_TIME_LIMIT_MINUTES")
	config.Exam.MaxCount = v.GetInt("EXAM_MAX_COUNT")
	config.Exam.SessionTTL = v.GetDuration("EXAM_SESSION_TTL")
	config.Exam.PassMark = v.GetFloat64("EXAM_PASS_MARK")
	config.Exam.normalize()

	return &config
}

// normalize replaces exam defaults a session could never start with.
func (e *Exam) normalize() {
	if e.DefaultTimeLimitMinutes < 1 || e.DefaultTimeLimitMinutes > MaxTimeLimitMinutes {
		log.Warn().Int("value", e.DefaultTimeLimitMinutes).Msg("EXAM_DEFAULT_TIME_LIMIT_MINUTES out of range, using 60")
		e.DefaultTimeLimitMinutes = 60
	}
	if e.DefaultCount < 1 {
		log.Warn().Int("value", e.DefaultCount).Msg("EXAM_DEFAULT_COUNT must be positive, using 50")
		e.DefaultCount = 50
	}
	if e.SessionTTL > 0 && e.SessionTTL < MaxTimeLimitMinutes*time.Minute {
		log.Warn().Dur("ttl", e.SessionTTL).Msg("EXAM_SESSION_TTL is shorter than the longest exam; running sessions are kept until they end")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
