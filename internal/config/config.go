package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	Glossary GlossaryConfig `yaml:"glossary"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings for the browser front end.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"                   env-separator:","`
	AllowedMethods   []string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"    env-separator:","`
	AllowedHeaders   []string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-App-Password,Authorization" env-separator:","`
	AllowCredentials bool     `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int      `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// AuthConfig holds the optional shared-password gate. With both fields
// empty the gate is disabled.
type AuthConfig struct {
	// Password is compared in constant time.
	Password string `yaml:"password"      env:"APP_PASSWORD"`
	// PasswordHash is a bcrypt hash; it takes precedence over Password.
	PasswordHash string `yaml:"password_hash" env:"APP_PASSWORD_HASH"`
}

// Enabled reports whether a password is configured.
func (c AuthConfig) Enabled() bool {
	return c.Password != "" || c.PasswordHash != ""
}

// GlossaryConfig holds pipeline defaults and request limits.
// Switches that default to true take their default from defaultConfig, not
// an env-default tag, which cleanenv would apply over an explicit false.
type GlossaryConfig struct {
	MinMarkedTokens     int    `yaml:"min_marked_tokens"     env:"GLOSSARY_MIN_MARKED_TOKENS"     env-default:"2"`
	Decompose           bool   `yaml:"decompose"             env:"GLOSSARY_DECOMPOSE"`
	UseUploadedGlossary bool   `yaml:"use_uploaded_glossary" env:"GLOSSARY_USE_UPLOADED"`
	PreferUploaded      bool   `yaml:"prefer_uploaded"       env:"GLOSSARY_PREFER_UPLOADED"`
	NormalizeWidth      bool   `yaml:"normalize_width"       env:"GLOSSARY_NORMALIZE_WIDTH"       env-default:"false"`
	// BasePath optionally points to a glossary CSV that replaces the
	// built-in base glossary.
	BasePath     string `yaml:"base_path"      env:"GLOSSARY_BASE_PATH"`
	MaxTextBytes int64  `yaml:"max_text_bytes" env:"GLOSSARY_MAX_TEXT_BYTES" env-default:"1048576"`
	CacheSize    int    `yaml:"cache_size"     env:"GLOSSARY_CACHE_SIZE"     env-default:"256"`
}
