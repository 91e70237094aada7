package configs

// Config holds all configuration for the application.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Source SourceConfig `mapstructure:"source" validate:"required"`
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

const (
	BackendS3    = "s3"
	BackendLocal = "local"
)

// SourceConfig locates the access-log objects.
type SourceConfig struct {
	Backend   string `mapstructure:"backend" validate:"required,oneof=s3 local"`
	Bucket    string `mapstructure:"bucket" validate:"required_if=Backend s3"`
	RootDir   string `mapstructure:"root_dir" validate:"required_if=Backend local"`
	Prefix    string `mapstructure:"prefix"`
	AccountID string `mapstructure:"account_id" validate:"required,numeric"`
	Region    string `mapstructure:"region" validate:"required"`

	FetchConcurrency      int  `mapstructure:"fetch_concurrency" validate:"required,min=1,max=64"`
	SkipUnreadableObjects bool `mapstructure:"skip_unreadable_objects"`
}

// ServerConfig holds configuration for the serve subcommand.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (report can stream for a while)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}
