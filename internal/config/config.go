package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/camera-sentinel/internal/domain/schedule"
)

// Config holds everything one check-and-notify pass needs: the camera
// service endpoint, the expected-mode schedule and the SMTP settings.
type Config struct {
	// Camera holds credentials and endpoint of the camera service.
	Camera CameraConfig `yaml:"camera"`
	// Schedule declares the named time-of-day intervals and their modes.
	Schedule ScheduleConfig `yaml:"schedule"`
	// Email holds SMTP transport settings and the notification addresses.
	Email EmailConfig `yaml:"email"`
	// Timeout is the duration for HTTP and SMTP network operations.
	Timeout time.Duration `yaml:"timeout"`
}

// CameraConfig identifies the camera service observation source.
type CameraConfig struct {
	// BaseURL is the root URL of the camera service API.
	BaseURL string `yaml:"base_url"`
	// Username is the camera service account name.
	Username string `yaml:"username"`
	// Password is the camera service account password. It can be left
	// empty in the file and supplied via CAMERA_SENTINEL_CAMERA_PASSWORD.
	Password string `yaml:"password"`
}

// ScheduleConfig is the raw schedule section before parsing.
type ScheduleConfig struct {
	// Entries lists the names of the declared intervals. A comma splits
	// the list; a value without a comma is a single name.
	Entries string `yaml:"entries"`
	// Clock selects the time-of-day format: 24 for 24-hour, anything
	// else for 12-hour with AM/PM.
	Clock int `yaml:"clock"`
	// Definitions maps each declared name to its mode and interval.
	Definitions map[string]schedule.Definition `yaml:"definitions"`
}

// EmailConfig holds notification transport and addressing settings.
type EmailConfig struct {
	// SMTPHost is the mail server hostname.
	SMTPHost string `yaml:"smtp_host"`
	// SMTPPort is the mail server port.
	SMTPPort int `yaml:"smtp_port"`
	// SMTPUsername is the account used to authenticate and, unless
	// Originator is set, the From address of notifications.
	SMTPUsername string `yaml:"smtp_username"`
	// SMTPPassword is the account password. It can be left empty in the
	// file and supplied via CAMERA_SENTINEL_SMTP_PASSWORD.
	SMTPPassword string `yaml:"smtp_password"`
	// Originator overrides the From address of notifications.
	Originator string `yaml:"originator"`
	// Recipients lists notification addresses, comma-separated with the
	// same single-element rule as schedule entries.
	Recipients string `yaml:"recipients"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "camera-sentinel-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 10 * time.Second

	// DefaultSMTPPort is the submission port used when none is configured.
	DefaultSMTPPort = 587

	// DefaultFilePermissions restricts config files to the owner since
	// they carry credentials.
	DefaultFilePermissions = 0o600
)

// Environment variables that override credentials from the file.
const (
	EnvCameraPassword = "CAMERA_SENTINEL_CAMERA_PASSWORD"
	EnvSMTPPassword   = "CAMERA_SENTINEL_SMTP_PASSWORD"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errCameraBaseURLRequired is returned when the camera endpoint is missing.
	errCameraBaseURLRequired = errors.New("camera base URL must be provided")
	// errCameraCredentialsRequired is returned when camera credentials are missing.
	errCameraCredentialsRequired = errors.New("camera username and password must be provided")
	// errScheduleEntriesRequired is returned when no schedule entries are declared.
	errScheduleEntriesRequired = errors.New("schedule entries must be provided")
	// errSMTPHostRequired is returned when the mail server host is missing.
	errSMTPHostRequired = errors.New("SMTP host must be provided")
	// errRecipientsRequired is returned when no notification recipients are set.
	errRecipientsRequired = errors.New("notification recipients must be provided")
)

// Load reads configuration from the provided path, applies environment
// overrides for credentials and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file carries credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling in defaults for optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Camera.BaseURL == "" {
		return errCameraBaseURLRequired
	}

	if _, err := url.ParseRequestURI(cfg.Camera.BaseURL); err != nil {
		return fmt.Errorf("invalid camera base URL: %w", err)
	}

	if cfg.Camera.Username == "" || cfg.Camera.Password == "" {
		return errCameraCredentialsRequired
	}

	if err := validateSchedule(&cfg.Schedule); err != nil {
		return err
	}

	if cfg.Email.SMTPHost == "" {
		return errSMTPHostRequired
	}

	if cfg.Email.Recipients == "" {
		return errRecipientsRequired
	}

	// Set defaults if not specified.
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.Email.SMTPPort <= 0 {
		cfg.Email.SMTPPort = DefaultSMTPPort
	}

	if cfg.Email.Originator == "" {
		cfg.Email.Originator = cfg.Email.SMTPUsername
	}

	return nil
}

// validateSchedule checks that every declared entry name has a complete
// definition. Time strings themselves are parsed later by schedule.Build,
// which is where unparsable values abort the run.
func validateSchedule(cfg *ScheduleConfig) error {
	if cfg.Entries == "" {
		return errScheduleEntriesRequired
	}

	for _, name := range schedule.SplitList(cfg.Entries) {
		definition, ok := cfg.Definitions[name]
		if !ok {
			return fmt.Errorf("schedule entry %q has no definition", name)
		}

		if definition.Mode == "" || definition.Start == "" || definition.End == "" {
			return fmt.Errorf("schedule entry %q must define mode, start and end", name)
		}
	}

	return nil
}

// applyEnvOverrides replaces credentials with environment values when set,
// so secrets can stay out of the settings file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvCameraPassword); v != "" {
		cfg.Camera.Password = v
	}

	if v := os.Getenv(EnvSMTPPassword); v != "" {
		cfg.Email.SMTPPassword = v
	}
}

// Template returns an example configuration suitable for writing with Save
// and editing by hand.
func Template() *Config {
	return &Config{
		Camera: CameraConfig{
			BaseURL:  "https://cameras.example.com",
			Username: "operator@example.com",
			Password: "camera-password",
		},
		Schedule: ScheduleConfig{
			Entries: "workday, overnight",
			Clock:   12,
			Definitions: map[string]schedule.Definition{
				"workday": {
					Mode:  "armed",
					Start: "09:00 AM",
					End:   "05:00 PM",
				},
				"overnight": {
					Mode:  "armed",
					Start: "10:00 PM",
					End:   "12:00 AM",
				},
			},
		},
		Email: EmailConfig{
			SMTPHost:     "smtp.example.com",
			SMTPPort:     DefaultSMTPPort,
			SMTPUsername: "alerts@example.com",
			SMTPPassword: "smtp-password",
			Recipients:   "oncall@example.com, operator@example.com",
		},
		Timeout: DefaultTimeout,
	}
}
