package clipcut

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config holds project-level defaults loaded from clipcut.yaml. Values
// parsed from the command line always win over these.
type Config struct {
	Player     string       `yaml:"player"`
	SampleRate int          `yaml:"sample_rate"`
	VideoCodec string       `yaml:"video_codec"`
	AudioCodec string       `yaml:"audio_codec"`
	Export     string       `yaml:"export"`
	Progress   string       `yaml:"progress"`
	TempRoot   string       `yaml:"temp_root"`
	FFmpeg     FFmpegConfig `yaml:"ffmpeg"`
}

// FFmpegConfig locates and configures the external encoder process.
type FFmpegConfig struct {
	Location   string `yaml:"location"`
	ShowCmd    bool   `yaml:"show_cmd"`
	HideBanner bool   `yaml:"hide_banner"`
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
const DefaultConfigPath = "clipcut.yaml"

// LoadConfig loads configuration from the specified file. A missing file
// yields the defaults; a present file is parsed strictly so typos in keys
// surface immediately.
func LoadConfig(configPath string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	if configPath == "" {
		configPath = DefaultConfigPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	expandConfigEnvVars(&config)

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Progress != "" {
		validProgress := map[string]bool{
			"modern":  true,
			"classic": true,
			"ascii":   true,
			"machine": true,
			"none":    true,
		}
		if !validProgress[config.Progress] {
			return fmt.Errorf("%w: invalid progress '%s': must be one of modern, classic, ascii, machine, none",
				ErrConfigValidation, config.Progress)
		}
	}

	if config.SampleRate < 0 {
		return fmt.Errorf("%w: sample_rate must be non-negative, got %d", ErrConfigValidation, config.SampleRate)
	}

	return nil
}

func getDefaultConfig() *Config {
	return &Config{
		VideoCodec: "auto",
		AudioCodec: "auto",
		Export:     "default",
		Progress:   "modern",
		FFmpeg: FFmpegConfig{
			Location:   "ffmpeg",
			HideBanner: true,
		},
	}
}

func applyDefaults(config *Config) {
	if config.VideoCodec == "" {
		config.VideoCodec = "auto"
	}

	if config.AudioCodec == "" {
		config.AudioCodec = "auto"
	}

	if config.Export == "" {
		config.Export = "default"
	}

	if config.Progress == "" {
		config.Progress = "modern"
	}

	if config.FFmpeg.Location == "" {
		config.FFmpeg.Location = "ffmpeg"
	}
}

// loadEnvFiles loads a .env file from the working directory if present.
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR.
func expandEnvVars(s string) string {
	s = bracedVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})

	return bareVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

func expandConfigEnvVars(config *Config) {
	config.Player = expandEnvVars(config.Player)
	config.TempRoot = expandEnvVars(config.TempRoot)
	config.FFmpeg.Location = expandEnvVars(config.FFmpeg.Location)
}
