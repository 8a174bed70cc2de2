package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Mail   MailConfig
	Upload UploadConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port int
}

type MailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	OwnerEmail string
}

type UploadConfig struct {
	MaxFiles       int
	MaxFileBytes   int64
	MaxDimension   int
	JPEGQuality    int
	MaxRequestSize int64
}

type LogConfig struct {
	Level       string
	Development bool
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "")
	viper.SetDefault("OWNER_EMAIL", "")
	viper.SetDefault("UPLOAD_MAX_FILES", 10)
	viper.SetDefault("UPLOAD_MAX_FILE_BYTES", 5*1024*1024)
	viper.SetDefault("UPLOAD_MAX_DIMENSION", 1200)
	viper.SetDefault("UPLOAD_JPEG_QUALITY", 80)
	viper.SetDefault("UPLOAD_MAX_REQUEST_BYTES", 100*1024*1024)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_DEVELOPMENT", false)

	from := viper.GetString("MAIL_FROM")
	if from == "" {
		from = viper.GetString("SMTP_USER")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Mail: MailConfig{
			Host:       viper.GetString("SMTP_HOST"),
			Port:       viper.GetInt("SMTP_PORT"),
			Username:   viper.GetString("SMTP_USER"),
			Password:   viper.GetString("SMTP_PASSWORD"),
			From:       from,
			OwnerEmail: viper.GetString("OWNER_EMAIL"),
		},
		Upload: UploadConfig{
			MaxFiles:       viper.GetInt("UPLOAD_MAX_FILES"),
			MaxFileBytes:   viper.GetInt64("UPLOAD_MAX_FILE_BYTES"),
			MaxDimension:   viper.GetInt("UPLOAD_MAX_DIMENSION"),
			JPEGQuality:    viper.GetInt("UPLOAD_JPEG_QUALITY"),
			MaxRequestSize: viper.GetInt64("UPLOAD_MAX_REQUEST_BYTES"),
		},
		Log: LogConfig{
			Level:       viper.GetString("LOG_LEVEL"),
			Development: viper.GetBool("LOG_DEVELOPMENT"),
		},
	}

	return cfg, nil
}
