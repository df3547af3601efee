package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server  Server  `yaml:"server"`
	GitHub  GitHub  `yaml:"github"`
	Storage Storage `yaml:"storage"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	PublicURL     string `yaml:"publicUrl"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type GitHub struct {
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	CallbackURL  string `yaml:"callbackUrl"`
	// AdminID is the GitHub account id (a number, quoted in yaml) of the
	// single account allowed to mutate anything.
	AdminID string `yaml:"adminId"`
}

type Storage struct {
	Backend   string `yaml:"backend"` // cloudinary, local
	LocalPath string `yaml:"localPath"`
	CloudName string `yaml:"cloudName"`
	APIKey    string `yaml:"apiKey"`
	APISecret string `yaml:"apiSecret"`
	Folder    string `yaml:"folder"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}
	if config.Storage.Backend == "" {
		config.Storage.Backend = "local"
	}
	if config.Storage.LocalPath == "" {
		config.Storage.LocalPath = "./uploads"
	}
	if config.Storage.Folder == "" {
		config.Storage.Folder = "goblin-closet"
	}

	if config.GitHub.AdminID == "" {
		return Config{}, fmt.Errorf("github.adminId must be set")
	}

	return config, nil
}
