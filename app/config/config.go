package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DB     *sql.DB
	Server ServerConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

type LLMConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// fileConfig is the optional venturepulse.yaml shape. Every field falls back
// to an environment variable, and env vars fall back to development defaults.
type fileConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	LLM      LLMConfig      `yaml:"llm"`
}

var AppConfig *Config

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// loadFileConfig reads venturepulse.yaml (or CONFIG_FILE) if present.
func loadFileConfig() *fileConfig {
	path := envOr("CONFIG_FILE", "venturepulse.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("Warning: failed to parse %s, ignoring it: %v", path, err)
		return nil
	}
	log.Printf("Loaded configuration from %s", path)
	return &fc
}

func InitDB() {
	fc := loadFileConfig()

	dbCfg := DatabaseConfig{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envIntOr("DB_PORT", 5432),
		User:     envOr("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     envOr("DB_NAME", "venturepulse"),
		SSLMode:  envOr("DB_SSLMODE", "disable"),
	}
	srvCfg := ServerConfig{Port: envOr("PORT", "3000")}
	llmCfg := LLMConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: envOr("LLM_BASE_URL", "https://api.openai.com/v1"),
		Model:   envOr("LLM_MODEL", "gpt-4o-mini"),
	}

	if fc != nil {
		if fc.Database.Host != "" {
			dbCfg.Host = fc.Database.Host
		}
		if fc.Database.Port != 0 {
			dbCfg.Port = fc.Database.Port
		}
		if fc.Database.User != "" {
			dbCfg.User = fc.Database.User
		}
		if fc.Database.Password != "" {
			dbCfg.Password = fc.Database.Password
		}
		if fc.Database.Name != "" {
			dbCfg.Name = fc.Database.Name
		}
		if fc.Database.SSLMode != "" {
			dbCfg.SSLMode = fc.Database.SSLMode
		}
		if fc.Server.Port != "" {
			srvCfg.Port = fc.Server.Port
		}
		if fc.LLM.APIKey != "" {
			llmCfg.APIKey = fc.LLM.APIKey
		}
		if fc.LLM.BaseURL != "" {
			llmCfg.BaseURL = fc.LLM.BaseURL
		}
		if fc.LLM.Model != "" {
			llmCfg.Model = fc.LLM.Model
		}
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=10",
		dbCfg.Host, dbCfg.Port, dbCfg.User, dbCfg.Name, dbCfg.SSLMode)
	if dbCfg.Password != "" {
		psqlInfo += " password=" + dbCfg.Password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Database connection failed (%s:%d/%s): %v", dbCfg.Host, dbCfg.Port, dbCfg.Name, err)
	}
	log.Printf("Connected to database %s at %s:%d", dbCfg.Name, dbCfg.Host, dbCfg.Port)

	AppConfig = &Config{
		DB:     db,
		Server: srvCfg,
		LLM:    llmCfg,
	}
}

func GetDB() *sql.DB {
	if AppConfig == nil {
		return nil
	}
	return AppConfig.DB
}

func GetLLM() LLMConfig {
	if AppConfig == nil {
		return LLMConfig{}
	}
	return AppConfig.LLM
}

func GetServerPort() string {
	if AppConfig == nil {
		return "3000"
	}
	return AppConfig.Server.Port
}
