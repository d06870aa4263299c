package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Server struct {
		Port         string `yaml:"port"`
		TemplatePath string `yaml:"template_path"`
		StaticPath   string `yaml:"static_path"`
	} `yaml:"server"`
	Mail struct {
		From   string `yaml:"from"`
		APIKey string `yaml:"api_key"`
	} `yaml:"mail"`
}

// LoadConfig завантажує конфігурацію з файлів
func LoadConfig() *Config {
	// .env (якщо є) — для локальних перевизначень
	_ = godotenv.Load()

	config := &Config{}

	// 1. Основний конфіг (без секретів)
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Fatalf("Помилка читання config.yaml: %v", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Fatalf("Помилка парсингу config.yaml: %v", err)
	}

	// 2. Секретний конфіг (пароль БД, ключ пошти) — необов'язковий,
	// якщо секрети приходять через оточення
	if secretData, err := os.ReadFile("config.secret.yaml"); err == nil {
		var secret struct {
			Database struct {
				Password string `yaml:"password"`
			} `yaml:"database"`
			Mail struct {
				APIKey string `yaml:"api_key"`
			} `yaml:"mail"`
		}
		if err := yaml.Unmarshal(secretData, &secret); err != nil {
			log.Fatalf("Помилка парсингу config.secret.yaml: %v", err)
		}
		config.Database.Password = secret.Database.Password
		config.Mail.APIKey = secret.Mail.APIKey
	}

	// 3. Оточення має пріоритет над файлами
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		config.Mail.APIKey = v
	}

	if config.Database.Password == "" {
		log.Fatal("Потрібен пароль БД: config.secret.yaml або DB_PASSWORD")
	}

	log.Println("Конфігурацію успішно завантажено")
	return config
}
