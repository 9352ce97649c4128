package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/drivehub/rental-service/pkg/auth"
	"github.com/drivehub/rental-service/pkg/kafka"
	"github.com/drivehub/rental-service/pkg/logger"
	"github.com/drivehub/rental-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"RENTAL_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"RENTAL_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Gateway struct {
	BaseURL   string `yaml:"baseURL" envconfig:"GATEWAY_BASE_URL" default:"https://api.razorpay.com/v1"`
	KeyID     string `yaml:"keyID" envconfig:"GATEWAY_KEY_ID"`
	KeySecret string `yaml:"keySecret" envconfig:"GATEWAY_KEY_SECRET" json:"-"`
	Currency  string `yaml:"currency" envconfig:"GATEWAY_CURRENCY" default:"INR"`
}

type Admin struct {
	Username     string `yaml:"username" envconfig:"ADMIN_USERNAME"`
	PasswordHash string `yaml:"passwordHash" envconfig:"ADMIN_PASSWORD_HASH" json:"-"`
}

type Promo struct {
	Code            string `yaml:"code" envconfig:"PROMO_CODE" default:"RENT10"`
	DiscountPercent int64  `yaml:"discountPercent" envconfig:"PROMO_DISCOUNT_PERCENT" default:"10"`
}

type Storage struct {
	Dir     string `yaml:"dir" envconfig:"STORAGE_DIR" default:"./uploads"`
	BaseURL string `yaml:"baseURL" envconfig:"STORAGE_BASE_URL" default:"/uploads"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	JWT      auth.Config  `yaml:"jwt"`
	Gateway  Gateway      `yaml:"gateway"`
	Admin    Admin        `yaml:"admin"`
	Promo    Promo        `yaml:"promo"`
	Storage  Storage      `yaml:"storage"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
