package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port       string `yaml:"port"`
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`
	BaseUrl    string `yaml:"base_url"`
	JWTKey     string `yaml:"jwt_key"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`

	AdminMobile string `yaml:"admin_mobile"`
	GeocodeURL  string `yaml:"geocode_url"`

	// Payroll policy knobs. Both the cycle boundary and the half-day cutoff
	// changed across the product's history, so they stay configurable.
	HalfDayCutoff   string `yaml:"half_day_cutoff"`
	CycleBoundary   string `yaml:"cycle_boundary"`
	WeeklyOffRule   string `yaml:"weekly_off_rule"`
	RequireLocation bool   `yaml:"require_location"`
}

func NewConfig(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err = yaml.Unmarshal(yamlFile, &c); err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key")
	}

	if c.Port == "" {
		c.Port = ":8080"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.RedisAddr == "" {
		c.RedisAddr = "localhost:6379"
	}
	if c.GeocodeURL == "" {
		c.GeocodeURL = "https://nominatim.openstreetmap.org"
	}
	if c.HalfDayCutoff == "" {
		c.HalfDayCutoff = "10:30"
	}
	if c.CycleBoundary == "" {
		c.CycleBoundary = "fourth"
	}
	if c.WeeklyOffRule == "" {
		c.WeeklyOffRule = "cycle"
	}

	return &c, nil
}
