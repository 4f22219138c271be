package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration loaded from configs/config.<env>.yaml.
type Config struct {
	App     *App     `json:"app" yaml:"app"`
	Server  *Server  `json:"server" yaml:"server"`
	MySQL   *MySQL   `json:"mysql" yaml:"mysql"`
	Redis   *Redis   `json:"redis" yaml:"redis"`
	Session *Session `json:"session" yaml:"session"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse config file %s: %v", filename, err))
	}

	return &conf
}

// Debug reports whether the app runs in debug mode.
func (c *Config) Debug() bool {
	return c.App.Debug
}
