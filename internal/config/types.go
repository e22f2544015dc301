package config

import "time"

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title string `yaml:"title" koanf:"title"`
	// Catalog is a JSON file path or an http(s) URL.
	Catalog      string        `yaml:"catalog" koanf:"catalog"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Skin         string        `yaml:"skin" koanf:"skin"`
	Theme        string        `yaml:"theme" koanf:"theme"`
	AssetsDir    string        `yaml:"assets_dir" koanf:"assets_dir"`
	Include      []string      `yaml:"include" koanf:"include"`
	Exclude      []string      `yaml:"exclude" koanf:"exclude"`
	OutputDir    string        `yaml:"output_dir" koanf:"output_dir"`
	NotesFile    string        `yaml:"notes_file" koanf:"notes_file"`
	Server       ServerConfig  `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for folio serve.
type ServerConfig struct {
	Port       int           `yaml:"port" koanf:"port"`
	AllowAll   bool          `yaml:"allow_all" koanf:"allow_all"`
	DBPath     string        `yaml:"db_path" koanf:"db_path"`
	SessionTTL time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
}
