package config

import (
	"os"
	"fmt"
	"gopkg.in/yaml.v3"

	"stegocrypt/util"
)

/*
 * Server configuration - configuration of local API server.
 * Pages maps request patterns to files served as they are, the api
 * endpoints are always registered.
 */
type ServerConfiguration struct {
	Address		string			`yaml:"address"`
	NotFoundPage	string			`yaml:"not_found_page"`
	Pages		map[string]string	`yaml:"pages"`
	MaxUploadSize	int64			`yaml:"max_upload_size"`	// bytes
}

/*
 * Configuration for steganography front ends. The pixel layout itself is
 * fixed and can't be configured.
 */
type SteganoConfig struct {
	PreviewWidth	int	`yaml:"preview_width"`
	PreviewHeight	int	`yaml:"preview_height"`
	PreviewQuality	int	`yaml:"preview_quality"`
}

type FullConfig struct {
	ServerConfig	ServerConfiguration	`yaml:"local_server_config"`
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		ServerConfig: ServerConfiguration{
			Address: "127.0.0.1:5050",
			NotFoundPage: "www/404.html",
			Pages: map[string]string{
				"GET /{$}": "www/index.html",
			},
			MaxUploadSize: 32 << 20,
		},
		StegConfig: SteganoConfig{
			PreviewWidth: 400,
			PreviewHeight: 300,
			PreviewQuality: 80,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning | util.Info,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Fields missing from the file keep their default values.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	return ParseConfig( data )
}

func ParseConfig( data []byte ) (*FullConfig, error) {
	conf := DefaultConfig()
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}

func(c *FullConfig) Validate() error {
	if c.ServerConfig.Address == "" {
		return fmt.Errorf("Server address is empty")
	}
	if c.ServerConfig.MaxUploadSize <= 0 {
		return fmt.Errorf("Invalid max upload size: %d", c.ServerConfig.MaxUploadSize)
	}
	sc := c.StegConfig
	if sc.PreviewWidth <= 0 || sc.PreviewHeight <= 0 {
		return fmt.Errorf("Invalid preview size: %dx%d", sc.PreviewWidth, sc.PreviewHeight)
	}
	if sc.PreviewQuality < 1 || sc.PreviewQuality > 100 {
		return fmt.Errorf("Preview quality must be in [1, 100], got %d", sc.PreviewQuality)
	}
	return nil
}
