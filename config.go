// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/bstbench/bench"
	"github.com/cybrota/bstbench/tree"
)

const configFileName = ".bstbench.yaml"

type DisplayConfig struct {
	Color       bool `yaml:"color"`
	ShowHeights bool `yaml:"show_heights"`
}

type ExploreConfig struct {
	Kind   string `yaml:"kind"`
	MaxKey int    `yaml:"max_key"` // bound for keys added by "random N"
}

type Config struct {
	Bench   bench.Config  `yaml:"bench"`
	Display DisplayConfig `yaml:"display"`
	Explore ExploreConfig `yaml:"explore"`
}

func defaultConfig() Config {
	return Config{
		Bench: bench.DefaultConfig(),
		Display: DisplayConfig{
			Color:       true,
			ShowHeights: true,
		},
		Explore: ExploreConfig{
			Kind:   "avl",
			MaxKey: 1000,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.bstbench.yaml. A missing file gives the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom reads the file at path on top of the defaults, so settings
// left out of the file keep their default values.
func loadConfigFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		def := defaultConfig()
		return &def, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Explore.MaxKey <= 0 {
		bad := cfg.Explore.MaxKey
		cfg.Explore.MaxKey = defaultConfig().Explore.MaxKey
		return &cfg, fmt.Errorf("explore: max_key must be positive, got %d", bad)
	}
	if _, err := tree.ParseKind(cfg.Explore.Kind); err != nil {
		return &cfg, fmt.Errorf("explore: %w", err)
	}
	return &cfg, nil
}

func writeDefaultConfig(path string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfig(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 bstbench Configuration Settings\n")
	fmt.Printf("══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	b := config.Bench
	fmt.Printf("⏱  %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %v\n", Green, Reset, b.Sizes)
	if b.Seed == 0 {
		fmt.Printf("  • %sseed%s: 0 (derived from the clock on every run)\n", Green, Reset)
	} else {
		fmt.Printf("  • %sseed%s: %d\n", Green, Reset, b.Seed)
	}
	fmt.Printf("  • %smax_key%s: %d\n", Green, Reset, b.MaxKey)
	fmt.Printf("  • %sworkload%s: %s\n", Green, Reset, b.Workload)
	fmt.Printf("  • %ssearch%s: %s\n", Green, Reset, b.Search)
	fmt.Printf("  • %sverify%s: %t\n", Green, Reset, b.Verify)
	fmt.Printf("  • %sprogress%s: %t\n\n", Green, Reset, b.Progress)

	fmt.Printf("🎨 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %scolor%s: %t\n", Green, Reset, config.Display.Color)
	fmt.Printf("  • %sshow_heights%s: %t\n\n", Green, Reset, config.Display.ShowHeights)

	fmt.Printf("🌳 %sExplore:%s\n", Green, Reset)
	fmt.Printf("  • %skind%s: %s\n", Green, Reset, config.Explore.Kind)
	fmt.Printf("  • %smax_key%s: %d\n\n", Green, Reset, config.Explore.MaxKey)

	if err := config.Bench.Validate(); err != nil {
		fmt.Printf("%s⚠ The bench settings cannot be run: %v%s\n\n", Warning, err, Reset)
	}

	fmt.Printf("💡 Command line flags override these settings for a single run.\n")
}
