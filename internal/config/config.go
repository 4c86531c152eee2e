// Package config loads the core's tunables from a YAML file, environment
// variables, and flags via viper, following the same config-name/config-path
// convention as the rest of the stack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the tunables the core reads at startup. Everything else
// (clip content, speaker names, edits) lives in ProjectData, not here.
type Settings struct {
	Import struct {
		SpacerThreshold float64 `mapstructure:"spacerThreshold"`
		MaxClipDuration float64 `mapstructure:"maxClipDuration"`
	} `mapstructure:"import"`

	Store struct {
		HistoryCapacity int `mapstructure:"historyCapacity"`
	} `mapstructure:"store"`

	Audio struct {
		SampleRate int    `mapstructure:"sampleRate"`
		Channels   int    `mapstructure:"channels"`
		BitDepth   int    `mapstructure:"bitDepth"`
		FFmpegPath string `mapstructure:"ffmpegPath"`
	} `mapstructure:"audio"`

	Dirs struct {
		DataDir string `mapstructure:"dataDir"`
		TempDir string `mapstructure:"tempDir"`
	} `mapstructure:"dirs"`

	LogLevel string `mapstructure:"logLevel"`
}

func defaults() Settings {
	var s Settings
	s.Import.SpacerThreshold = 1.0
	s.Import.MaxClipDuration = 30.0
	s.Store.HistoryCapacity = 100
	s.Audio.SampleRate = 48000
	s.Audio.Channels = 2
	s.Audio.BitDepth = 16
	s.Audio.FFmpegPath = "ffmpeg"
	s.Dirs.DataDir = "data/projects"
	s.Dirs.TempDir = filepath.Join(os.TempDir(), "transcriptcore")
	s.LogLevel = "info"
	return s
}

// Load reads "transcriptcore.{yaml,json,toml}" from the given search paths
// (falling back to the current directory), overlays environment variables
// prefixed TRANSCRIPTCORE_, and unmarshals into Settings. A missing config
// file is not an error — defaults apply.
func Load(v *viper.Viper, searchPaths ...string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	s := defaults()
	bindDefaults(v, s)

	v.SetConfigName("transcriptcore")
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRANSCRIPTCORE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		return Settings{}, fmt.Errorf("config: unmarshaling into Settings: %w", err)
	}
	return out, nil
}

// bindDefaults seeds viper's own default layer so keys absent from both the
// config file and the environment still resolve to a sane value.
func bindDefaults(v *viper.Viper, s Settings) {
	v.SetDefault("import.spacerThreshold", s.Import.SpacerThreshold)
	v.SetDefault("import.maxClipDuration", s.Import.MaxClipDuration)
	v.SetDefault("store.historyCapacity", s.Store.HistoryCapacity)
	v.SetDefault("audio.sampleRate", s.Audio.SampleRate)
	v.SetDefault("audio.channels", s.Audio.Channels)
	v.SetDefault("audio.bitDepth", s.Audio.BitDepth)
	v.SetDefault("audio.ffmpegPath", s.Audio.FFmpegPath)
	v.SetDefault("dirs.dataDir", s.Dirs.DataDir)
	v.SetDefault("dirs.tempDir", s.Dirs.TempDir)
	v.SetDefault("logLevel", s.LogLevel)
}
