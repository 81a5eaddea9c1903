package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/logger"
)

// Save writes the configuration to the user config file
// (~/.charsym/config.toml), rotating backups of the previous file.
func Save(c *Config) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid config")
	}

	if err := os.MkdirAll(UserConfigDir(), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	configPath := UserConfigPath()
	if err := createBackup(configPath); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", configPath)
	}

	logger.Infow("Saved config", logger.FieldPath, configPath)
	return nil
}

// WriteDefault writes a config populated with defaults to the user
// config file. Used by `charsym config init`.
func WriteDefault() (string, error) {
	c := &Config{
		Symbology: SymbologyConfig{Path: "symbology.jsonld", BaseSymbols: true},
		Output:    OutputConfig{Format: FormatTable},
	}
	if err := Save(c); err != nil {
		return "", err
	}
	return UserConfigPath(), nil
}

// createBackup creates rotating backups (.back1, .back2, .back3) before
// modifying the config file.
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup",
			logger.FieldPath, back3,
			logger.FieldError, err.Error())
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}
