package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"breaktimer/logging"
	"breaktimer/models"
)

// FileName is the settings file name.
const FileName = "breaktimer.json"

// LoadError reports a settings file that exists but cannot be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("malformed settings file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failure to write the settings file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save settings to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Manager handles settings persistence
type Manager struct {
	path   string
	logger *slog.Logger
}

// NewManager creates a storage manager for the settings file at path. An empty
// path selects DefaultPath.
func NewManager(path string, logger *slog.Logger) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{
		path:   path,
		logger: logging.OrDiscard(logger).With(slog.String("component", "storage")),
	}
}

// DefaultPath returns the settings file next to the executable, falling back
// to the user config directory, then the working directory.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Join(filepath.Dir(exe), FileName)
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, "breaktimer", FileName)
	}
	return filepath.Join(".", FileName)
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// Load loads the settings from disk, creating defaults when the file is
// missing or malformed. It never fails; problems are logged.
func (m *Manager) Load() *models.Settings {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		m.logger.Debug("settings file does not exist, creating defaults", "path", m.path)
		return m.Create()
	}
	if err != nil {
		// The file exists; leave it alone.
		m.logger.Warn("cannot read settings, using defaults", "err", &LoadError{Path: m.path, Err: err})
		return models.DefaultSettings()
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		m.logger.Warn("settings reset to defaults", "err", &LoadError{Path: m.path, Err: err})
		return m.Create()
	}

	if !settings.Valid() {
		m.logger.Warn("invalid interval in settings, resetting", "interval", settings.Interval, "default", models.DefaultInterval)
		settings.Interval = models.DefaultInterval
		if err := m.Save(&settings); err != nil {
			m.logger.Error("cannot persist repaired settings", "err", err)
		}
	}

	m.logger.Debug("settings loaded", "interval", settings.Interval, "img_path", settings.ImagePath)
	return &settings
}

// Create writes and returns the default settings.
func (m *Manager) Create() *models.Settings {
	settings := models.DefaultSettings()
	if err := m.Save(settings); err != nil {
		m.logger.Error("cannot persist default settings", "err", err)
	}
	return settings
}

// Save saves the settings to disk, replacing the previous file.
func (m *Manager) Save(settings *models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return &SaveError{Path: m.path, Err: err}
	}
	data = append(data, '\n')

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &SaveError{Path: m.path, Err: err}
		}
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return &SaveError{Path: m.path, Err: err}
	}
	if err := os.Rename(tmp, m.path); err != nil {
		_ = os.Remove(tmp)
		return &SaveError{Path: m.path, Err: err}
	}

	m.logger.Debug("settings saved", "path", m.path)
	return nil
}
