// Package api holds the versioned configuration types and the file helpers
// they share.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/macropower/termbrot/pkg/yaml"
)

// AppName names the configuration directory.
const AppName = "termbrot"

var ErrNotRegularFile = errors.New("not a regular file")

// GetConfigPath returns the path to filename in the user's config directory.
// It checks $XDG_CONFIG_HOME first, then ~/.config, and finally falls back to
// a temp directory.
func GetConfigPath(filename string) string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, AppName, filename)
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", AppName, filename)
	}

	tmpPath := filepath.Join(os.TempDir(), AppName, filename)

	slog.Warn("could not determine user config directory, using temp path",
		slog.String("path", tmpPath),
		slog.Any("error", err),
	)

	return tmpPath
}

// ReadFile reads a regular file. A missing file is reported with
// [fs.ErrNotExist] in its chain.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Path comes from the user.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// MarshalYAML serializes obj to YAML.
func MarshalYAML(obj any) ([]byte, error) {
	b := &bytes.Buffer{}

	enc := yaml.NewEncoder(b)

	err := enc.Encode(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}

	return b.Bytes(), nil
}

// WriteIfNotExists writes data to path, creating parent directories. It
// reports whether the file was written; an existing regular file is left
// alone.
func WriteIfNotExists(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)

	switch {
	case err == nil && info.Mode().IsRegular():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat file: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return false, fmt.Errorf("create directories: %w", err)
	}

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return false, fmt.Errorf("write file: %w", err)
	}

	return true, nil
}
