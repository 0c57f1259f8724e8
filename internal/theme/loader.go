package theme

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Loader resolves themes by name with hot-reload support.
type Loader struct {
	mu        sync.RWMutex
	logger    *slog.Logger
	themesDir string
	current   *Theme
	watcher   *Watcher
}

// NewLoader creates a new theme loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// ThemesDir returns the path to the user's themes directory.
func ThemesDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "alertq", "themes"), nil
}

// Load resolves a theme by name.
// Resolution order:
//  1. User themes directory (~/.config/alertq/themes/)
//  2. Embedded/bundled themes
//
// Users override a bundled theme by placing a file with the same name
// in their themes directory. An unknown name falls back to the default
// theme with a warning.
func (l *Loader) Load(name string) *Theme {
	if name == "" {
		name = DefaultThemeName
	}

	if l.themesDir != "" {
		path := filepath.Join(l.themesDir, name+".toml")
		if t, err := FromFile(path); err == nil {
			l.setCurrent(t)
			l.logger.Debug("loaded user theme", "name", name, "path", path)
			return t
		}
	}

	if doc, found := GetEmbeddedTheme(name); found {
		if t, err := parse([]byte(doc)); err == nil {
			l.setCurrent(t)
			l.logger.Debug("loaded embedded theme", "name", name)
			return t
		}
	}

	l.logger.Warn("theme not found, using default", "name", name)
	t := Default()
	l.setCurrent(t)
	return t
}

// Current returns the most recently loaded theme, or the default if
// nothing has been loaded yet.
func (l *Loader) Current() *Theme {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.current == nil {
		return Default()
	}
	return l.current
}

func (l *Loader) setCurrent(t *Theme) {
	l.mu.Lock()
	l.current = t
	l.mu.Unlock()
}

// Watch starts watching the current theme's file for changes, invoking
// onChange with each reloaded theme. Embedded themes are not watched.
func (l *Loader) Watch(onChange func(*Theme)) error {
	current := l.Current()
	if current.Path == "" {
		l.logger.Debug("not watching embedded theme", "name", current.Name)
		return nil
	}

	w, err := NewWatcher(current.Path, l.logger)
	if err != nil {
		return err
	}
	w.SetChangeCallback(func(t *Theme) {
		l.setCurrent(t)
		if onChange != nil {
			onChange(t)
		}
	})

	l.mu.Lock()
	l.watcher = w
	l.mu.Unlock()

	return w.Start()
}

// Close stops any active watcher.
func (l *Loader) Close() {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w != nil {
		w.Stop()
	}
}
