// Package settings is the persisted user preference store: a flat set of
// typed keys with built-in defaults, saved as YAML.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ehsaniara/fmjob/pkg/constants"
	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
)

// Well-known keys used by fmjob itself
const (
	KeyUseTrash          = "use-trash"
	KeyConfirmDeletion   = "confirm-deletion"
	KeyConfirmTrash      = "confirm-trash"
	KeyDropAction        = "drop-action"
	KeyListViewSizeUnits = "list-view-size-units"
	KeySIUnit            = "si-unit"
	KeyBackupHidden      = "backup-hidden"
)

var defaults = map[string]any{
	"use-trash":                true,
	"single-click":             false,
	"confirm-deletion":         true,
	"confirm-trash":            true,
	"thumbnail-only-local":     true,
	"advanced-mode":            false,
	"si-unit":                  false,
	"startup-notify":           true,
	"backup-hidden":            true,
	"no-usb-trash":             false,
	"expand-empty":             false,
	"show-full-names":          false,
	"only-user-templates":      false,
	"template-run-app":         false,
	"template-type-once":       false,
	"defer-content-test":       false,
	"quick-exec":               false,
	"smart-desktop-drop":       true,
	"show-places-home":         true,
	"show-places-desktop":      true,
	"show-places-root":         false,
	"show-places-computer":     false,
	"show-places-trash":        true,
	"show-places-applications": true,
	"show-places-network":      false,
	"show-places-unmounted":    true,
	"show-thumbnails":          true,
	"shadow-hidden":            false,

	"thumbnail-maximum-size": 2048,
	"big-icon-size":          48,
	"small-icon-size":        24,
	"pane-icon-size":         24,
	"thumbnail-icon-size":    128,
	"auto-selection-delay":   600,

	"terminal":             "xterm -e %s",
	"archiver":             "file-roller",
	"format-command":       "",
	"list-view-size-units": "",
	"saved-search":         "",
	"drop-action":          DropAuto.String(),

	"modules-blacklist": []string{},
	"modules-whitelist": []string{},
}

// Store holds the current values. It is safe for concurrent use; change
// listeners run on the goroutine that made the change.
type Store struct {
	path   string
	logger *logger.Logger

	mu     sync.RWMutex
	values map[string]any

	listenersMu sync.Mutex
	listeners   map[uint64]func(key string)
	nextID      uint64
}

type Option func(*Store)

func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.WithComponent("settings")
		}
	}
}

// New returns a store backed by path, holding the defaults until Load.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:      path,
		logger:    logger.WithComponent("settings"),
		values:    defaultValues(),
		listeners: make(map[uint64]func(string)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultValues() map[string]any {
	values := make(map[string]any, len(defaults))
	for k, v := range defaults {
		values[k] = copyValue(v)
	}
	return values
}

func copyValue(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load replaces every value with the file's content, falling back to
// defaults for keys it does not mention. A missing file is not an error.
// Listeners are notified once with an empty key.
func (s *Store) Load() error {
	values := defaultValues()

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		s.logger.Debug("settings file not found, using defaults", "path", s.path)
	case err != nil:
		return errors.WrapFilesystemError(s.path, "read", err)
	default:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return errors.WrapSettingsError("", fmt.Errorf("parse %s: %w", s.path, err))
		}
		for key, value := range raw {
			if _, known := defaults[key]; !known {
				s.logger.Warn("ignoring unknown setting", "key", key, "path", s.path)
				continue
			}
			normalized, err := normalize(key, value)
			if err != nil {
				return err
			}
			values[key] = normalized
		}
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	s.logger.Debug("settings loaded", "path", s.path, "keys", len(values))
	s.notify("")
	return nil
}

// Save writes every value to the store's file, creating parent directories.
func (s *Store) Save() error {
	s.mu.RLock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = copyValue(v)
	}
	s.mu.RUnlock()

	// keep the canonical spelling for enum-like keys
	if action, err := ParseDropAction(fmt.Sprint(out[KeyDropAction])); err == nil {
		out[KeyDropAction] = action.String()
	} else {
		out[KeyDropAction] = DropAuto.String()
	}
	if units, _ := out[KeyListViewSizeUnits].(string); len(units) > 1 {
		out[KeyListViewSizeUnits] = units[:1]
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.WrapSettingsError("", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), constants.DefaultDirMode); err != nil {
		return errors.WrapFilesystemError(filepath.Dir(s.path), "mkdir", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.DefaultFileMode); err != nil {
		return errors.WrapFilesystemError(tmp, "write", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapFilesystemError(s.path, "rename", err)
	}

	s.logger.Debug("settings saved", "path", s.path)
	return nil
}

// Get returns the current value of key.
func (s *Store) Get(key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, errors.WrapSettingsError(key, errors.ErrUnknownSetting)
	}
	return copyValue(v), nil
}

func (s *Store) GetBool(key string) (bool, error) {
	v, err := s.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.WrapSettingsError(key, errors.ErrSettingType)
	}
	return b, nil
}

func (s *Store) GetInt(key string) (int, error) {
	v, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int)
	if !ok {
		return 0, errors.WrapSettingsError(key, errors.ErrSettingType)
	}
	return i, nil
}

func (s *Store) GetString(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	str, ok := v.(string)
	if !ok {
		return "", errors.WrapSettingsError(key, errors.ErrSettingType)
	}
	return str, nil
}

func (s *Store) GetStrings(key string) ([]string, error) {
	v, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	list, ok := v.([]string)
	if !ok {
		return nil, errors.WrapSettingsError(key, errors.ErrSettingType)
	}
	return list, nil
}

// DropAction returns the drop-action setting.
func (s *Store) DropAction() DropAction {
	str, _ := s.GetString(KeyDropAction)
	action, err := ParseDropAction(str)
	if err != nil {
		return DropAuto
	}
	return action
}

func (s *Store) SetDropAction(action DropAction) error {
	text, err := action.MarshalText()
	if err != nil {
		return errors.WrapSettingsError(KeyDropAction, err)
	}
	return s.Set(KeyDropAction, string(text))
}

// Set stores value for key. The value must have the same type as the key's
// default. Listeners are notified only if the value actually changed.
func (s *Store) Set(key string, value any) error {
	normalized, err := normalize(key, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	changed := !equal(s.values[key], normalized)
	s.values[key] = normalized
	s.mu.Unlock()

	if changed {
		s.notify(key)
	}
	return nil
}

// SetString parses raw according to the key's type and stores it. Lists are
// comma separated.
func (s *Store) SetString(key, raw string) error {
	def, ok := defaults[key]
	if !ok {
		return errors.WrapSettingsError(key, errors.ErrUnknownSetting)
	}

	switch def.(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.WrapSettingsError(key, fmt.Errorf("%w: %v", errors.ErrSettingType, err))
		}
		return s.Set(key, b)
	case int:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return errors.WrapSettingsError(key, fmt.Errorf("%w: %v", errors.ErrSettingType, err))
		}
		return s.Set(key, i)
	case []string:
		list := []string{}
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				list = append(list, item)
			}
		}
		return s.Set(key, list)
	default:
		return s.Set(key, raw)
	}
}

// Reset restores the default value of key.
func (s *Store) Reset(key string) error {
	def, ok := defaults[key]
	if !ok {
		return errors.WrapSettingsError(key, errors.ErrUnknownSetting)
	}
	return s.Set(key, copyValue(def))
}

// Keys returns every known key in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Format renders a value the way SetString accepts it.
func (s *Store) Format(key string) (string, error) {
	v, err := s.Get(key)
	if err != nil {
		return "", err
	}
	if list, ok := v.([]string); ok {
		return strings.Join(list, ","), nil
	}
	return fmt.Sprint(v), nil
}

// OnChanged registers fn to be called with the key of every change, or an
// empty key after Load. The returned function unregisters it.
func (s *Store) OnChanged(fn func(key string)) (unsubscribe func()) {
	s.listenersMu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(key string) {
	s.listenersMu.Lock()
	ids := make([]uint64, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(string), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.listenersMu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

// normalize checks value against the key's default type and returns the
// form the store keeps.
func normalize(key string, value any) (any, error) {
	def, ok := defaults[key]
	if !ok {
		return nil, errors.WrapSettingsError(key, errors.ErrUnknownSetting)
	}

	mismatch := func() error {
		return errors.WrapSettingsError(key, fmt.Errorf("%w: want %T, got %T", errors.ErrSettingType, def, value))
	}

	switch def.(type) {
	case bool:
		b, ok := value.(bool)
		if !ok {
			return nil, mismatch()
		}
		return b, nil

	case int:
		switch v := value.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case uint64:
			return int(v), nil
		default:
			return nil, mismatch()
		}

	case string:
		str, ok := value.(string)
		if !ok {
			return nil, mismatch()
		}
		switch key {
		case KeyDropAction:
			action, err := ParseDropAction(str)
			if err != nil {
				return nil, errors.WrapSettingsError(key, err)
			}
			return action.String(), nil
		case KeyListViewSizeUnits:
			if len(str) > 1 {
				str = str[:1]
			}
		}
		return str, nil

	case []string:
		switch v := value.(type) {
		case []string:
			return append([]string{}, v...), nil
		case []any:
			list := make([]string, 0, len(v))
			for _, item := range v {
				str, ok := item.(string)
				if !ok {
					return nil, mismatch()
				}
				list = append(list, str)
			}
			return list, nil
		case nil:
			return []string{}, nil
		default:
			return nil, mismatch()
		}
	}

	return nil, mismatch()
}

func equal(a, b any) bool {
	la, okA := a.([]string)
	lb, okB := b.([]string)
	if okA || okB {
		if !okA || !okB || len(la) != len(lb) {
			return false
		}
		for i := range la {
			if la[i] != lb[i] {
				return false
			}
		}
		return true
	}
	return a == b
}
