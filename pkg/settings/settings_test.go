package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
)

func newTestStore(path string) *Store {
	return New(path, WithLogger(logger.Discard()))
}

func TestStore_Defaults(t *testing.T) {
	s := newTestStore(filepath.Join(t.TempDir(), "settings.yml"))

	useTrash, err := s.GetBool(KeyUseTrash)
	require.NoError(t, err)
	assert.True(t, useTrash)

	size, err := s.GetInt("big-icon-size")
	require.NoError(t, err)
	assert.Equal(t, 48, size)

	terminal, err := s.GetString("terminal")
	require.NoError(t, err)
	assert.Equal(t, "xterm -e %s", terminal)

	list, err := s.GetStrings("modules-blacklist")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.Equal(t, DropAuto, s.DropAction())
	assert.Len(t, s.Keys(), len(defaults))
	assert.IsIncreasing(t, s.Keys())
}

func TestStore_TypedGettersRejectWrongType(t *testing.T) {
	s := newTestStore(filepath.Join(t.TempDir(), "settings.yml"))

	_, err := s.GetInt(KeyUseTrash)
	assert.ErrorIs(t, err, errors.ErrSettingType)

	_, err = s.GetBool("terminal")
	assert.ErrorIs(t, err, errors.ErrSettingType)

	_, err = s.GetString("nope")
	assert.ErrorIs(t, err, errors.ErrUnknownSetting)
	assert.True(t, errors.IsSettingsError(err))
}

func TestStore_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		want    any
		wantErr error
	}{
		{name: "bool", key: KeyConfirmDeletion, value: false, want: false},
		{name: "int", key: "small-icon-size", value: 32, want: 32},
		{name: "int64 from decoders", key: "small-icon-size", value: int64(16), want: 16},
		{name: "string", key: "archiver", value: "xarchiver", want: "xarchiver"},
		{name: "list", key: "modules-whitelist", value: []string{"gtk", "vfs"}, want: []string{"gtk", "vfs"}},
		{name: "drop action", key: KeyDropAction, value: "Move", want: "Move"},
		{name: "size units keep one char", key: KeyListViewSizeUnits, value: "kB", want: "k"},
		{name: "wrong type", key: KeyUseTrash, value: "yes", wantErr: errors.ErrSettingType},
		{name: "bad drop action", key: KeyDropAction, value: "Link", wantErr: errors.ErrSettingType},
		{name: "unknown key", key: "nope", value: 1, wantErr: errors.ErrUnknownSetting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(filepath.Join(t.TempDir(), "settings.yml"))

			err := s.Set(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := s.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_SetString(t *testing.T) {
	s := newTestStore(filepath.Join(t.TempDir(), "settings.yml"))

	require.NoError(t, s.SetString(KeySIUnit, "true"))
	require.NoError(t, s.SetString("auto-selection-delay", "250"))
	require.NoError(t, s.SetString("modules-blacklist", "a, b,,c"))
	require.NoError(t, s.SetString(KeyDropAction, "Ask"))

	si, _ := s.GetBool(KeySIUnit)
	assert.True(t, si)
	delay, _ := s.GetInt("auto-selection-delay")
	assert.Equal(t, 250, delay)
	list, _ := s.GetStrings("modules-blacklist")
	assert.Equal(t, []string{"a", "b", "c"}, list)
	assert.Equal(t, DropAsk, s.DropAction())

	formatted, err := s.Format("modules-blacklist")
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", formatted)

	assert.ErrorIs(t, s.SetString(KeySIUnit, "maybe"), errors.ErrSettingType)
	assert.ErrorIs(t, s.SetString("big-icon-size", "huge"), errors.ErrSettingType)
	assert.ErrorIs(t, s.SetString("nope", "x"), errors.ErrUnknownSetting)
}

func TestStore_OnChanged(t *testing.T) {
	s := newTestStore(filepath.Join(t.TempDir(), "settings.yml"))

	var changed []string
	unsubscribe := s.OnChanged(func(key string) { changed = append(changed, key) })

	require.NoError(t, s.Set(KeyUseTrash, false))
	require.NoError(t, s.Set(KeyUseTrash, false)) // same value, no event
	require.NoError(t, s.Set("modules-whitelist", []string{"x"}))
	require.NoError(t, s.Set("modules-whitelist", []string{"x"}))
	require.NoError(t, s.Reset(KeyUseTrash))
	require.NoError(t, s.Load())

	assert.Equal(t, []string{KeyUseTrash, "modules-whitelist", KeyUseTrash, ""}, changed)

	unsubscribe()
	require.NoError(t, s.Set(KeyUseTrash, false))
	assert.Len(t, changed, 4)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yml")
	s := newTestStore(path)

	require.NoError(t, s.Set(KeyConfirmTrash, false))
	require.NoError(t, s.Set("thumbnail-icon-size", 256))
	require.NoError(t, s.Set("format-command", "mkfs.ext4 %s"))
	require.NoError(t, s.Set("modules-blacklist", []string{"old"}))
	require.NoError(t, s.Save())

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	reloaded := newTestStore(path)
	require.NoError(t, reloaded.Load())

	confirm, _ := reloaded.GetBool(KeyConfirmTrash)
	assert.False(t, confirm)
	size, _ := reloaded.GetInt("thumbnail-icon-size")
	assert.Equal(t, 256, size)
	format, _ := reloaded.GetString("format-command")
	assert.Equal(t, "mkfs.ext4 %s", format)
	list, _ := reloaded.GetStrings("modules-blacklist")
	assert.Equal(t, []string{"old"}, list)
}

func TestStore_LoadMissingFileUsesDefaults(t *testing.T) {
	s := newTestStore(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, s.Set(KeyUseTrash, false))

	require.NoError(t, s.Load())
	useTrash, _ := s.GetBool(KeyUseTrash)
	assert.True(t, useTrash)
}

func TestStore_LoadPartialAndUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	content := "single-click: true\nfrom-the-future: 1\nmodules-whitelist: [a, b]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := newTestStore(path)
	require.NoError(t, s.Load())

	click, _ := s.GetBool("single-click")
	assert.True(t, click)
	list, _ := s.GetStrings("modules-whitelist")
	assert.Equal(t, []string{"a", "b"}, list)
	// untouched keys keep their defaults
	delay, _ := s.GetInt("auto-selection-delay")
	assert.Equal(t, 600, delay)
}

func TestStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"wrong type", "use-trash: sometimes\n", errors.ErrSettingType},
		{"bad drop action", "drop-action: Link\n", errors.ErrSettingType},
		{"bad list item", "modules-blacklist: [1, 2]\n", errors.ErrSettingType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			err := newTestStore(path).Load()
			assert.ErrorIs(t, err, tt.target)
			assert.True(t, errors.IsSettingsError(err))
		})
	}

	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("use-trash: [unclosed"), 0o644))
	assert.Error(t, newTestStore(path).Load())
}
