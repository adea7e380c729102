package lang_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/lang"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	t.Run("parses flat rule mappings", func(t *testing.T) {
		messages, err := lang.YAMLParser{}.Parse([]byte("required: \"is required\"\nmin: \"must be at least %s\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "is required", messages["required"])
		assert.Equal(t, "must be at least %s", messages["min"])
	})

	t.Run("fails on malformed content", func(t *testing.T) {
		_, err := lang.YAMLParser{}.Parse([]byte("required: [unclosed"))
		assert.ErrorIs(t, err, lang.ErrFailedToParseYAML)
	})

	t.Run("fails on empty catalogs", func(t *testing.T) {
		_, err := lang.YAMLParser{}.Parse([]byte(""))
		assert.ErrorIs(t, err, lang.ErrFailedToParseYAML)
	})

	t.Run("reports supported extensions", func(t *testing.T) {
		assert.True(t, lang.YAMLParser{}.SupportsFileExtension(".yml"))
		assert.True(t, lang.YAMLParser{}.SupportsFileExtension("yaml"))
		assert.False(t, lang.YAMLParser{}.SupportsFileExtension(".json"))
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	t.Run("parses flat rule mappings", func(t *testing.T) {
		messages, err := lang.JSONParser{}.Parse([]byte(`{"required": "is required"}`))
		require.NoError(t, err)
		assert.Equal(t, "is required", messages["required"])
	})

	t.Run("fails on malformed content", func(t *testing.T) {
		_, err := lang.JSONParser{}.Parse([]byte(`{"required":`))
		assert.ErrorIs(t, err, lang.ErrFailedToParseJSON)
	})

	t.Run("reports supported extensions", func(t *testing.T) {
		assert.True(t, lang.JSONParser{}.SupportsFileExtension(".json"))
		assert.False(t, lang.JSONParser{}.SupportsFileExtension(".yml"))
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	t.Run("picks the parser by extension", func(t *testing.T) {
		dir := t.TempDir()

		yamlPath := filepath.Join(dir, "custom.yml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("required: \"je vereist\"\n"), 0o644))
		messages, err := lang.LoadFile(yamlPath)
		require.NoError(t, err)
		assert.Equal(t, "je vereist", messages["required"])

		jsonPath := filepath.Join(dir, "custom.json")
		require.NoError(t, os.WriteFile(jsonPath, []byte(`{"required": "je vereist"}`), 0o644))
		messages, err = lang.LoadFile(jsonPath)
		require.NoError(t, err)
		assert.Equal(t, "je vereist", messages["required"])
	})

	t.Run("fails on unsupported extensions", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.txt")
		require.NoError(t, os.WriteFile(path, []byte("required: x"), 0o644))

		_, err := lang.LoadFile(path)
		assert.ErrorIs(t, err, lang.ErrUnsupportedFormat)
	})

	t.Run("fails on missing files", func(t *testing.T) {
		_, err := lang.LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
		assert.ErrorIs(t, err, lang.ErrFailedToReadFile)
	})
}
