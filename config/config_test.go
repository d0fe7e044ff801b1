package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() == reflect.Struct {
		for field := range a.Value.NumField() {
			v1 := variable{a.Type.Field(field).Type, a.Value.Field(field)}
			fieldname := a.Type.Field(field).Name
			isNullable := a.Type.Field(field).Tag.Get("test") == "nullable"
			fields = append(fields, visit(v1, name+"."+fieldname, isNullable)...)
		}

		return fields
	}

	if a.Value.IsZero() && !nullable {
		return []string{name}
	}

	return nil
}

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "minihttp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, ""+
			"net:\n"+
			"  addr: 0.0.0.0:8080\n"+
			"  readTimeout: 3s\n"+
			"files:\n"+
			"  directory: /tmp/data/\n"+
			"  store: memory\n"+
			"http:\n"+
			"  strictFraming: true\n",
		)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "0.0.0.0:8080", cfg.NET.Addr)
		require.Equal(t, 3*time.Second, cfg.NET.ReadTimeout)
		require.Equal(t, "/tmp/data/", cfg.Files.Directory)
		require.Equal(t, StoreMemory, cfg.Files.Store)
		require.True(t, cfg.HTTP.StrictFraming)

		def := Default()
		require.Equal(t, def.NET.ReadBufferSize, cfg.NET.ReadBufferSize)
		require.Equal(t, def.HTTP.MaxHeaderSize, cfg.HTTP.MaxHeaderSize)
		require.Equal(t, def.Log.Level, cfg.Log.Level)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "net:\n  port: 80\n"))
		require.Error(t, err)
	})

	t.Run("invalid store", func(t *testing.T) {
		_, err := Load(writeFile(t, "files:\n  store: s3\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.HTTP.MaxHeaderSize = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.NET.ReadTimeout = -time.Second
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "verbose"
	require.Error(t, cfg.Validate())
}

func TestString(t *testing.T) {
	str := Default().String()
	require.Contains(t, str, `"Addr":"127.0.0.1:4221"`)
	require.Contains(t, str, `"Store":"fs"`)
}
