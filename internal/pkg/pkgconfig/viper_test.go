package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "int: 42\nbool: true\nfloat: 3.14\nstring: hi\nduration: 250ms\n"+
		"binary: aGVsbG8=\narray: a, b ,c\nmap: k1:v1,k2:v2\n")

	cfg, err := NewViper(path)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cfg.Close()) })

	assert.Equal(t, int64(42), cfg.GetInt("int"))
	assert.True(t, cfg.GetBool("bool"))
	assert.InDelta(t, 3.14, cfg.GetFloat("float"), 1e-9)
	assert.Equal(t, "hi", cfg.GetString("string"))
	assert.Equal(t, 250*time.Millisecond, cfg.GetDuration("duration"))
	assert.Equal(t, "hello", string(cfg.GetBinary("binary")))
	assert.Equal(t, []string{"a", "b", "c"}, cfg.GetArray("array"))
	assert.Equal(t, map[string]string{"k1": "v1", "k2": "v2"}, cfg.GetMap("map"))
	assert.Nil(t, cfg.GetArray("missing"))
}

func TestViperGetBinaryInvalid(t *testing.T) {
	cfg, err := NewViper(writeConfigFile(t, "binary: not-base64\n"))
	require.NoError(t, err)

	assert.Nil(t, cfg.GetBinary("binary"))
}

func TestViperEnvOverride(t *testing.T) {
	t.Setenv("GOCONFIRM_SERVER_ADDRESS_HTTP", ":9999")

	cfg, err := NewViper(writeConfigFile(t, "server:\n  address:\n    http: \":8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.GetString("server.address.http"))
}

func TestNewViperMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
