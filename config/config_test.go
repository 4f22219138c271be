package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	content := `
app:
  name: tuiter
  env: test
  debug: true
server:
  http: 4000
mysql:
  host: 127.0.0.1
  port: 3306
  username: root
  password: secret
  database: tuiter
redis:
  address: 127.0.0.1
  port: 6379
session:
  cookie_name: sid_test
  expire_hour: 12
`
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conf := New(path)

	assert.True(t, conf.Debug())
	assert.Equal(t, 4000, conf.Server.Http)
	assert.Equal(t, "root:secret@tcp(127.0.0.1:3306)/tuiter?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
	assert.Equal(t, "sid_test", conf.Session.Cookie())
	assert.Equal(t, 12, conf.Session.Hours())
}

func TestSessionDefaults(t *testing.T) {
	var s *Session
	assert.Equal(t, "tuiter_sid", s.Cookie())
	assert.Equal(t, 24, s.Hours())
}

func TestNewMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		New(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
