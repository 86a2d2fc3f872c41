package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) *Config {
	t.Setenv("SHAREDSTORE_BOLT_PATH", filepath.Join(t.TempDir(), "cli.bolt"))
	t.Setenv("SHAREDSTORE_SLOT", "cli")
	config, err := ParseEnv()
	require.Nil(t, err)
	return config
}

func runCommand(config *Config, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, config, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseEnv_Defaults(t *testing.T) {
	config, err := ParseEnv()
	require.Nil(t, err)
	assert.Equal(t, "bolt", config.Backend)
	assert.Equal(t, "shared", config.Slot)
	assert.Equal(t, []string{"localhost"}, config.CassandraHosts)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("SHAREDSTORE_BACKEND", "redis")
	t.Setenv("SHAREDSTORE_CASSANDRA_HOSTS", "a,b")
	t.Setenv("SHAREDSTORE_DEBUG", "true")
	config, err := ParseEnv()
	require.Nil(t, err)
	assert.Equal(t, "redis", config.Backend)
	assert.Equal(t, []string{"a", "b"}, config.CassandraHosts)
	assert.True(t, config.Debug)
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"name": "a"}, parseValue(`{"name":"a"}`))
	assert.Equal(t, 42.0, parseValue("42"))
	assert.Equal(t, "plain text", parseValue("plain text"))
}

func TestRun_Usage(t *testing.T) {
	config := newTestConfig(t)
	code, _, stderr := runCommand(config)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage")

	code, _, _ = runCommand(config, "get")
	assert.Equal(t, exitUsage, code)
	code, _, _ = runCommand(config, "fly", "away")
	assert.Equal(t, exitUsage, code)
}

func TestRun_UnknownBackend(t *testing.T) {
	config := newTestConfig(t)
	config.Backend = "floppy"
	code, _, stderr := runCommand(config, "init")
	assert.Equal(t, exitFailed, code)
	assert.Contains(t, stderr, "unknown backend")
}

func TestRun_Bolt(t *testing.T) {
	config := newTestConfig(t)

	code, _, _ := runCommand(config, "init")
	assert.Equal(t, exitOK, code)

	code, _, _ = runCommand(config, "set", "user", `{"name":"a"}`)
	assert.Equal(t, exitOK, code)
	code, _, _ = runCommand(config, "set", "greeting", "hello")
	assert.Equal(t, exitOK, code)

	code, stdout, _ := runCommand(config, "get", "user")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{\"name\":\"a\"}\n", stdout)

	code, stdout, _ = runCommand(config, "keys")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "greeting\nuser\n", stdout)

	code, _, _ = runCommand(config, "remove", "user")
	assert.Equal(t, exitOK, code)
	code, stdout, _ = runCommand(config, "get", "user")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "null\n", stdout)

	code, _, _ = runCommand(config, "clear")
	assert.Equal(t, exitOK, code)
	code, stdout, _ = runCommand(config, "dump")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "{}\n", stdout)
}

func TestRun_Memory(t *testing.T) {
	config := newTestConfig(t)
	config.Backend = "memory"
	code, stdout, _ := runCommand(config, "dump")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\n", stdout)
}
