package vos

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// EnvironFetcher is anything that can list an environment.
type EnvironFetcher interface {
	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// CopyEnv copies all the environment variables from src to dst.
func CopyEnv(dst *MapEnv, src []string) {
	for _, e := range src {
		key, value := splitEnv(e)
		dst.Setenv(key, value)
	}
}

// NewMapEnv creates a new environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// NewMapEnvFromEnvList creates an environment from "key=value" pairs, later
// entries override earlier ones.
func NewMapEnvFromEnvList(environ []string) *MapEnv {
	out := &MapEnv{}
	CopyEnv(out, environ)
	return out
}

func splitEnv(e string) (key, value string) {
	split := strings.SplitN(e, "=", 2)
	key = split[0]
	if len(split) > 1 {
		value = split[1]
	}
	return key, value
}

// MapEnv is an in-memory environment safe for concurrent use.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ EnvironFetcher = (*MapEnv)(nil)

// Unsetenv removes a single environment variable.
func (m *MapEnv) Unsetenv(key string) {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
}

// Setenv sets the value of the environment variable named by the key.
func (m *MapEnv) Setenv(key, value string) {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

// LookupEnv retrieves the value of the environment variable named by the key
// and whether it was set at all.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv retrieves the value of the environment variable named by the key.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// Environ returns the environment as sorted "key=value" pairs, the form
// expected by os/exec.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	env := make([]string, 0, len(m.env))
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(env)

	return env
}

// Clone returns an independent copy of the environment.
func (m *MapEnv) Clone() *MapEnv {
	return NewMapEnvFromEnvList(m.Environ())
}
