package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nixdoc"
	main "github.com/fwojciec/nixdoc/cmd/nixdoc"
	"github.com/fwojciec/nixdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `{
	"services.nginx.enable": {
		"description": "Whether to enable nginx.",
		"loc": ["services", "nginx", "enable"],
		"type": "boolean"
	}
}`

// newTestMain returns a Main backed by a temp database and a resolver
// that serves a fixture document instead of running nix-build.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "options.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "nixdoc.db")
	m.Resolver = &mock.PathResolver{
		ResolveFn: func(ctx context.Context, source nixdoc.Source) (string, error) {
			return path, nil
		},
	}
	return m
}

func TestMain_UpdateThenSearch(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	// Update populates the index from the fixture
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"update", "-s", "nixos"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "nixos: 1 options (changed)")

	// A fresh run answers searches from the cached snapshot, without
	// the resolver being consulted
	m2 := newTestMain(t)
	m2.DBPath = m.DBPath
	m2.Resolver = &mock.PathResolver{
		ResolveFn: func(ctx context.Context, source nixdoc.Source) (string, error) {
			t.Error("resolver should not be consulted for search")
			return "", nixdoc.Errorf(nixdoc.EFETCH, "unreachable")
		},
	}

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m2.Run(context.Background(), []string{"search", "services.nginx"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "services.nginx.enable")
	assert.Contains(t, stdout.String(), "type: boolean")
}

func TestMain_UpdateUnchangedOnSecondRun(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"update", "-s", "nixos"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "(changed)")

	// The cached snapshot carries the key set across runs, so an
	// unchanged source reports as such
	m2 := main.NewMain()
	m2.DBPath = m.DBPath
	m2.Resolver = m.Resolver

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m2.Run(context.Background(), []string{"update", "-s", "nixos"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "nixos: 1 options (unchanged)")
}

func TestMain_Keys(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"update", "-s", "nixos"}, stdout, stderr)
	require.NoError(t, err)

	m2 := main.NewMain()
	m2.DBPath = m.DBPath
	m2.Resolver = m.Resolver

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m2.Run(context.Background(), []string{"keys"}, stdout, stderr)
	require.NoError(t, err)
	assert.Equal(t, "services.nginx.enable\n", stdout.String())
}

func TestMain_NoCommand(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "search")
	assert.Contains(t, stdout.String(), "update")
}
