package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/nixdoc"
	"github.com/fwojciec/nixdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(source nixdoc.Source, loc ...string) nixdoc.DocEntry {
	return nixdoc.DocEntry{
		Source: source,
		Option: nixdoc.OptionDocumentation{Location: loc, OptionType: "boolean"},
	}
}

// emptySource matches nothing.
func emptySource() *mock.DocSource {
	return &mock.DocSource{
		SearchFn:        func(nixdoc.Lowercase) []nixdoc.DocEntry { return nil },
		SearchLiberalFn: func(nixdoc.Lowercase) []nixdoc.DocEntry { return nil },
	}
}

func testDeps(stdout, stderr *bytes.Buffer) *Dependencies {
	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Sources: map[nixdoc.Source]nixdoc.DocSource{
			nixdoc.SourceNixOS:       emptySource(),
			nixdoc.SourceNixDarwin:   emptySource(),
			nixdoc.SourceHomeManager: emptySource(),
		},
		Caches: map[nixdoc.Source]nixdoc.Cache{},
	}
}

func TestCmdSearch(t *testing.T) {
	t.Parallel()

	t.Run("prints prefix matches sorted by name", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Sources[nixdoc.SourceNixOS] = &mock.DocSource{
			SearchFn: func(query nixdoc.Lowercase) []nixdoc.DocEntry {
				assert.Equal(t, "services.nginx", query.String())
				return []nixdoc.DocEntry{
					entry(nixdoc.SourceNixOS, "services", "nginx", "user"),
					entry(nixdoc.SourceNixOS, "services", "nginx", "enable"),
				}
			},
		}

		cmd := &SearchCmd{Query: "Services.NGINX"}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "services.nginx.enable")
		assert.Contains(t, out, "services.nginx.user")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("services.nginx.enable")),
			bytes.Index(stdout.Bytes(), []byte("services.nginx.user")))
		assert.Empty(t, stderr.String())
	})

	t.Run("falls back to liberal search when prefix search is empty", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Sources[nixdoc.SourceHomeManager] = &mock.DocSource{
			SearchFn: func(nixdoc.Lowercase) []nixdoc.DocEntry { return nil },
			SearchLiberalFn: func(query nixdoc.Lowercase) []nixdoc.DocEntry {
				return []nixdoc.DocEntry{entry(nixdoc.SourceHomeManager, "programs", "git", "enable")}
			},
		}

		cmd := &SearchCmd{Query: "git.en"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "programs.git.enable")
	})

	t.Run("liberal flag skips prefix search", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Sources[nixdoc.SourceNixOS] = &mock.DocSource{
			SearchFn: func(nixdoc.Lowercase) []nixdoc.DocEntry {
				t.Fatal("prefix search should not be called with --liberal")
				return nil
			},
			SearchLiberalFn: func(query nixdoc.Lowercase) []nixdoc.DocEntry {
				return []nixdoc.DocEntry{entry(nixdoc.SourceNixOS, "services", "nginx", "enable")}
			},
		}

		cmd := &SearchCmd{Query: "nginx", Liberal: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "services.nginx.enable")
	})

	t.Run("restricts to selected sources", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)
		deps.Sources[nixdoc.SourceNixOS] = &mock.DocSource{
			SearchFn: func(nixdoc.Lowercase) []nixdoc.DocEntry {
				t.Fatal("nixos should not be searched")
				return nil
			},
		}
		deps.Sources[nixdoc.SourceHomeManager] = &mock.DocSource{
			SearchFn: func(nixdoc.Lowercase) []nixdoc.DocEntry {
				return []nixdoc.DocEntry{entry(nixdoc.SourceHomeManager, "programs", "git", "enable")}
			},
		}

		cmd := &SearchCmd{Query: "programs", Source: []string{"home-manager"}}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "programs.git.enable")
	})

	t.Run("reports no results", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &SearchCmd{Query: "zzz"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No options matching")
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &SearchCmd{Query: "a", Source: []string{"gentoo"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, nixdoc.EINVALID, nixdoc.ErrorCode(err))
		assert.Contains(t, nixdoc.ErrorMessage(err), "unknown source")
		assert.Empty(t, stderr.String(), "the returned error is printed once by main")
		assert.Empty(t, stdout.String())
	})
}
