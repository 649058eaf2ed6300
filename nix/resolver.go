// Package nix resolves option documentation paths by invoking the Nix
// toolchain. It implements nixdoc.PathResolver by running nix-build
// with an embedded expression per source and treating trimmed stdout as
// the resulting store path.
package nix

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/nixdoc"
)

//go:embed nixos-options.nix
var nixosExpr string

//go:embed darwin-options.nix
var darwinExpr string

//go:embed hm-options.nix
var homeManagerExpr string

// hmOptionsSubpath is where home-manager places its manual relative to
// the build output (or the user profile).
const hmOptionsSubpath = "share/doc/home-manager/options.json"

// Evaluation must not abort on packages the user's config happens to
// reference.
var allowEnv = []string{
	"NIXPKGS_ALLOW_UNFREE=1",
	"NIXPKGS_ALLOW_BROKEN=1",
	"NIXPKGS_ALLOW_INSECURE=1",
}

// Ensure Resolver implements nixdoc.PathResolver at compile time.
var _ nixdoc.PathResolver = (*Resolver)(nil)

// Resolver locates options.json documents by running nix-build.
type Resolver struct {
	// run executes nix-build and returns its stdout and stderr.
	// Replaceable in tests to avoid requiring a Nix installation.
	run func(ctx context.Context, env []string, args ...string) (stdout, stderr []byte, err error)

	// lookupEnv reads environment variables. Replaceable in tests.
	lookupEnv func(key string) (string, bool)
}

// NewResolver creates a Resolver backed by the real nix-build binary.
func NewResolver() *Resolver {
	return &Resolver{
		run:       runNixBuild,
		lookupEnv: os.LookupEnv,
	}
}

func runNixBuild(ctx context.Context, env []string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, "nix-build", args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Resolve returns the path to the options.json document for a source.
func (r *Resolver) Resolve(ctx context.Context, source nixdoc.Source) (string, error) {
	switch source {
	case nixdoc.SourceNixOS:
		return r.build(ctx, allowEnv, "--no-out-link", "-E", nixosExpr)
	case nixdoc.SourceNixDarwin:
		env := append(append([]string{}, allowEnv...), "NIXPKGS_ALLOW_UNSUPPORTED_SYSTEM=1")
		return r.build(ctx, env, "--no-out-link", "-E", darwinExpr)
	case nixdoc.SourceHomeManager:
		return r.resolveHomeManager(ctx)
	}
	return "", nixdoc.Errorf(nixdoc.EINVALID, "unknown source %q", source)
}

func (r *Resolver) build(ctx context.Context, env []string, args ...string) (string, error) {
	stdout, stderr, err := r.run(ctx, env, args...)
	if err != nil {
		return "", nixdoc.Errorf(nixdoc.EFETCH, "nix-build failed: %s", strings.TrimSpace(string(stderr)))
	}

	path := strings.TrimRight(string(stdout), "\n")
	if path == "" {
		return "", nixdoc.Errorf(nixdoc.EFETCH, "nix-build produced no output path")
	}

	return path, nil
}

func (r *Resolver) resolveHomeManager(ctx context.Context) (string, error) {
	base, buildErr := r.build(ctx, allowEnv, "-E", homeManagerExpr)
	if buildErr == nil {
		return filepath.Join(base, hmOptionsSubpath), nil
	}

	// A profile-installed manual can still serve the options when the
	// build fails (the user set manual.json.enable).
	home, ok := r.lookupEnv("HOME")
	if !ok {
		return "", nixdoc.Errorf(nixdoc.EENV, "HOME must be set")
	}

	fallback := filepath.Join(home, ".nix-profile", hmOptionsSubpath)
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}

	return "", buildErr
}
