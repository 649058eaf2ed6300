package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nixdoc"
	"github.com/fwojciec/nixdoc/nix"
	"github.com/fwojciec/nixdoc/options"
	nixdocslog "github.com/fwojciec/nixdoc/slog"
	"github.com/fwojciec/nixdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding cached option snapshots.
	DB *sqlite.DB

	// Resolver locates options.json documents. Defaults to the real
	// nix-build resolver; replaceable for end-to-end testing.
	Resolver nixdoc.PathResolver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nixdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nixdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NIXDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Resolver == nil {
		m.Resolver = nix.NewResolver()
	}

	// Wire one database per source, restoring cached snapshots so
	// searches work without invoking nix-build.
	store := sqlite.NewCacheStore(m.DB)
	deps.Sources = make(map[nixdoc.Source]nixdoc.DocSource)
	deps.Caches = make(map[nixdoc.Source]nixdoc.Cache)
	for _, source := range nixdoc.Sources() {
		db := options.New(source, m.Resolver, store)
		if err := db.LoadCached(ctx); err != nil && nixdoc.ErrorCode(err) != nixdoc.ENOTFOUND {
			return fmt.Errorf("failed to load cached options for %s: %w", source, err)
		}
		deps.Sources[source] = nixdocslog.NewLoggingDocSource(db, source, logger)
		deps.Caches[source] = db
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NIXDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "nixdoc.db"
	}
	dir := filepath.Join(home, ".nixdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "nixdoc.db")
}
