package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tombi-toml/tombi/config"
	"github.com/tombi-toml/tombi/lspserver"
)

func newLspCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server over standard input/output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLsp(cfg)
		},
	}
}

func runLsp(cfg *config.Config) error {
	store, err := loadSchemas(cfg)
	if err != nil {
		return withExitCode(err, exitUsage)
	}
	srv := lspserver.NewServer(*cfg, store)
	if err := lspserver.Serve(context.Background(), stdioReadWriteCloser{}, srv); err != nil {
		return withExitCode(fmt.Errorf("language server: %w", err), exitFailure)
	}
	return nil
}

// stdioReadWriteCloser pairs stdin/stdout into the io.ReadWriteCloser
// lspserver.Serve expects; closing it closes stdout without touching
// stdin, mirroring how an LSP client drives shutdown via the "exit"
// notification rather than an EOF on the read side.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error                { return os.Stdout.Close() }
