// Package client provides commands that call a running importer server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/drawsteel-importer/internal/handlers/importer/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running importer server",
	Long:  `Client commands make real gRPC requests against the importer server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(importCmd)
	ClientCmd.AddCommand(getActorCmd)
	ClientCmd.AddCommand(listActorsCmd)
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(rollLogCmd)
	ClientCmd.AddCommand(clearRollLogCmd)
}

// createClient creates an importer service client
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return v1alpha1.NewClient(conn), cleanup, nil
}

// call sends req to method and decodes the reply into resp.
func call(cmd *cobra.Command, method string, req, resp any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	in, err := v1alpha1.EncodeRequest(req)
	if err != nil {
		return err
	}
	out, err := client.Call(ctx, method, in)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return v1alpha1.DecodeResponse(out, resp)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
