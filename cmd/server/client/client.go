// Package client provides commands that call a running creature-api server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/creature-api/internal/errors"
	"github.com/KirkDiggler/creature-api/internal/handlers/battle/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the creature battle API",
	Long:  `Client commands make real gRPC requests against a running server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(battleCmd)
	ClientCmd.AddCommand(getCreatureCmd)
	ClientCmd.AddCommand(listCreaturesCmd)
	ClientCmd.AddCommand(searchCreaturesCmd)
}

// createBattleClient connects to the server
func createBattleClient() (v1alpha1.BattleServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBattleServiceClient(conn), cleanup, nil
}

// describeError restores the server's error code for display
func describeError(action string, err error) error {
	restored := errors.FromGRPCError(err)
	return fmt.Errorf("failed to %s: %w", action, restored)
}

func fields(resp *structpb.Struct) map[string]interface{} {
	return resp.AsMap()
}

// number reads a JSON number as an int
func number(m map[string]interface{}, key string) int {
	f, _ := m[key].(float64)
	return int(f)
}
