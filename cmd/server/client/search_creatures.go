package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var searchCreaturesCmd = &cobra.Command{
	Use:   "search-creatures [query]",
	Short: "Find creatures whose name contains query",
	Args:  cobra.ExactArgs(1),
	RunE:  searchCreatures,
}

func searchCreatures(cmd *cobra.Command, args []string) error {
	req, err := structpb.NewStruct(map[string]interface{}{"query": args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SearchCreatures(ctx, req)
	if err != nil {
		return describeError("search creatures", err)
	}

	result := fields(resp)
	printReferences(result["creatures"])
	fmt.Printf("\n%d matches for %q\n", number(result, "count"), args[0])

	return nil
}
