package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var listPage int

var listCreaturesCmd = &cobra.Command{
	Use:   "list-creatures",
	Short: "List creatures, 20 per page",
	Args:  cobra.NoArgs,
	RunE:  listCreatures,
}

func init() {
	listCreaturesCmd.Flags().IntVar(&listPage, "page", 1, "Page to show")
}

func listCreatures(cmd *cobra.Command, args []string) error {
	req, err := structpb.NewStruct(map[string]interface{}{"page": listPage})
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

	resp, err := client.ListCreatures(ctx, req)
	if err != nil {
		return describeError("list creatures", err)
	}

	result := fields(resp)
	printReferences(result["creatures"])
	fmt.Printf("\nPage %d of %d (%d creatures)\n",
		number(result, "page"), number(result, "total_pages"), number(result, "total_count"))

	return nil
}

func printReferences(value interface{}) {
	refs, _ := value.([]interface{})
	for _, ref := range refs {
		if m, ok := ref.(map[string]interface{}); ok {
			fmt.Printf("  %v\n", m["name"])
		}
	}
}
