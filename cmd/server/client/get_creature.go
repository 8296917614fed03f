package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var getCreatureCmd = &cobra.Command{
	Use:   "get-creature [name]",
	Short: "Show a creature's battle stats",
	Args:  cobra.ExactArgs(1),
	RunE:  getCreature,
}

func getCreature(cmd *cobra.Command, args []string) error {
	req, err := structpb.NewStruct(map[string]interface{}{"name": args[0]})
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

	resp, err := client.GetCreature(ctx, req)
	if err != nil {
		return describeError("get creature", err)
	}

	result := fields(resp)
	stats, _ := result["stats"].(map[string]interface{})
	fmt.Printf("#%d %v\n", number(result, "id"), result["name"])
	fmt.Printf("  Health:  %d\n", number(stats, "health"))
	fmt.Printf("  Attack:  %d\n", number(stats, "attack"))
	fmt.Printf("  Defense: %d\n", number(stats, "defense"))
	fmt.Printf("  Speed:   %d\n", number(stats, "speed"))

	return nil
}
