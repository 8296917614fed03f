package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var battleSeed string

var battleCmd = &cobra.Command{
	Use:   "battle [creature-a] [creature-b]",
	Short: "Fight two creatures",
	Long: `Run a battle between two creatures and print the combat log. Examples:

  battle pikachu bulbasaur
  battle charizard blastoise --seed 42`,
	Args: cobra.ExactArgs(2),
	RunE: runBattle,
}

func init() {
	battleCmd.Flags().StringVar(&battleSeed, "seed", "", "Replay a battle with a fixed seed")
}

func runBattle(cmd *cobra.Command, args []string) error {
	request := map[string]interface{}{
		"creature_a": args[0],
		"creature_b": args[1],
	}
	if battleSeed != "" {
		if _, err := strconv.ParseUint(battleSeed, 10, 64); err != nil {
			return fmt.Errorf("invalid seed %q: %w", battleSeed, err)
		}
		// Strings keep seeds above 2^53 exact
		request["seed"] = battleSeed
	}

	req, err := structpb.NewStruct(request)
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

	fmt.Printf("%s vs %s...\n\n", args[0], args[1])

	resp, err := client.Battle(ctx, req)
	if err != nil {
		return describeError("battle", err)
	}

	result := fields(resp)
	if log, ok := result["log"].([]interface{}); ok {
		for _, line := range log {
			fmt.Println(line)
		}
	}

	fmt.Printf("\nBattle %v\n", result["battle_id"])
	for _, key := range []string{"creature_a", "creature_b"} {
		side, _ := result[key].(map[string]interface{})
		stats, _ := side["stats"].(map[string]interface{})
		fmt.Printf("  %-12v HP %d/%d  ATK %d  DEF %d  SPD %d\n",
			side["name"],
			number(side, "final_hp"), number(stats, "health"),
			number(stats, "attack"), number(stats, "defense"), number(stats, "speed"))
	}

	if draw, _ := result["draw"].(bool); draw {
		fmt.Printf("Result: draw after %d turns\n", number(result, "turns"))
	} else {
		fmt.Printf("Winner: %v after %d turns\n", result["winner"], number(result, "turns"))
	}

	return nil
}
