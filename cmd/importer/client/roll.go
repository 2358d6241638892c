package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/drawsteel-importer/internal/handlers/importer/v1alpha1"
)

var (
	rollAbility string
	rollFormula string
	rollEdges   int
	rollBanes   int
)

var rollCmd = &cobra.Command{
	Use:   "roll [actor-id]",
	Short: "Make a power roll for a stored actor",
	Long: `Make a power roll. Examples:

  roll actor_1 --ability "Gore"
  roll actor_1 --ability gore --edges 1
  roll actor_1 --formula "2d10 + 3" --banes 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp v1alpha1.RollPowerResponse
		err := call(cmd, v1alpha1.MethodRollPower, &v1alpha1.RollPowerRequest{
			ActorID: args[0],
			Ability: rollAbility,
			Formula: rollFormula,
			Edges:   rollEdges,
			Banes:   rollBanes,
		}, &resp)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		r := resp.Roll
		if r.Ability != "" {
			fmt.Fprintf(out, "%s: ", r.Ability)
		}
		fmt.Fprintf(out, "%s rolled %v %+d = %d, tier %d\n", r.Formula, r.Dice, r.Bonus, r.Total, r.Tier)
		for _, e := range resp.Effects {
			fmt.Fprintf(out, "  %s\n", e)
		}
		return nil
	},
}

var rollLogCmd = &cobra.Command{
	Use:   "roll-log [actor-id]",
	Short: "Show an actor's recent power rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp v1alpha1.GetRollLogResponse
		if err := call(cmd, v1alpha1.MethodGetRollLog, &v1alpha1.RollLogRequest{ActorID: args[0]}, &resp); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, r := range resp.Rolls {
			fmt.Fprintf(out, "%d. %-20s %v %+d = %d, tier %d\n", i+1, r.Ability, r.Dice, r.Bonus, r.Total, r.Tier)
		}
		fmt.Fprintf(out, "Log expires at: %d\n", resp.ExpiresAt)
		return nil
	},
}

var clearRollLogCmd = &cobra.Command{
	Use:   "clear-roll-log [actor-id]",
	Short: "Clear an actor's recent power rolls",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp v1alpha1.ClearRollLogResponse
		if err := call(cmd, v1alpha1.MethodClearRollLog, &v1alpha1.RollLogRequest{ActorID: args[0]}, &resp); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rolls)\n", resp.Message, resp.RollsCleared)
		return nil
	},
}

func init() {
	rollCmd.Flags().StringVar(&rollAbility, "ability", "", "ability name or id")
	rollCmd.Flags().StringVar(&rollFormula, "formula", "", "formula for a bare roll")
	rollCmd.Flags().IntVar(&rollEdges, "edges", 0, "number of edges")
	rollCmd.Flags().IntVar(&rollBanes, "banes", 0, "number of banes")
}
