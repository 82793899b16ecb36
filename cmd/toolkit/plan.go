package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/textileio/go-autostaker/pkg/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Shows the amount the next stake attempt would stake",
	Long:  `Reads the account balance and the pool capacity and prints the planned stake amount without sending anything`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		decimals, err := cmd.Flags().GetUint8("decimals")
		if err != nil {
			return errors.New("failed to parse decimals")
		}
		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return errors.New("failed to parse timeout")
		}

		ctx, cls := context.WithTimeout(cmd.Context(), timeout)
		defer cls()

		client, closeConn, err := dialLedger(ctx, cmd)
		if err != nil {
			return err
		}
		defer closeConn()

		balance, err := client.TokenBalance(ctx, client.Address())
		if err != nil {
			return fmt.Errorf("get token balance: %s", err)
		}
		poolMax, err := client.MaxPoolSize(ctx)
		if err != nil {
			return fmt.Errorf("get max pool size: %s", err)
		}
		principal, err := client.TotalPrincipal(ctx)
		if err != nil {
			return fmt.Errorf("get total principal: %s", err)
		}
		open, err := client.IsPoolOpen(ctx)
		if err != nil {
			return fmt.Errorf("get pool status: %s", err)
		}

		fmt.Printf("Account:         %s\n", client.Address())
		fmt.Printf("Balance:         %s\n", planner.FormatUnits(balance, decimals))
		fmt.Printf("Pool max size:   %s\n", planner.FormatUnits(poolMax, decimals))
		fmt.Printf("Total principal: %s\n", planner.FormatUnits(principal, decimals))
		fmt.Printf("Pool open:       %t\n", open)

		amount, err := planner.New(decimals).Plan(balance, poolMax, principal)
		if errors.Is(err, planner.ErrInsufficientAmount) {
			fmt.Printf("Nothing to stake: %s\n", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("planning stake: %s", err)
		}
		fmt.Printf("Planned stake:   %s\n", planner.FormatUnits(amount, decimals))

		return nil
	},
}
