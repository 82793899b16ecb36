package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	stakerimpl "github.com/textileio/go-autostaker/pkg/staker/impl"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <tx-hash>",
	Short: "Replaces a stuck transaction with a self-transfer",
	Long: `Replaces a stuck transaction with a zero value self-transfer that reuses its nonce
at an escalated gas price`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		multiplier, err := cmd.Flags().GetFloat64("multiplier")
		if err != nil {
			return errors.New("failed to parse multiplier")
		}
		timeout, err := cmd.Flags().GetDuration("timeout")
		if err != nil {
			return errors.New("failed to parse timeout")
		}
		hash := common.HexToHash(args[0])

		ctx, cls := context.WithTimeout(cmd.Context(), timeout)
		defer cls()

		client, closeConn, err := dialLedger(ctx, cmd)
		if err != nil {
			return err
		}
		defer closeConn()

		rep, err := stakerimpl.NewReplacer(client, multiplier).Replace(ctx, hash, nil)
		if err != nil {
			return fmt.Errorf("replacing transaction: %s", err)
		}
		if rep.Skipped {
			fmt.Printf("Transaction %s isn't pending, nothing to replace\n", hash)
			return nil
		}

		fmt.Printf("Nonce: %d\n", rep.Nonce)
		fmt.Printf("New gas price: %s\n", rep.GasPrice)
		fmt.Printf("The new transaction hash is: %s\n", rep.TxHash)

		return nil
	},
}
