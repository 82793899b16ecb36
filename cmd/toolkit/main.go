package main

import (
	"time"

	"github.com/spf13/cobra"
)

var cliName = "toolkit"

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "toolkit is CLI for auto-staker operators",
	Long:  `toolkit is CLI for auto-staker operators executing mundane tasks`,
	Args:  cobra.ExactArgs(0),
}

func main() {
	rootCmd.Execute() //nolint
}

func init() {
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)

	walletCreateCmd.Flags().String("filename", "privatekey.hex", "Filename to store hex representation of private key")
	walletCmd.AddCommand(walletCreateCmd)
	walletCmd.AddCommand(walletAddressCmd)

	for _, cmd := range []*cobra.Command{replaceCmd, planCmd} {
		cmd.Flags().String("gateway", "", "URL of an Ethereum node API (i.e: Alchemy/Infura)")
		cmd.Flags().String("privatekey", "", "the private key of the staking account")
		cmd.Flags().String("token", defaultTokenAddress, "the staked token address")
		cmd.Flags().String("pool", "", "the staking pool address")
		cmd.Flags().Duration("timeout", time.Minute, "timeout of the chain calls")
	}
	replaceCmd.Flags().Float64("multiplier", 1.5, "gas price multiplier applied to the stuck transaction price")
	planCmd.Flags().Uint8("decimals", 18, "decimals of the staked token")
}
