package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/textileio/go-autostaker/pkg/wallet"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Offers wallet utilites",
	Long:  `Offers utilities for the staking account`,
	Args:  cobra.ExactArgs(0),
}

var walletCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a staking account",
	Long:  `Creates a staking account and stores its hex encoded private key in a file`,
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, err := cmd.Flags().GetString("filename")
		if err != nil {
			return errors.New("failed to parse filename")
		}
		privateKey, err := crypto.GenerateKey()
		if err != nil {
			return fmt.Errorf("generate key: %s", err)
		}
		encoded := hexutil.Encode(crypto.FromECDSA(privateKey))[2:]

		w, err := wallet.NewWallet(encoded)
		if err != nil {
			return fmt.Errorf("loading generated key: %s", err)
		}
		if err := os.WriteFile(filename, []byte(encoded), 0o600); err != nil {
			return fmt.Errorf("writing to file %s: %s", filename, err)
		}

		fmt.Printf("Wallet address %s created\n", w.Address())
		fmt.Printf("Private key saved in %s\n", filename)
		fmt.Println("Set it as PRIVATE_KEY and fund the address with gas and tokens before staking")

		return nil
	},
}

var walletAddressCmd = &cobra.Command{
	Use:   "address <private-key>",
	Short: "Returns the address of a staking account",
	Long:  `Returns the address controlled by a hex encoded private key`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.NewWallet(args[0])
		if err != nil {
			return fmt.Errorf("decode key: %s", err)
		}

		fmt.Printf("Wallet address %s\n", w.Address())

		return nil
	},
}
