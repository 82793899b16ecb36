package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"github.com/textileio/go-autostaker/pkg/ledger/impl/ethereum"
	"github.com/textileio/go-autostaker/pkg/wallet"
)

const defaultTokenAddress = "0x514910771AF9Ca656af840dff83E8264EcF986CA"

// dialLedger builds a ledger client from the chain flags of cmd. The returned func closes
// the connection.
func dialLedger(ctx context.Context, cmd *cobra.Command) (*ethereum.Client, func(), error) {
	gateway, err := cmd.Flags().GetString("gateway")
	if err != nil || gateway == "" {
		return nil, nil, errors.New("failed to parse gateway")
	}
	privateKey, err := cmd.Flags().GetString("privatekey")
	if err != nil {
		return nil, nil, errors.New("failed to parse privatekey")
	}
	token, err := cmd.Flags().GetString("token")
	if err != nil || !common.IsHexAddress(token) {
		return nil, nil, errors.New("failed to parse token address")
	}
	pool, err := cmd.Flags().GetString("pool")
	if err != nil || !common.IsHexAddress(pool) {
		return nil, nil, errors.New("failed to parse pool address")
	}

	w, err := wallet.NewWallet(privateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("creating wallet: %s", err)
	}

	conn, err := ethclient.DialContext(ctx, gateway)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to ethereum endpoint: %s", err)
	}
	chainID, err := conn.ChainID(ctx)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("get chain id: %s", err)
	}

	client, err := ethereum.NewClient(conn, w, chainID, common.HexToAddress(token), common.HexToAddress(pool))
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("creating ledger client: %s", err)
	}

	return client, conn.Close, nil
}
