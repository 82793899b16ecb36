package impl

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/textileio/go-autostaker/mocks"
	"github.com/textileio/go-autostaker/pkg/staker"
)

func TestReplaceUnknownTransaction(t *testing.T) {
	t.Parallel()

	client := mocks.NewClient(t)
	hash := common.HexToHash("0x01")
	client.EXPECT().TransactionByHash(mock.Anything, hash).Return(nil, false, nil).Once()

	rep, err := NewReplacer(client, 1.5).Replace(context.Background(), hash, gweis(20))
	require.NoError(t, err)
	require.True(t, rep.Skipped)
	require.Equal(t, hash, rep.StuckTxHash)
}

func TestReplaceUsesStuckGasPrice(t *testing.T) {
	t.Parallel()

	client := mocks.NewClient(t)
	stuck := stakeTx(4, gweis(7))
	client.EXPECT().TransactionByHash(mock.Anything, stuck.Hash()).Return(stuck, true, nil).Once()

	// 7 gwei * 1.5
	price := big.NewInt(10_500_000_000)
	replacement := selfTransferTx(4, price)
	client.EXPECT().SelfTransfer(mock.Anything, uint64(4), price).Return(replacement, nil).Once()

	rep, err := NewReplacer(client, 1.5).Replace(context.Background(), stuck.Hash(), nil)
	require.NoError(t, err)
	require.False(t, rep.Skipped)
	require.Equal(t, replacement.Hash(), rep.TxHash)
	require.Equal(t, "10500000000", rep.GasPrice.String())
}

func TestReplaceLookupError(t *testing.T) {
	t.Parallel()

	client := mocks.NewClient(t)
	hash := common.HexToHash("0x01")
	client.EXPECT().TransactionByHash(mock.Anything, hash).Return(nil, false, errors.New("timeout")).Once()

	rep, err := NewReplacer(client, 1.5).Replace(context.Background(), hash, gweis(20))
	require.ErrorIs(t, err, staker.ErrReplacement)
	require.ErrorIs(t, rep.Err, staker.ErrReplacement)
	require.False(t, rep.Skipped)
}
