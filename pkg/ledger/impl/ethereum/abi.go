package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// DefaultStakeData is the data field passed along transferAndCall. It's the ABI encoding
// of an empty bytes value, which the community pool reads as "no operator".
var DefaultStakeData = common.FromHex(
	"0x0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000000")

// tokenABIJSON is the subset of the ERC677 token the staker uses.
const tokenABIJSON = `[
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf",
	 "outputs":[{"name":"balance","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"},{"name":"_spender","type":"address"}],
	 "name":"allowance","outputs":[{"name":"remaining","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"},
	 {"name":"_data","type":"bytes"}],"name":"transferAndCall","outputs":[{"name":"success","type":"bool"}],
	 "stateMutability":"nonpayable","type":"function"},
	{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],
	 "name":"transfer","outputs":[{"name":"success","type":"bool"}],"stateMutability":"nonpayable","type":"function"}
]`

// poolABIJSON is the subset of the staking pool the staker uses.
const poolABIJSON = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"internalType":"address","name":"staker","type":"address"},
		{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"newStake","type":"uint256"},
		{"indexed":false,"internalType":"uint256","name":"newTotalPrincipal","type":"uint256"}],
	 "name":"Unstaked","type":"event"},
	{"inputs":[],"name":"isOpen","outputs":[{"internalType":"bool","name":"","type":"bool"}],
	 "stateMutability":"view","type":"function"},
	{"inputs":[],"name":"isActive","outputs":[{"internalType":"bool","name":"","type":"bool"}],
	 "stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getMaxPoolSize","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],
	 "stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getTotalPrincipal","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],
	 "stateMutability":"view","type":"function"}
]`

// TokenABI returns the parsed token ABI.
func TokenABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(tokenABIJSON))
}

// PoolABI returns the parsed staking pool ABI.
func PoolABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(poolABIJSON))
}
