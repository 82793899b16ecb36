package main

import (
	"os"

	"github.com/omeid/uconfig"
)

type config struct {
	Chain struct {
		Provider     string `default:"" env:"WEB3_PROVIDER"`
		ChainID      int64  `default:"0" env:"CHAIN_ID"` // 0 asks the provider.
		TokenAddress string `default:"0x514910771AF9Ca656af840dff83E8264EcF986CA" env:"LINK_TOKEN_ADDRESS"`
		PoolAddress  string `default:"" env:"STAKING_CONTRACT_ADDRESS"`
		ExplorerURL  string `default:"https://etherscan.io" env:"EXPLORER_URL"`
	}
	Signer struct {
		PrivateKey string `default:"" env:"PRIVATE_KEY"`
	}
	Stake struct {
		GasLimit                 uint64  `default:"600000" env:"STAKE_GAS_LIMIT"`
		Data                     string  `default:"" env:"STAKE_DATA"`
		FreshGasMultiplier       float64 `default:"2.0" env:"FRESH_GAS_MULTIPLIER"`
		ReplacementGasMultiplier float64 `default:"1.5" env:"REPLACEMENT_GAS_MULTIPLIER"`
		ConfirmationTimeout      string  `default:"750s" env:"CONFIRMATION_TIMEOUT"`
		ResubscribeDelay         string  `default:"5s" env:"RESUBSCRIBE_DELAY"`
		TokenSymbol              string  `default:"LINK" env:"TOKEN_SYMBOL"`
		TokenDecimals            int     `default:"18" env:"TOKEN_DECIMALS"`
		NotifyFailures           bool    `default:"true" env:"NOTIFY_FAILURES"`
	}
	Notify struct {
		TelegramAPIURL    string `default:"" env:"TELEGRAM_API_URL"`
		TelegramBotToken  string `default:"" env:"TELEGRAM_BOT_TOKEN"`
		TelegramChatID    string `default:"" env:"TELEGRAM_CHAT_ID"`
		DiscordWebhookURL string `default:"" env:"DISCORD_WEBHOOK_URL"`
		ThrottleInterval  string `default:"1m" env:"NOTIFY_THROTTLE_INTERVAL"`
	}
	HTTP struct {
		Port                  string `default:"8080" env:"HTTP_PORT"`
		MaxRequestPerInterval uint64 `default:"10" env:"HTTP_MAX_REQUEST_PER_INTERVAL"`
		RateLimInterval       string `default:"1s" env:"HTTP_RATE_LIMIT_INTERVAL"`
	}
	BalanceTracker struct {
		CheckInterval string `default:"5m" env:"BALANCE_CHECK_INTERVAL"`
	}
	Log struct {
		Human          bool   `default:"false" env:"LOG_HUMAN"`
		Debug          bool   `default:"false" env:"LOG_DEBUG"`
		File           string `default:"" env:"LOG_FILE"`
		FileMaxSizeMB  int    `default:"100" env:"LOG_FILE_MAX_SIZE_MB"`
		FileMaxBackups int    `default:"5" env:"LOG_FILE_MAX_BACKUPS"`
		FileMaxAgeDays int    `default:"28" env:"LOG_FILE_MAX_AGE_DAYS"`
	}
}

func setupConfig() *config {
	conf := &config{}

	c, err := uconfig.Classic(&conf, uconfig.Files{})
	if err != nil {
		c.Usage()
		os.Exit(1)
	}

	return conf
}
