package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const defaultListenAddr = ":8080"
const defaultBankName = "YLLOCIN Bank"
const defaultBranchCode = "0001"
const defaultWithdrawalFee = "0.50"
const defaultSavingsMonthlyRate = "0.005"
const defaultChannelID = "BranchConsole"
const defaultChannelKey = "BranchConsoleKey001"

type Config struct {
	ListenAddr         string
	BankName           string
	BranchCode         string
	WithdrawalFee      decimal.Decimal
	SavingsMonthlyRate decimal.Decimal
	ChannelID          string
	// ChannelKeyHash is the bcrypt hash the auth middleware compares
	// presented keys against. Either CHANNEL_KEY_HASH is supplied
	// directly, or the plain CHANNEL_KEY is hashed at load time.
	ChannelKeyHash string
}

func Load() (Config, error) {
	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	branchCode := strings.TrimSpace(os.Getenv("BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	withdrawalFee, err := amountFromEnv("WITHDRAWAL_FEE", defaultWithdrawalFee)
	if err != nil {
		return Config{}, err
	}
	if withdrawalFee.IsNegative() {
		return Config{}, fmt.Errorf("WITHDRAWAL_FEE cannot be negative")
	}

	savingsRate, err := amountFromEnv("SAVINGS_MONTHLY_RATE", defaultSavingsMonthlyRate)
	if err != nil {
		return Config{}, err
	}
	if savingsRate.IsNegative() {
		return Config{}, fmt.Errorf("SAVINGS_MONTHLY_RATE cannot be negative")
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKeyHash, err := loadChannelKeyHash()
	if err != nil {
		return Config{}, err
	}

	return Config{
		ListenAddr:         listenAddr,
		BankName:           bankName,
		BranchCode:         branchCode,
		WithdrawalFee:      withdrawalFee,
		SavingsMonthlyRate: savingsRate,
		ChannelID:          channelID,
		ChannelKeyHash:     channelKeyHash,
	}, nil
}

func amountFromEnv(name, fallback string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		raw = fallback
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number: %w", name, err)
	}
	return value, nil
}

func loadChannelKeyHash() (string, error) {
	if hash := strings.TrimSpace(os.Getenv("CHANNEL_KEY_HASH")); hash != "" {
		return hash, nil
	}

	key := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if key == "" {
		key = defaultChannelKey
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash channel key: %w", err)
	}
	return string(hashed), nil
}
