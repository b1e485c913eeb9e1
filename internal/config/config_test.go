package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen address, got %s", cfg.ListenAddr)
	}
	if cfg.BranchCode != "0001" {
		t.Fatalf("expected default branch code, got %s", cfg.BranchCode)
	}
	if !cfg.WithdrawalFee.Equal(mustDecimal(t, "0.50")) {
		t.Fatalf("expected default withdrawal fee 0.50, got %s", cfg.WithdrawalFee)
	}
	if !cfg.SavingsMonthlyRate.Equal(mustDecimal(t, "0.005")) {
		t.Fatalf("expected default savings rate 0.005, got %s", cfg.SavingsMonthlyRate)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.ChannelKeyHash), []byte(defaultChannelKey)); err != nil {
		t.Fatal("the default channel key must verify against the loaded hash")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", " :9090 ")
	t.Setenv("BANK_NAME", "Test Bank")
	t.Setenv("WITHDRAWAL_FEE", "1.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected trimmed override, got %q", cfg.ListenAddr)
	}
	if cfg.BankName != "Test Bank" {
		t.Fatalf("expected overridden bank name, got %q", cfg.BankName)
	}
	if !cfg.WithdrawalFee.Equal(mustDecimal(t, "1.25")) {
		t.Fatalf("expected overridden fee 1.25, got %s", cfg.WithdrawalFee)
	}
}

func TestLoadRejectsBadAmounts(t *testing.T) {
	t.Setenv("WITHDRAWAL_FEE", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a non-numeric fee")
	}

	t.Setenv("WITHDRAWAL_FEE", "-1.00")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a negative fee")
	}
}

func TestLoadUsesProvidedKeyHash(t *testing.T) {
	t.Setenv("CHANNEL_KEY_HASH", "$2a$10$precomputedhashprecomputedhashpre")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ChannelKeyHash != "$2a$10$precomputedhashprecomputedhashpre" {
		t.Fatal("expected the provided hash to be used verbatim")
	}
}
