package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/retail-banking/internal/adapter/repository/memory"
	"github.com/api-sage/retail-banking/internal/cli"
	"github.com/api-sage/retail-banking/internal/config"
	"github.com/api-sage/retail-banking/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	menu := cli.NewMenu(
		os.Stdin,
		os.Stdout,
		cfg.BankName,
		services.NewCustomerService(customerRepo),
		services.NewAccountService(
			accountRepo,
			customerRepo,
			cfg.BranchCode,
			cfg.WithdrawalFee,
			cfg.SavingsMonthlyRate,
		),
		services.NewTransferService(accountRepo),
		services.NewSavingsService(accountRepo),
		services.NewReportService(customerRepo, accountRepo),
	)

	menu.Run(context.Background())
}
