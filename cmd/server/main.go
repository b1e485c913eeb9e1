package main

import (
	"log"
	"net/http"

	"github.com/api-sage/retail-banking/internal/adapter/http/controller"
	"github.com/api-sage/retail-banking/internal/adapter/http/middleware"
	"github.com/api-sage/retail-banking/internal/adapter/http/router"
	"github.com/api-sage/retail-banking/internal/adapter/repository/memory"
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

	customerService := services.NewCustomerService(customerRepo)
	accountService := services.NewAccountService(
		accountRepo,
		customerRepo,
		cfg.BranchCode,
		cfg.WithdrawalFee,
		cfg.SavingsMonthlyRate,
	)
	transferService := services.NewTransferService(accountRepo)
	savingsService := services.NewSavingsService(accountRepo)
	reportService := services.NewReportService(customerRepo, accountRepo)

	mux := router.New(
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash),
		controller.NewCustomerController(customerService),
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
		controller.NewSavingsController(savingsService),
		controller.NewReportController(reportService),
	)

	log.Printf("%s listening on %s", cfg.BankName, cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
