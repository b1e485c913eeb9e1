// Package cli is the interactive presentation layer. It collects raw
// input, normalizes amounts into exact 2-decimal strings, invokes the
// core services and renders their responses. No business rules live
// here.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/retail-banking/internal/adapter/http/models"
	"github.com/api-sage/retail-banking/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	bankName string

	customers service_interfaces.CustomerService
	accounts  service_interfaces.AccountService
	transfers service_interfaces.TransferService
	savings   service_interfaces.SavingsService
	reports   service_interfaces.ReportService
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	bankName string,
	customers service_interfaces.CustomerService,
	accounts service_interfaces.AccountService,
	transfers service_interfaces.TransferService,
	savings service_interfaces.SavingsService,
	reports service_interfaces.ReportService,
) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		bankName:  bankName,
		customers: customers,
		accounts:  accounts,
		transfers: transfers,
		savings:   savings,
		reports:   reports,
	}
}

func (m *Menu) Run(ctx context.Context) {
	fmt.Fprintf(m.out, "Welcome to %s\n", m.bankName)

	for {
		m.printOptions()
		choice := m.prompt("Option")

		switch choice {
		case "1":
			m.registerCustomer(ctx)
		case "2":
			m.openAccount(ctx)
		case "3":
			m.deposit(ctx)
		case "4":
			m.withdraw(ctx)
		case "5":
			m.transfer(ctx)
		case "6":
			m.statement(ctx)
		case "7":
			m.accountsOf(ctx)
		case "8":
			m.accrueAll(ctx)
		case "9":
			m.projection(ctx)
		case "10":
			m.goalPlan(ctx)
		case "11":
			m.creditLimit(ctx)
		case "12":
			m.requestCreditCard(ctx)
		case "13":
			m.bankReport(ctx)
		case "14":
			m.movementReport(ctx)
		case "15":
			m.closeAccount(ctx)
		case "0":
			fmt.Fprintln(m.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprint(m.out, `
 1. Register customer          9. Savings projection
 2. Open account              10. Savings goal plan
 3. Deposit                   11. Checking credit limit
 4. Withdraw                  12. Request credit card
 5. Transfer                  13. Bank report
 6. Statement                 14. Movement report
 7. Customer accounts         15. Close account
 8. Accrue savings interest    0. Exit
`)
}

func (m *Menu) registerCustomer(ctx context.Context) {
	req := models.RegisterCustomerRequest{
		Name:      m.prompt("Name"),
		TaxID:     m.prompt("Tax id"),
		BirthDate: m.prompt("Birth date (YYYY-MM-DD)"),
	}
	if strings.EqualFold(m.prompt("Emancipated minor? (y/N)"), "y") {
		req.Emancipated = true
	}
	req.GuardianTaxID = m.prompt("Guardian tax id (blank for none)")
	req.PhoneNumber = m.prompt("Phone (blank for none)")
	req.Email = m.prompt("Email (blank for none)")

	resp, err := m.customers.RegisterCustomer(ctx, req)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Registered %s (age %d)\n", resp.Data.Name, resp.Data.Age)
	})
}

func (m *Menu) openAccount(ctx context.Context) {
	req := models.OpenAccountRequest{
		TaxID:   m.prompt("Customer tax id"),
		Variant: m.prompt("Variant (CHECKING/SAVINGS)"),
	}

	resp, err := m.accounts.OpenAccount(ctx, req)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Opened %s account %d at branch %s for %s\n",
			resp.Data.Variant, resp.Data.AccountNumber, resp.Data.BranchCode, resp.Data.CustomerName)
	})
}

func (m *Menu) deposit(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount")
	if !ok {
		return
	}

	resp, err := m.accounts.Deposit(ctx, models.MoneyRequest{AccountNumber: number, Amount: amount})
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "New balance: %s\n", resp.Data.Balance)
	})
}

func (m *Menu) withdraw(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount")
	if !ok {
		return
	}

	resp, err := m.accounts.Withdraw(ctx, models.MoneyRequest{AccountNumber: number, Amount: amount})
	m.render(resp.Message, resp.Errors, err, func() {
		for _, tx := range resp.Data.Transactions {
			fmt.Fprintf(m.out, "  %-10s %s\n", tx.Kind, tx.Amount)
		}
		fmt.Fprintf(m.out, "New balance: %s\n", resp.Data.Balance)
	})
}

func (m *Menu) transfer(ctx context.Context) {
	source, ok := m.promptInt64("Source account number")
	if !ok {
		return
	}
	destination, ok := m.promptInt64("Destination account number")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Amount")
	if !ok {
		return
	}

	resp, err := m.transfers.TransferFunds(ctx, models.TransferRequest{
		SourceAccount:      source,
		DestinationAccount: destination,
		Amount:             amount,
	})
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Transferred %s (fee %s). Source balance %s, destination balance %s\n",
			resp.Data.Amount, resp.Data.FeeAmount, resp.Data.SourceBalance, resp.Data.DestinationBalance)
	})
}

func (m *Menu) statement(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}

	resp, err := m.accounts.GetStatement(ctx, number)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Account %d (%s) - %s - balance %s\n",
			resp.Data.AccountNumber, resp.Data.Variant, resp.Data.CustomerName, resp.Data.Balance)
		for _, tx := range resp.Data.Transactions {
			fmt.Fprintf(m.out, "  %s  %-10s %10s  %s\n", tx.CreatedAt, tx.Kind, tx.Amount, tx.Description)
		}
		fmt.Fprintf(m.out, "Fees paid: %s  Interest earned: %s\n", resp.Data.FeesPaid, resp.Data.InterestEarned)
	})
}

func (m *Menu) accountsOf(ctx context.Context) {
	resp, err := m.accounts.AccountsOf(ctx, m.prompt("Customer tax id"))
	m.render(resp.Message, resp.Errors, err, func() {
		for _, account := range *resp.Data {
			fmt.Fprintf(m.out, "  %d  %-8s balance %s\n", account.AccountNumber, account.Variant, account.Balance)
		}
	})
}

func (m *Menu) accrueAll(ctx context.Context) {
	resp, err := m.savings.AccrueAllSavings(ctx)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Accrued on %d accounts, total interest %s\n",
			resp.Data.AccountsAccrued, resp.Data.TotalInterest)
	})
}

func (m *Menu) projection(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	months, ok := m.promptInt("Months")
	if !ok {
		return
	}

	resp, err := m.savings.ProjectBalance(ctx, models.ProjectionRequest{AccountNumber: number, Months: months})
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Projected balance after %d months: %s (gain %s)\n",
			resp.Data.Months, resp.Data.ProjectedBalance, resp.Data.ProjectedGain)
	})
}

func (m *Menu) goalPlan(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	target, ok := m.promptAmount("Target amount")
	if !ok {
		return
	}
	months, ok := m.promptInt("Months")
	if !ok {
		return
	}

	resp, err := m.savings.PlanGoal(ctx, models.GoalPlanRequest{AccountNumber: number, Target: target, Months: months})
	m.render(resp.Message, resp.Errors, err, func() {
		if resp.Data.GoalReachedByInterest {
			fmt.Fprintf(m.out, "Interest alone reaches the goal; projected balance %s\n", resp.Data.ProjectedBalance)
			return
		}
		fmt.Fprintf(m.out, "Deposit %s per month to reach %s in %d months\n",
			resp.Data.MonthlyDeposit, resp.Data.Target, resp.Data.Months)
	})
}

func (m *Menu) creditLimit(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}

	resp, err := m.accounts.CreditLimit(ctx, number)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Pre-approved credit limit: %s\n", resp.Data.CreditLimit)
	})
}

func (m *Menu) requestCreditCard(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}

	resp, err := m.accounts.RequestCreditCard(ctx, number)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintln(m.out, "Credit card request received. You will hear back by email.")
	})
}

func (m *Menu) bankReport(ctx context.Context) {
	resp, err := m.reports.BankReport(ctx, 5)
	m.render(resp.Message, resp.Errors, err, func() {
		data := resp.Data
		fmt.Fprintf(m.out, "Customers: %d  Accounts: %d (checking %d, savings %d)\n",
			data.TotalCustomers, data.TotalAccounts, data.CheckingAccounts, data.SavingsAccounts)
		fmt.Fprintf(m.out, "Total balance: %s\n", data.TotalBalance)
		fmt.Fprintln(m.out, "Top customers:")
		for _, customer := range data.TopCustomers {
			fmt.Fprintf(m.out, "  %-20s %s\n", customer.Name, customer.Balance)
		}
		fmt.Fprintf(m.out, "Ages: <18: %d  18-29: %d  30-59: %d  60+: %d\n",
			data.AgeBrackets.Minors, data.AgeBrackets.Young, data.AgeBrackets.Adults, data.AgeBrackets.Seniors)
		fmt.Fprintln(m.out, "Most active accounts:")
		for _, account := range data.TopAccounts {
			fmt.Fprintf(m.out, "  %d (%s) - %d transactions\n", account.AccountNumber, account.CustomerName, account.Transactions)
		}
	})
}

func (m *Menu) movementReport(ctx context.Context) {
	resp, err := m.reports.MovementReport(ctx, 3)
	m.render(resp.Message, resp.Errors, err, func() {
		for _, account := range resp.Data.Accounts {
			fmt.Fprintf(m.out, "Account %d (%s) - %s\n", account.AccountNumber, account.Variant, account.CustomerName)
			if len(account.Recent) == 0 {
				fmt.Fprintln(m.out, "  no activity")
				continue
			}
			for _, tx := range account.Recent {
				fmt.Fprintf(m.out, "  %-10s %10s  %s\n", tx.Kind, tx.Amount, tx.Description)
			}
		}
	})
}

func (m *Menu) closeAccount(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}

	resp, err := m.accounts.CloseAccount(ctx, number)
	m.render(resp.Message, resp.Errors, err, func() {
		fmt.Fprintf(m.out, "Account %d closed.\n", resp.Data.AccountNumber)
	})
}

func (m *Menu) prompt(label string) string {
	fmt.Fprintf(m.out, "%s: ", label)
	if !m.in.Scan() {
		return ""
	}
	return strings.TrimSpace(m.in.Text())
}

func (m *Menu) promptAccountNumber() (int64, bool) {
	return m.promptInt64("Account number")
}

func (m *Menu) promptInt64(label string) (int64, bool) {
	value, err := strconv.ParseInt(m.prompt(label), 10, 64)
	if err != nil || value <= 0 {
		fmt.Fprintln(m.out, "Please enter a positive whole number.")
		return 0, false
	}
	return value, true
}

func (m *Menu) promptInt(label string) (int, bool) {
	value, ok := m.promptInt64(label)
	return int(value), ok
}

// promptAmount normalizes raw input (comma decimal separators included)
// into an exact 2-decimal amount string before it reaches the core.
func (m *Menu) promptAmount(label string) (string, bool) {
	raw := strings.ReplaceAll(m.prompt(label), ",", ".")
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) || amount.Exponent() < -2 {
		fmt.Fprintln(m.out, "Please enter a positive amount with at most 2 decimal places.")
		return "", false
	}
	return amount.StringFixed(2), true
}

func (m *Menu) render(message string, details []string, err error, onSuccess func()) {
	if err != nil {
		fmt.Fprintf(m.out, "Error: %s\n", message)
		for _, detail := range details {
			fmt.Fprintf(m.out, "  %s\n", detail)
		}
		return
	}
	onSuccess()
}
