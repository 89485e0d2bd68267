// Command fintrack is the interactive personal-finance tracker. It wires the
// configured storage backend to the account and transaction services and
// drives them from a small command loop; all business rules live in
// internal/services.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fintrack/internal/cli"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/services"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("FINTRACK_LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx := context.Background()
	result := cli.InitBackend(ctx, logger, cfg)
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", applog.FieldError, err)
		}
	}()

	app := &app{
		accounts:     services.NewAccountService(result.Backend, cfg.BcryptCost),
		transactions: services.NewTransactionService(result.Backend),
		out:          os.Stdout,
	}

	logger.Info("fintrack started", applog.FieldBackend, cfg.DataBackend)
	app.run(ctx, bufio.NewScanner(os.Stdin))
}

type app struct {
	accounts     *services.AccountService
	transactions *services.TransactionService
	out          *os.File

	session *core.Session
}

func (a *app) run(ctx context.Context, in *bufio.Scanner) {
	fmt.Fprintln(a.out, "fintrack - type 'help' for commands")
	for {
		fmt.Fprint(a.out, "> ")
		if !in.Scan() {
			return
		}
		args := strings.Fields(in.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "register":
			a.register(ctx, args[1:])
		case "login":
			a.login(ctx, args[1:])
		case "add":
			a.add(ctx, args[1:])
		case "list":
			a.list(ctx)
		case "summary":
			a.summary(ctx, args[1:])
		case "help":
			a.help()
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(a.out, "unknown command %q - type 'help'\n", args[0])
		}
	}
}

func (a *app) help() {
	fmt.Fprintln(a.out, `commands:
  register <username> <password>   create an account
  login <username> <password>      start a session
  add <type> <amount> [note...]    record an income/expense transaction
  list                             show all transactions
  summary [YYYY-MM]                monthly income vs expense (default: current month)
  quit`)
}

func (a *app) register(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: register <username> <password>")
		return
	}
	user, err := a.accounts.Register(ctx, args[0], args[1])
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "registered %s - login now\n", user.Username)
}

func (a *app) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: login <username> <password>")
		return
	}
	sess, err := a.accounts.Authenticate(ctx, args[0], args[1])
	if err != nil {
		a.report(err)
		return
	}
	a.session = &sess
	fmt.Fprintf(a.out, "logged in as %s\n", args[0])
}

func (a *app) add(ctx context.Context, args []string) {
	if a.session == nil {
		fmt.Fprintln(a.out, "login first")
		return
	}
	if len(args) < 2 {
		fmt.Fprintln(a.out, "usage: add <income|expense> <amount> [note...]")
		return
	}
	tx, err := a.transactions.Add(ctx, *a.session, services.TransactionInput{
		Type:   args[0],
		Amount: args[1],
		Note:   strings.Join(args[2:], " "),
	})
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "saved %s %s on %s\n", tx.Type, tx.Amount.StringFixed(2), tx.Date)
}

func (a *app) list(ctx context.Context) {
	if a.session == nil {
		fmt.Fprintln(a.out, "login first")
		return
	}
	txs, err := a.transactions.List(ctx, *a.session)
	if err != nil {
		a.report(err)
		return
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "no transactions yet")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tAMOUNT\tNOTE")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Note)
	}
	w.Flush()
}

func (a *app) summary(ctx context.Context, args []string) {
	if a.session == nil {
		fmt.Fprintln(a.out, "login first")
		return
	}

	ym := core.CurrentYearMonth()
	if len(args) > 0 {
		parsed, err := core.ParseYearMonth(args[0])
		if err != nil {
			fmt.Fprintln(a.out, "usage: summary [YYYY-MM]")
			return
		}
		ym = parsed
	}

	s, err := a.transactions.MonthlySummary(ctx, *a.session, ym)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "%s  income %s  expense %s  balance %s\n",
		s.Month, s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Balance().StringFixed(2))
}

// report turns the core error taxonomy into user-facing messages; anything
// outside it is a storage-level fault and ends the session.
func (a *app) report(err error) {
	switch {
	case errors.Is(err, core.ErrEmptyUsername):
		fmt.Fprintln(a.out, "username must not be empty")
	case errors.Is(err, core.ErrDuplicateUsername):
		fmt.Fprintln(a.out, "username already exists")
	case errors.Is(err, core.ErrAuthenticationFailed):
		fmt.Fprintln(a.out, "invalid login - try again")
	case errors.Is(err, core.ErrInvalidType):
		fmt.Fprintln(a.out, "type must be 'income' or 'expense'")
	case errors.Is(err, core.ErrInvalidAmount):
		fmt.Fprintln(a.out, "enter a valid amount")
	default:
		fmt.Fprintf(a.out, "fatal: %v\n", err)
		os.Exit(1)
	}
}
