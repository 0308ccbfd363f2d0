// Admin tool for operating against the backend directly: inspect tokens,
// resolve tenants, and pull summaries without going through the service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/domain/summarybus/stores/summaryrpc"
	"github.com/granazap/painel/business/domain/tenantbus"
	"github.com/granazap/painel/business/domain/tenantbus/stores/tenantrpc"
	"github.com/granazap/painel/business/sdk/rpc"
	"github.com/granazap/painel/business/sdk/session"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Backend struct {
		URL    string `envconfig:"BACKEND_URL" default:"http://localhost:54321"`
		APIKey string `envconfig:"BACKEND_API_KEY" default:""`
	}
	Auth struct {
		AccessToken string `envconfig:"AUTH_ACCESS_TOKEN" default:""`
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN-TOOL", nil)
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.Error(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("processing config: %w", err)
	}

	rpcClient := rpc.New(rpc.Config{
		Log:     log,
		BaseURL: cfg.Backend.URL + "/rest/v1",
		APIKey:  cfg.Backend.APIKey,
		Token:   func() string { return cfg.Auth.AccessToken },
	})

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: resolve-tenant, summary, parse-token")
		return nil
	}

	switch os.Args[1] {
	case "resolve-tenant":
		return runResolveTenant(ctx, tenantbus.NewCore(log, tenantrpc.NewStore(log, rpcClient)))
	case "summary":
		return runSummary(ctx, summarybus.NewCore(log, summaryrpc.NewStore(log, rpcClient)), os.Args[2:])
	case "parse-token":
		return runParseToken(os.Args[2:])
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

func runResolveTenant(ctx context.Context, tb *tenantbus.Core) error {
	tenant, err := tb.Lookup(ctx)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	fmt.Printf("\nSUCCESS: Tenant resolved!\nID: %s\nPhone: %s\nName: %s\nStatus: %s\n",
		tenant.ID, tenant.Phone, tenant.Name, tenant.Status)
	return nil
}

func runSummary(ctx context.Context, sb *summarybus.Core, args []string) error {
	cmd := flag.NewFlagSet("summary", flag.ExitOnError)
	phoneStr := cmd.String("phone", "", "Tenant phone (Required)")
	cmd.Parse(args)

	if *phoneStr == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required phone")
	}

	p, err := phone.Parse(*phoneStr)
	if err != nil {
		return fmt.Errorf("invalid phone: %w", err)
	}

	month, hasData, err := sb.Month(ctx, p)
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	if !hasData {
		fmt.Println("\nNo transactions this month.")
		return nil
	}

	fmt.Printf("\n%s\nIncome:  %s\nExpense: %s\nBalance: %s\nCount:   %d\n",
		month.MonthName, month.TotalIncome, month.TotalExpense, month.Balance, month.TransactionCount)
	return nil
}

func runParseToken(args []string) error {
	cmd := flag.NewFlagSet("parse-token", flag.ExitOnError)
	token := cmd.String("token", "", "Access token (Required)")
	cmd.Parse(args)

	if *token == "" {
		cmd.PrintDefaults()
		return fmt.Errorf("missing required token")
	}

	s, err := session.ParseSession(*token, "")
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	fmt.Printf("\nSubject: %s\nEmail:   %s\nExpires: %s\n", s.User.ID, s.User.Email, s.ExpiresAt)
	return nil
}
