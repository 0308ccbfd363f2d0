package all

import (
	"time"

	"github.com/granazap/painel/app/domain/authapp"
	"github.com/granazap/painel/app/domain/budgetapp"
	"github.com/granazap/painel/app/domain/categoryapp"
	"github.com/granazap/painel/app/domain/checkapp"
	"github.com/granazap/painel/app/domain/dashboardapp"
	"github.com/granazap/painel/app/domain/reminderapp"
	"github.com/granazap/painel/app/domain/transactionapp"
	"github.com/granazap/painel/app/sdk/mux"
	"github.com/granazap/painel/business/domain/budgetbus"
	"github.com/granazap/painel/business/domain/budgetbus/stores/budgetrpc"
	"github.com/granazap/painel/business/domain/categorybus"
	"github.com/granazap/painel/business/domain/categorybus/stores/categorycache"
	"github.com/granazap/painel/business/domain/categorybus/stores/categoryrpc"
	"github.com/granazap/painel/business/domain/reminderbus"
	"github.com/granazap/painel/business/domain/reminderbus/stores/reminderrpc"
	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/domain/summarybus/stores/summaryrpc"
	"github.com/granazap/painel/business/domain/transactionbus"
	"github.com/granazap/painel/business/domain/transactionbus/stores/transactionrpc"
	"github.com/granazap/painel/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

func (add) Add(app *web.App, cfg mux.Config) {

	transactionBus := transactionbus.NewCore(cfg.Log, transactionrpc.NewStore(cfg.Log, cfg.RPC))
	budgetBus := budgetbus.NewCore(cfg.Log, budgetrpc.NewStore(cfg.Log, cfg.RPC))
	categoryBus := categorybus.NewCore(cfg.Log, categorycache.NewStore(cfg.Log, categoryrpc.NewStore(cfg.Log, cfg.RPC), time.Minute*5))
	reminderBus := reminderbus.NewCore(cfg.Log, reminderrpc.NewStore(cfg.Log, cfg.RPC))
	summaryBus := summarybus.NewCore(cfg.Log, summaryrpc.NewStore(cfg.Log, cfg.RPC))

	checkapp.Routes(app, checkapp.Config{
		Build:   cfg.Build,
		Log:     cfg.Log,
		AuthBus: cfg.AuthBus,
	})

	authapp.Routes(app, authapp.Config{
		AuthBus: cfg.AuthBus,
	})

	dashboardapp.Routes(app, dashboardapp.Config{
		AuthBus:    cfg.AuthBus,
		SummaryBus: summaryBus,
	})

	transactionapp.Routes(app, transactionapp.Config{
		AuthBus:        cfg.AuthBus,
		TransactionBus: transactionBus,
	})

	budgetapp.Routes(app, budgetapp.Config{
		AuthBus:   cfg.AuthBus,
		BudgetBus: budgetBus,
	})

	categoryapp.Routes(app, categoryapp.Config{
		AuthBus:     cfg.AuthBus,
		CategoryBus: categoryBus,
	})

	reminderapp.Routes(app, reminderapp.Config{
		AuthBus:     cfg.AuthBus,
		ReminderBus: reminderBus,
	})

}
