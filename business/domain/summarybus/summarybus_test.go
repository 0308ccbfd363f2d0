package summarybus_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/granazap/painel/business/domain/summarybus"
	"github.com/granazap/painel/business/sdk/timeout"
	"github.com/granazap/painel/business/types/money"
	"github.com/granazap/painel/business/types/phone"
	"github.com/granazap/painel/foundation/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(io.Discard, logger.LevelInfo, "TEST", nil)
}

type stubStorer struct {
	months    []summarybus.Month
	history   []summarybus.HistoryPoint
	gotMonths int
	block     chan struct{}
}

func (s *stubStorer) QueryMonth(ctx context.Context, tenantPhone phone.Phone) ([]summarybus.Month, error) {
	if s.block != nil {
		<-s.block
	}
	return s.months, nil
}

func (s *stubStorer) QueryHistory(ctx context.Context, tenantPhone phone.Phone, monthsBack int) ([]summarybus.HistoryPoint, error) {
	s.gotMonths = monthsBack
	return s.history, nil
}

func TestMonth(t *testing.T) {
	storer := &stubStorer{months: []summarybus.Month{{
		TotalIncome:      money.Parse("5000"),
		TotalExpense:     money.Parse("3200.50"),
		Balance:          money.Parse("1799.50"),
		TransactionCount: 42,
		MonthName:        "Agosto",
	}}}

	core := summarybus.NewCore(newTestLogger(), storer)

	month, hasData, err := core.Month(context.Background(), phone.MustParse("+5511999999999"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasData {
		t.Fatal("hasData = false, want true")
	}
	if month.MonthName != "Agosto" || month.TransactionCount != 42 {
		t.Errorf("month = %+v", month)
	}
}

func TestMonthNoData(t *testing.T) {
	core := summarybus.NewCore(newTestLogger(), &stubStorer{})

	month, hasData, err := core.Month(context.Background(), phone.MustParse("+5511999999999"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hasData {
		t.Error("hasData = true, want false")
	}
	if !month.Balance.IsZero() {
		t.Errorf("balance = %s, want zero", month.Balance)
	}
}

func TestMonthTimeout(t *testing.T) {
	storer := &stubStorer{block: make(chan struct{})}
	defer close(storer.block)

	core := summarybus.NewCore(newTestLogger(), storer)
	core.SetTimeout(10 * time.Millisecond)

	_, _, err := core.Month(context.Background(), phone.MustParse("+5511999999999"))
	if !errors.Is(err, timeout.ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestHistoryDefaultsMonthsBack(t *testing.T) {
	storer := &stubStorer{}
	core := summarybus.NewCore(newTestLogger(), storer)

	if _, err := core.History(context.Background(), phone.MustParse("+5511999999999"), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storer.gotMonths != summarybus.DefaultMonthsBack {
		t.Errorf("monthsBack = %d, want %d", storer.gotMonths, summarybus.DefaultMonthsBack)
	}

	if _, err := core.History(context.Background(), phone.MustParse("+5511999999999"), 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storer.gotMonths != 12 {
		t.Errorf("monthsBack = %d, want 12", storer.gotMonths)
	}
}
