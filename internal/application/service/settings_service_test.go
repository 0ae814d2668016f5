package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/domain/enum"
)

func TestGetSettingsHidesSecrets(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))

	view := svc.GetSettings(context.Background())
	assert.Equal(t, "dark", view.Theme)
	assert.Equal(t, "My Workshop", view.Receipt.Title)
	assert.False(t, view.Licensed)
}

func TestUpdateTheme(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, svc.UpdateTheme(ctx, "light"))
	assert.Equal(t, "light", svc.GetSettings(ctx).Theme)

	assert.Error(t, svc.UpdateTheme(ctx, "neon"))
	assert.Equal(t, "light", svc.GetSettings(ctx).Theme)
}

func TestUpdateReceipt(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	receipt := entity.ReceiptSettings{
		Title:   "ورشة النور",
		Address: "12 Workshop St",
		Phone:   "01055555555",
		Footer:  "See you again",
	}
	require.NoError(t, svc.UpdateReceipt(ctx, receipt))
	assert.Equal(t, receipt, svc.GetSettings(ctx).Receipt)

	assert.Error(t, svc.UpdateReceipt(ctx, entity.ReceiptSettings{Footer: "no title"}))
}

func TestChangePasswordValidation(t *testing.T) {
	svc := NewSettingsService(newTestStore(t))
	ctx := context.Background()

	assert.Error(t, svc.ChangePassword(ctx, "login", ""))
	assert.Error(t, svc.ChangePassword(ctx, "root", "something"))
	assert.NoError(t, svc.ChangePassword(ctx, "admin", "new-admin-pass"))
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	ledger := NewLedgerService(s)
	svc := NewDashboardService(s)
	ctx := context.Background()

	partA := seedPart(t, s, "Battery", 4, 950, 5)
	seedPart(t, s, "Coolant", 30, 85, 5)
	customer := seedCustomer(t, s, "Fleet account")

	_, err := ledger.RecordOperation(ctx, &RecordOperationInput{
		CustomerID:    &customer.ID,
		PartID:        partA.ID,
		Quantity:      1,
		Price:         950,
		PaidAmount:    400,
		PaymentStatus: enum.PaymentStatusPartial,
	})
	require.NoError(t, err)

	stats := svc.GetStats(ctx)
	assert.Equal(t, 2, stats.TotalParts)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1, stats.TotalOperations)
	assert.Equal(t, 1, stats.TodayOperations)
	assert.InDelta(t, 950.0, stats.TodayRevenue, 0.001)
	assert.InDelta(t, 550.0, stats.TotalReceivables, 0.001)
	require.Len(t, stats.LowStockParts, 1)
	assert.Equal(t, "Battery", stats.LowStockParts[0].Name)
}
