package service_test

import (
	"context"
	"testing"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSaleSvc() (service.SaleService, *stubSaleRepo, *stubInventoryRepo, *stubMovementRepo, *stubProductRepo, *stubCustomerRepo) {
	saleRepo := newStubSaleRepo()
	invRepo := &stubInventoryRepo{}
	movRepo := &stubMovementRepo{}
	prodRepo := newStubProductRepo()
	custRepo := newStubCustomerRepo()
	stockSvc := service.NewStockService(invRepo, movRepo, prodRepo, nil)
	svc := service.NewSaleService(saleRepo, custRepo, prodRepo, stockSvc, nil)
	return svc, saleRepo, invRepo, movRepo, prodRepo, custRepo
}

func TestCreateSale_DeductsStockAndAuditsVenda(t *testing.T) {
	svc, saleRepo, invRepo, movRepo, prodRepo, custRepo := buildSaleSvc()
	p := seedProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Loja Centro", IsActive: true})
	rec := invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 10})

	resp, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: customer.ID.String(),
		SaleDate:   "2026-08-15",
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// Quantity drops by the sold amount; total priced off the catalog.
	assert.Equal(t, 7, rec.Quantity)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, model.PaymentPending, resp.PaymentStatus)
	assert.Len(t, saleRepo.sales, 1)

	require.Len(t, movRepo.movements, 1)
	mov := movRepo.movements[0]
	assert.Equal(t, model.MovementVenda, mov.MovementType)
	assert.Equal(t, 3, mov.Quantity)
	require.NotNil(t, mov.ReferenceType)
	assert.Equal(t, "sale", *mov.ReferenceType)
}

func TestCreateSale_UnitPriceOverrideAndDiscount(t *testing.T) {
	svc, _, invRepo, _, prodRepo, custRepo := buildSaleSvc()
	p := seedProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Loja Norte", IsActive: true})
	invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 10})

	override := decimal.NewFromInt(80)
	discount := decimal.NewFromInt(10)
	resp, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: customer.ID.String(),
		SaleDate:   "2026-08-15",
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 2, UnitPrice: &override, Discount: &discount},
		},
	})
	require.NoError(t, err)

	// 2 * 80 - 10
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.DiscountAmount.Equal(discount))
}

func TestCreateSale_CanDriveStockNegative(t *testing.T) {
	svc, _, invRepo, _, prodRepo, custRepo := buildSaleSvc()
	p := seedProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Loja Sul", IsActive: true})
	rec := invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 1})

	_, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: customer.ID.String(),
		SaleDate:   "2026-08-15",
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID.String(), Quantity: 4},
		},
	})
	require.NoError(t, err, "sales are a statement of fact, never blocked by stock")
	assert.Equal(t, -3, rec.Quantity)
}

func TestCreateSale_InactiveProduct(t *testing.T) {
	svc, saleRepo, _, _, prodRepo, custRepo := buildSaleSvc()
	p := seedProduct(prodRepo)
	p.IsActive = false
	customer := custRepo.seed(&model.Customer{Name: "Loja Leste", IsActive: true})

	_, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: customer.ID.String(),
		SaleDate:   "2026-08-15",
		Items:      []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Empty(t, saleRepo.sales)
}

func TestCreateSale_UnknownCustomer(t *testing.T) {
	svc, _, _, _, prodRepo, _ := buildSaleSvc()
	p := seedProduct(prodRepo)

	_, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: uuid.NewString(),
		SaleDate:   "2026-08-15",
		Items:      []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateSale_MissingInventoryRecordFailsWholeSale(t *testing.T) {
	svc, saleRepo, _, movRepo, prodRepo, custRepo := buildSaleSvc()
	p := seedProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Loja Oeste", IsActive: true})

	_, err := svc.CreateSale(context.Background(), nil, dto.CreateSaleRequest{
		CustomerID: customer.ID.String(),
		SaleDate:   "2026-08-15",
		Items:      []dto.SaleItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrNotFound)
	assert.Empty(t, movRepo.movements)
	// The header insert is rolled back by the surrounding transaction in
	// production; the stub keeps it, so only the error path is asserted here.
	_ = saleRepo
}
