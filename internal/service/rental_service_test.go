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

func buildRentalSvc() (service.RentalService, *stubRentalRepo, *stubInventoryRepo, *stubMovementRepo, *stubProductRepo, *stubCustomerRepo) {
	rentalRepo := newStubRentalRepo()
	invRepo := &stubInventoryRepo{}
	movRepo := &stubMovementRepo{}
	prodRepo := newStubProductRepo()
	custRepo := newStubCustomerRepo()
	stockSvc := service.NewStockService(invRepo, movRepo, prodRepo, nil)
	svc := service.NewRentalService(rentalRepo, custRepo, prodRepo, stockSvc)
	return svc, rentalRepo, invRepo, movRepo, prodRepo, custRepo
}

func seedRentalProduct(prodRepo *stubProductRepo) *model.Product {
	rentalPrice := decimal.NewFromInt(50)
	return prodRepo.seed(&model.Product{
		SKU:         "TAB-001",
		Name:        "Tablet Vitrine",
		ProductType: model.ProductTypeTablet,
		Status:      model.ProductStatusAtivo,
		Unit:        "unidade",
		RentalPrice: &rentalPrice,
		IsActive:    true,
	})
}

func TestCreateRental_ReservesStock(t *testing.T) {
	svc, rentalRepo, invRepo, movRepo, prodRepo, custRepo := buildRentalSvc()
	p := seedRentalProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Agencia Vitrine", IsActive: true})
	rec := invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 5})

	expected := "2026-09-10"
	resp, err := svc.CreateRental(context.Background(), nil, dto.CreateRentalRequest{
		CustomerID:         customer.ID.String(),
		RentalDate:         "2026-09-01",
		ExpectedReturnDate: &expected,
		Items:              []dto.RentalItemRequest{{ProductID: p.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, model.RentalActive, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 5, rec.Quantity, "reservation leaves on-hand untouched")
	assert.Equal(t, 2, rec.ReservedQuantity)
	assert.Len(t, rentalRepo.rentals, 1)

	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, model.MovementLocacao, movRepo.movements[0].MovementType)
}

func TestCreateRental_ExpectedReturnBeforeRentalDate(t *testing.T) {
	svc, _, _, _, prodRepo, custRepo := buildRentalSvc()
	p := seedRentalProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Agencia Norte", IsActive: true})

	expected := "2026-08-20"
	_, err := svc.CreateRental(context.Background(), nil, dto.CreateRentalRequest{
		CustomerID:         customer.ID.String(),
		RentalDate:         "2026-09-01",
		ExpectedReturnDate: &expected,
		Items:              []dto.RentalItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestReturnRental_PartialThenFullClosesRental(t *testing.T) {
	svc, rentalRepo, invRepo, _, prodRepo, custRepo := buildRentalSvc()
	p := seedRentalProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Agencia Sul", IsActive: true})
	rec := invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 5})

	created, err := svc.CreateRental(context.Background(), nil, dto.CreateRentalRequest{
		CustomerID: customer.ID.String(),
		RentalDate: "2026-09-01",
		Items:      []dto.RentalItemRequest{{ProductID: p.ID.String(), Quantity: 3}},
	})
	require.NoError(t, err)
	rentalID := uuid.MustParse(created.ID)
	itemID := created.Items[0].ID

	// Partial return: 1 of 3. Rental stays active.
	resp, err := svc.ReturnRental(context.Background(), nil, rentalID, dto.ReturnRentalRequest{
		Items: []dto.ReturnItemRequest{{ID: itemID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.RentalActive, resp.Status)
	assert.Equal(t, 1, resp.Items[0].ReturnedQuantity)
	assert.Equal(t, 2, rec.ReservedQuantity)

	// Remaining 2 come back: rental closes, reservation fully released.
	resp, err = svc.ReturnRental(context.Background(), nil, rentalID, dto.ReturnRentalRequest{
		Items: []dto.ReturnItemRequest{{ID: itemID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.RentalReturned, resp.Status)
	assert.NotNil(t, resp.ReturnDate)
	assert.Equal(t, 0, rec.ReservedQuantity)
	assert.Equal(t, 5, rec.Quantity, "full cycle nets to zero")

	stored := rentalRepo.rentals[rentalID]
	assert.True(t, stored.Items[0].FullyReturned())
}

func TestReturnRental_ExceedsRentedQuantity(t *testing.T) {
	svc, rentalRepo, invRepo, _, prodRepo, custRepo := buildRentalSvc()
	p := seedRentalProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Agencia Leste", IsActive: true})
	rec := invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 5})

	created, err := svc.CreateRental(context.Background(), nil, dto.CreateRentalRequest{
		CustomerID: customer.ID.String(),
		RentalDate: "2026-09-01",
		Items:      []dto.RentalItemRequest{{ProductID: p.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)
	rentalID := uuid.MustParse(created.ID)
	itemID := created.Items[0].ID

	_, err = svc.ReturnRental(context.Background(), nil, rentalID, dto.ReturnRentalRequest{
		Items: []dto.ReturnItemRequest{{ID: itemID, Quantity: 3}},
	})
	require.ErrorIs(t, err, service.ErrReturnExceedsRented)

	// Nothing mutated by the failed call.
	assert.Equal(t, 2, rec.ReservedQuantity)
	assert.Equal(t, 0, rentalRepo.rentals[rentalID].Items[0].ReturnedQuantity)
	assert.Equal(t, model.RentalActive, rentalRepo.rentals[rentalID].Status)
}

func TestReturnRental_InactiveRental(t *testing.T) {
	svc, rentalRepo, _, _, _, _ := buildRentalSvc()
	rental := &model.Rental{Status: model.RentalReturned, CustomerID: uuid.New()}
	require.NoError(t, rentalRepo.CreateTx(nil, rental))

	_, err := svc.ReturnRental(context.Background(), nil, rental.ID, dto.ReturnRentalRequest{
		Items: []dto.ReturnItemRequest{{ID: uuid.NewString(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestReturnRental_OverdueRentalStillReturnable(t *testing.T) {
	svc, rentalRepo, invRepo, _, prodRepo, custRepo := buildRentalSvc()
	p := seedRentalProduct(prodRepo)
	customer := custRepo.seed(&model.Customer{Name: "Agencia Oeste", IsActive: true})
	invRepo.add(&model.InventoryRecord{ProductID: p.ID, LocationID: uuid.New(), Quantity: 5})

	created, err := svc.CreateRental(context.Background(), nil, dto.CreateRentalRequest{
		CustomerID: customer.ID.String(),
		RentalDate: "2026-09-01",
		Items:      []dto.RentalItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)
	rentalID := uuid.MustParse(created.ID)

	// Cron flipped it to overdue before the customer showed up.
	rentalRepo.rentals[rentalID].Status = model.RentalOverdue

	_, err = svc.ReturnRental(context.Background(), nil, rentalID, dto.ReturnRentalRequest{
		Items: []dto.ReturnItemRequest{{ID: created.Items[0].ID, Quantity: 1}},
	})
	require.NoError(t, err)
}
