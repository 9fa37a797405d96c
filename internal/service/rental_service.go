package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RentalService interface {
	CreateRental(ctx context.Context, userID *uuid.UUID, req dto.CreateRentalRequest) (*dto.RentalResponse, error)
	GetRental(ctx context.Context, id uuid.UUID) (*dto.RentalResponse, error)
	ListRentals(ctx context.Context, filter dto.RentalFilter) (*dto.Paginated[dto.RentalResponse], error)
	ReturnRental(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req dto.ReturnRentalRequest) (*dto.RentalResponse, error)
}

type rentalService struct {
	rentals   repository.RentalRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	stock     StockService
}

func NewRentalService(
	rentals repository.RentalRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	stock StockService,
) RentalService {
	return &rentalService{rentals: rentals, customers: customers, products: products, stock: stock}
}

// CreateRental opens the rental and commits stock to it by raising
// reserved_quantity on each product, all in one transaction. Availability is
// not checked: reservations may exceed on-hand stock, which shows up as a
// negative available figure until reconciled.
func (s *rentalService) CreateRental(ctx context.Context, userID *uuid.UUID, req dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: customer_id", ErrValidation)
	}
	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		return nil, fmt.Errorf("%w: rental_date", ErrValidation)
	}
	var expectedReturn *time.Time
	if req.ExpectedReturnDate != nil {
		d, err := time.Parse("2006-01-02", *req.ExpectedReturnDate)
		if err != nil {
			return nil, fmt.Errorf("%w: expected_return_date", ErrValidation)
		}
		if d.Before(rentalDate) {
			return nil, fmt.Errorf("%w: data prevista de devolucao anterior a data da locacao", ErrValidation)
		}
		expectedReturn = &d
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: cliente %s", ErrNotFound, req.CustomerID)
	}

	type resolvedItem struct {
		productID uuid.UUID
		unitPrice decimal.Decimal
		quantity  int
		total     decimal.Decimal
	}

	var resolved []resolvedItem
	totalAmount := decimal.Zero

	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: product_id", ErrValidation)
		}
		p, err := s.products.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("%w: produto %s", ErrNotFound, item.ProductID)
		}
		if !p.IsActive {
			return nil, fmt.Errorf("%w: produto %s está inativo", ErrValidation, p.Name)
		}

		unitPrice := decimal.Zero
		if item.UnitPrice != nil {
			unitPrice = *item.UnitPrice
		} else if p.RentalPrice != nil {
			unitPrice = *p.RentalPrice
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalAmount = totalAmount.Add(lineTotal)

		resolved = append(resolved, resolvedItem{
			productID: pid,
			unitPrice: unitPrice,
			quantity:  item.Quantity,
			total:     lineTotal,
		})
	}

	deposit := decimal.Zero
	if req.DepositAmount != nil {
		deposit = *req.DepositAmount
	}

	rental := &model.Rental{
		CustomerID:         customerID,
		RentalDate:         rentalDate,
		ExpectedReturnDate: expectedReturn,
		TotalAmount:        totalAmount,
		DepositAmount:      deposit,
		Status:             model.RentalActive,
		Notes:              req.Notes,
		CreatedBy:          userID,
	}
	for _, item := range resolved {
		rental.Items = append(rental.Items, model.RentalItem{
			ProductID:  item.productID,
			Quantity:   item.quantity,
			UnitPrice:  item.unitPrice,
			TotalPrice: item.total,
		})
	}

	txErr := runTx(ctx, s.rentals.DB(), func(tx *gorm.DB) error {
		if err := s.rentals.CreateTx(tx, rental); err != nil {
			return err
		}
		for _, item := range resolved {
			if err := s.stock.ReserveForRentalTx(tx, userID, item.productID, item.quantity, rental.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	rental.Customer = customer
	return rentalToResponse(rental), nil
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*dto.RentalResponse, error) {
	rental, err := s.rentals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: locacao %s", ErrNotFound, id)
	}
	return rentalToResponse(rental), nil
}

func (s *rentalService) ListRentals(ctx context.Context, filter dto.RentalFilter) (*dto.Paginated[dto.RentalResponse], error) {
	rentals, total, err := s.rentals.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RentalResponse, 0, len(rentals))
	for i := range rentals {
		out = append(out, *rentalToResponse(&rentals[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

// ReturnRental processes a full or partial return. Every returned unit is
// validated against what remains out (returned + q must not exceed the
// ordered quantity), moves from reserved back to available, and appends a
// devolucao movement. When every item is fully returned the rental closes.
func (s *rentalService) ReturnRental(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req dto.ReturnRentalRequest) (*dto.RentalResponse, error) {
	rental, err := s.rentals.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: locacao %s", ErrNotFound, id)
	}
	if rental.Status != model.RentalActive && rental.Status != model.RentalOverdue {
		return nil, fmt.Errorf("%w: locacao %s nao esta ativa", ErrValidation, id)
	}

	returnDate := time.Now().UTC()
	if req.ReturnDate != nil {
		d, err := time.Parse("2006-01-02", *req.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("%w: return_date", ErrValidation)
		}
		returnDate = d
	}

	txErr := runTx(ctx, s.rentals.DB(), func(tx *gorm.DB) error {
		for _, ret := range req.Items {
			itemID, err := uuid.Parse(ret.ID)
			if err != nil {
				return fmt.Errorf("%w: item id", ErrValidation)
			}
			item, err := s.rentals.FindItemTx(tx, itemID, id)
			if err != nil {
				return fmt.Errorf("%w: item %s", ErrNotFound, ret.ID)
			}
			if item.ReturnedQuantity+ret.Quantity > item.Quantity {
				return ErrReturnExceedsRented
			}
			if err := s.rentals.AddReturnedTx(tx, itemID, ret.Quantity); err != nil {
				return err
			}
			if err := s.stock.ReleaseReturnTx(tx, userID, item.ProductID, ret.Quantity, id); err != nil {
				return err
			}
		}

		// Re-read inside the transaction: updates above are visible here.
		items, err := s.rentals.ItemsTx(tx, id)
		if err != nil {
			return err
		}
		for i := range items {
			if !items[i].FullyReturned() {
				return nil
			}
		}
		return s.rentals.CloseTx(tx, id, returnDate)
	})
	if txErr != nil {
		return nil, txErr
	}

	rental, err = s.rentals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rentalToResponse(rental), nil
}

func rentalToResponse(rental *model.Rental) *dto.RentalResponse {
	resp := &dto.RentalResponse{
		ID:            rental.ID.String(),
		CustomerID:    rental.CustomerID.String(),
		RentalDate:    rental.RentalDate.Format("2006-01-02"),
		TotalAmount:   rental.TotalAmount,
		DepositAmount: rental.DepositAmount,
		Status:        rental.Status,
		Notes:         rental.Notes,
		CreatedAt:     rental.CreatedAt.Format(time.RFC3339),
	}
	if rental.ReturnDate != nil {
		d := rental.ReturnDate.Format("2006-01-02")
		resp.ReturnDate = &d
	}
	if rental.ExpectedReturnDate != nil {
		d := rental.ExpectedReturnDate.Format("2006-01-02")
		resp.ExpectedReturnDate = &d
	}
	if rental.Customer != nil {
		resp.CustomerName = rental.Customer.Name
	}
	for i := range rental.Items {
		item := &rental.Items[i]
		ir := dto.RentalItemResponse{
			ID:               item.ID.String(),
			ProductID:        item.ProductID.String(),
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			TotalPrice:       item.TotalPrice,
			ReturnedQuantity: item.ReturnedQuantity,
		}
		if item.Product != nil {
			ir.Product = item.Product.Name
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
