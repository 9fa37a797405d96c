package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"
	"github.com/eder5on/Estoque/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	CreateSale(ctx context.Context, userID *uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.Paginated[dto.SaleResponse], error)
}

type saleService struct {
	sales      repository.SaleRepository
	customers  repository.CustomerRepository
	products   repository.ProductRepository
	stock      StockService
	dispatcher *worker.Dispatcher
}

func NewSaleService(
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	stock StockService,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{sales: sales, customers: customers, products: products, stock: stock, dispatcher: dispatcher}
}

// CreateSale runs one transaction covering the sale header, its items, the
// inventory deductions, and the venda movements. The caller gets either the
// full sale or an error with nothing persisted.
//
// Stock is deliberately not checked here: a sale is a statement of fact, and
// inventory may go negative until reconciled. The receipt job is dispatched
// after commit and never fails the request.
func (s *saleService) CreateSale(ctx context.Context, userID *uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: customer_id", ErrValidation)
	}
	saleDate, err := time.Parse("2006-01-02", req.SaleDate)
	if err != nil {
		return nil, fmt.Errorf("%w: sale_date", ErrValidation)
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: cliente %s", ErrNotFound, req.CustomerID)
	}

	// Resolve products and price every line before opening the transaction.
	type resolvedItem struct {
		productID uuid.UUID
		unitPrice decimal.Decimal
		quantity  int
		discount  decimal.Decimal
		total     decimal.Decimal
	}

	var resolved []resolvedItem
	totalAmount := decimal.Zero
	discountTotal := decimal.Zero

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
		} else if p.SalePrice != nil {
			unitPrice = *p.SalePrice
		}
		discount := decimal.Zero
		if item.Discount != nil {
			discount = *item.Discount
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(discount)
		totalAmount = totalAmount.Add(lineTotal)
		discountTotal = discountTotal.Add(discount)

		resolved = append(resolved, resolvedItem{
			productID: pid,
			unitPrice: unitPrice,
			quantity:  item.Quantity,
			discount:  discount,
			total:     lineTotal,
		})
	}

	sale := &model.Sale{
		CustomerID:     customerID,
		SaleDate:       saleDate,
		TotalAmount:    totalAmount,
		DiscountAmount: discountTotal,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  model.PaymentPending,
		Notes:          req.Notes,
		CreatedBy:      userID,
	}
	for _, item := range resolved {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID:  item.productID,
			Quantity:   item.quantity,
			UnitPrice:  item.unitPrice,
			TotalPrice: item.total,
			Discount:   item.discount,
		})
	}

	txErr := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.CreateTx(tx, sale); err != nil {
			return err
		}
		for _, item := range resolved {
			if err := s.stock.DeductForSaleTx(tx, userID, item.productID, item.quantity, sale.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	sale.Customer = customer
	s.dispatchReceipt(ctx, sale)
	return saleToResponse(sale), nil
}

// dispatchReceipt enqueues the async PDF+email job. Best-effort.
func (s *saleService) dispatchReceipt(ctx context.Context, sale *model.Sale) {
	if s.dispatcher == nil {
		return
	}
	payload := worker.ReceiptJobPayload{SaleID: sale.ID.String()}
	if sale.Customer != nil && sale.Customer.Email != nil {
		payload.CustomerEmail = sale.Customer.Email
	}
	if err := s.dispatcher.EnqueueReceipt(ctx, payload); err != nil {
		log.Warn().Err(err).Str("sale_id", sale.ID.String()).Msg("failed to enqueue receipt job")
	}
}

func (s *saleService) GetSale(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: venda %s", ErrNotFound, id)
	}
	return saleToResponse(sale), nil
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) (*dto.Paginated[dto.SaleResponse], error) {
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

func saleToResponse(sale *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:             sale.ID.String(),
		CustomerID:     sale.CustomerID.String(),
		SaleDate:       sale.SaleDate.Format("2006-01-02"),
		TotalAmount:    sale.TotalAmount,
		DiscountAmount: sale.DiscountAmount,
		PaymentMethod:  sale.PaymentMethod,
		PaymentStatus:  sale.PaymentStatus,
		Notes:          sale.Notes,
		CreatedAt:      sale.CreatedAt.Format(time.RFC3339),
	}
	if sale.Customer != nil {
		resp.CustomerName = sale.Customer.Name
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		ir := dto.SaleItemResponse{
			ID:         item.ID.String(),
			ProductID:  item.ProductID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Discount:   item.Discount,
		}
		if item.Product != nil {
			ir.Product = item.Product.Name
		}
		resp.Items = append(resp.Items, ir)
	}
	return resp
}
