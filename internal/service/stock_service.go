package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"
	"github.com/eder5on/Estoque/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockService is the inventory reconciliation core: every quantity or
// reservation change on the inventory table goes through here, inside one
// transaction per business operation, and always appends an immutable
// stock_movements audit row.
type StockService interface {
	RegisterEntry(ctx context.Context, userID *uuid.UUID, req dto.StockEntryRequest) (*dto.InventoryResponse, error)
	UpdateInventory(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	RegisterMovement(ctx context.Context, userID *uuid.UUID, req dto.CreateMovementRequest) (*dto.MovementResponse, error)
	ListInventory(ctx context.Context, filter dto.InventoryFilter) (*dto.Paginated[dto.InventoryResponse], error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.Paginated[dto.MovementResponse], error)

	// Hooks used by the sale and rental services inside their own
	// transactions. The inventory record is looked up by product alone,
	// matching the original commit paths (first record wins when a product
	// is stocked at several locations).
	DeductForSaleTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, saleID uuid.UUID) error
	ReserveForRentalTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, rentalID uuid.UUID) error
	ReleaseReturnTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, rentalID uuid.UUID) error
}

type stockService struct {
	inventory  repository.InventoryRepository
	movements  repository.MovementRepository
	products   repository.ProductRepository
	dispatcher *worker.Dispatcher
}

func NewStockService(
	inventory repository.InventoryRepository,
	movements repository.MovementRepository,
	products repository.ProductRepository,
	dispatcher *worker.Dispatcher,
) StockService {
	return &stockService{inventory: inventory, movements: movements, products: products, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with stub repositories).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Stock entry ──────────────────────────────────────────────────────────────

func (s *stockService) RegisterEntry(ctx context.Context, userID *uuid.UUID, req dto.StockEntryRequest) (*dto.InventoryResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id", ErrValidation)
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("%w: location_id", ErrValidation)
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("%w: produto %s", ErrNotFound, req.ProductID)
	}

	var rec *model.InventoryRecord
	txErr := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		existing, err := s.inventory.FindByProductAndLocationTx(tx, productID, locationID)
		switch {
		case err == nil:
			if err := s.inventory.AdjustTx(tx, existing.ID, req.Quantity, 0); err != nil {
				return err
			}
			existing.Quantity += req.Quantity
			rec = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Lazy creation on first entry for the pair.
			now := time.Now().UTC()
			rec = &model.InventoryRecord{
				ProductID:        productID,
				LocationID:       locationID,
				Quantity:         req.Quantity,
				ReservedQuantity: 0,
				LastMovementAt:   &now,
			}
			if err := s.inventory.CreateTx(tx, rec); err != nil {
				return err
			}
		default:
			return err
		}

		mov := &model.StockMovement{
			ProductID:    productID,
			LocationID:   locationID,
			MovementType: model.MovementEntrada,
			Quantity:     req.Quantity,
			UnitCost:     req.UnitCost,
			Notes:        req.Notes,
			CreatedBy:    userID,
		}
		if req.UnitCost != nil {
			total := req.UnitCost.Mul(decimal.NewFromInt(int64(req.Quantity)))
			mov.TotalCost = &total
		}
		return s.movements.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return inventoryToResponse(rec), nil
}

// ── Manual adjustment ────────────────────────────────────────────────────────

func (s *stockService) UpdateInventory(ctx context.Context, userID *uuid.UUID, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	var rec *model.InventoryRecord
	txErr := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		current, err := s.inventory.FindByIDTx(tx, id)
		if err != nil {
			return fmt.Errorf("%w: inventario %s", ErrNotFound, id)
		}

		if err := s.inventory.SetTx(tx, id, req.Quantity, req.ReservedQuantity); err != nil {
			return err
		}

		// The audit row records the absolute delta; the direction picks the type.
		delta := req.Quantity - current.Quantity
		movType := model.MovementSaida
		if delta > 0 {
			movType = model.MovementEntrada
		}
		if delta != 0 {
			mov := &model.StockMovement{
				ProductID:    current.ProductID,
				LocationID:   current.LocationID,
				MovementType: movType,
				Quantity:     abs(delta),
				Notes:        req.Notes,
				CreatedBy:    userID,
			}
			if err := s.movements.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		current.Quantity = req.Quantity
		current.ReservedQuantity = req.ReservedQuantity
		rec = current
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.maybeAlertLowStock(ctx, rec)
	return inventoryToResponse(rec), nil
}

// ── Generic movement ─────────────────────────────────────────────────────────

func (s *stockService) RegisterMovement(ctx context.Context, userID *uuid.UUID, req dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !model.ValidMovementType(req.MovementType) {
		return nil, fmt.Errorf("%w: tipo de movimentacao invalido", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantidade deve ser maior que zero", ErrValidation)
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id", ErrValidation)
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		return nil, fmt.Errorf("%w: location_id", ErrValidation)
	}

	var mov *model.StockMovement
	var rec *model.InventoryRecord
	txErr := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		inv, err := s.inventory.FindByProductAndLocationTx(tx, productID, locationID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if model.OutboundMovement(req.MovementType) {
				return ErrInsufficientStock
			}
			if req.MovementType == model.MovementEntrada {
				now := time.Now().UTC()
				inv = &model.InventoryRecord{
					ProductID:      productID,
					LocationID:     locationID,
					LastMovementAt: &now,
				}
				if err := s.inventory.CreateTx(tx, inv); err != nil {
					return err
				}
			} else {
				inv = nil
			}
		}

		// Outbound types fail before any write when on-hand is short.
		if model.OutboundMovement(req.MovementType) && inv.Quantity < req.Quantity {
			return ErrInsufficientStock
		}

		mov = &model.StockMovement{
			ProductID:    productID,
			LocationID:   locationID,
			MovementType: req.MovementType,
			Quantity:     req.Quantity,
			UnitCost:     req.UnitCost,
			TotalCost:    req.TotalCost,
			Notes:        req.Notes,
			CreatedBy:    userID,
		}
		if req.ReferenceID != nil {
			refID, err := uuid.Parse(*req.ReferenceID)
			if err != nil {
				return fmt.Errorf("%w: reference_id", ErrValidation)
			}
			mov.ReferenceID = &refID
			mov.ReferenceType = req.ReferenceType
		}
		if err := s.movements.CreateTx(tx, mov); err != nil {
			return err
		}

		// Entrada adds; every other type subtracts.
		if inv != nil {
			delta := -req.Quantity
			if req.MovementType == model.MovementEntrada {
				delta = req.Quantity
			}
			if err := s.inventory.AdjustTx(tx, inv.ID, delta, 0); err != nil {
				return err
			}
			inv.Quantity += delta
			rec = inv
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.maybeAlertLowStock(ctx, rec)
	return movementToResponse(mov), nil
}

// ── Sale / rental hooks ──────────────────────────────────────────────────────

// DeductForSaleTx decrements on-hand stock for one sale line and records the
// venda movement. Mirrors the original behavior: no non-negative check, so a
// sale can drive quantity below zero.
func (s *stockService) DeductForSaleTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, saleID uuid.UUID) error {
	inv, err := s.inventory.FirstByProductTx(tx, productID)
	if err != nil {
		return fmt.Errorf("%w: inventario do produto %s", ErrNotFound, productID)
	}
	if err := s.inventory.AdjustTx(tx, inv.ID, -quantity, 0); err != nil {
		return err
	}
	refType := "sale"
	return s.movements.CreateTx(tx, &model.StockMovement{
		ProductID:     productID,
		LocationID:    inv.LocationID,
		MovementType:  model.MovementVenda,
		Quantity:      quantity,
		ReferenceID:   &saleID,
		ReferenceType: &refType,
		CreatedBy:     userID,
	})
}

// ReserveForRentalTx commits stock to a rental by raising reserved_quantity.
// On-hand quantity is untouched until the item is lost or written off;
// availability is not checked, matching the original.
func (s *stockService) ReserveForRentalTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, rentalID uuid.UUID) error {
	inv, err := s.inventory.FirstByProductTx(tx, productID)
	if err != nil {
		return fmt.Errorf("%w: inventario do produto %s", ErrNotFound, productID)
	}
	if err := s.inventory.AdjustTx(tx, inv.ID, 0, quantity); err != nil {
		return err
	}
	refType := "rental"
	return s.movements.CreateTx(tx, &model.StockMovement{
		ProductID:     productID,
		LocationID:    inv.LocationID,
		MovementType:  model.MovementLocacao,
		Quantity:      quantity,
		ReferenceID:   &rentalID,
		ReferenceType: &refType,
		CreatedBy:     userID,
	})
}

// ReleaseReturnTx undoes a reservation on rental return: reserved goes down
// and a devolucao movement is appended. On-hand quantity is untouched, the
// mirror of ReserveForRentalTx, so a full rent/return cycle nets to zero.
func (s *stockService) ReleaseReturnTx(tx *gorm.DB, userID *uuid.UUID, productID uuid.UUID, quantity int, rentalID uuid.UUID) error {
	inv, err := s.inventory.FirstByProductTx(tx, productID)
	if err != nil {
		return fmt.Errorf("%w: inventario do produto %s", ErrNotFound, productID)
	}
	if err := s.inventory.AdjustTx(tx, inv.ID, 0, -quantity); err != nil {
		return err
	}
	refType := "rental"
	return s.movements.CreateTx(tx, &model.StockMovement{
		ProductID:     productID,
		LocationID:    inv.LocationID,
		MovementType:  model.MovementDevolucao,
		Quantity:      quantity,
		ReferenceID:   &rentalID,
		ReferenceType: &refType,
		CreatedBy:     userID,
	})
}

// ── Listing ──────────────────────────────────────────────────────────────────

func (s *stockService) ListInventory(ctx context.Context, filter dto.InventoryFilter) (*dto.Paginated[dto.InventoryResponse], error) {
	records, total, err := s.inventory.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(records))
	for i := range records {
		out = append(out, *inventoryToResponse(&records[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

func (s *stockService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.Paginated[dto.MovementResponse], error) {
	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, *movementToResponse(&movements[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

// maybeAlertLowStock enqueues a low-stock alert job when available stock
// fell below the product minimum. Best-effort: never fails the request.
func (s *stockService) maybeAlertLowStock(ctx context.Context, rec *model.InventoryRecord) {
	if s.dispatcher == nil || rec == nil {
		return
	}
	p, err := s.products.FindByID(ctx, rec.ProductID)
	if err != nil {
		return
	}
	if rec.Available() < p.MinimumStock {
		_ = s.dispatcher.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
			ProductID:  rec.ProductID.String(),
			SKU:        p.SKU,
			Name:       p.Name,
			LocationID: rec.LocationID.String(),
			Available:  rec.Available(),
			Minimum:    p.MinimumStock,
		})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ── Response mapping ─────────────────────────────────────────────────────────

func inventoryToResponse(rec *model.InventoryRecord) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:                rec.ID.String(),
		ProductID:         rec.ProductID.String(),
		LocationID:        rec.LocationID.String(),
		Quantity:          rec.Quantity,
		ReservedQuantity:  rec.ReservedQuantity,
		AvailableQuantity: rec.Available(),
	}
	if rec.Product != nil {
		resp.ProductSKU = rec.Product.SKU
		resp.ProductName = rec.Product.Name
	}
	if rec.Location != nil {
		resp.LocationName = rec.Location.Name
	}
	if rec.LastMovementAt != nil {
		ts := rec.LastMovementAt.Format(time.RFC3339)
		resp.LastMovementAt = &ts
	}
	return resp
}

func movementToResponse(m *model.StockMovement) *dto.MovementResponse {
	resp := &dto.MovementResponse{
		ID:            m.ID.String(),
		ProductID:     m.ProductID.String(),
		LocationID:    m.LocationID.String(),
		MovementType:  m.MovementType,
		Quantity:      m.Quantity,
		UnitCost:      m.UnitCost,
		TotalCost:     m.TotalCost,
		ReferenceType: m.ReferenceType,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
	if m.Product != nil {
		resp.ProductSKU = m.Product.SKU
		resp.ProductName = m.Product.Name
	}
	if m.Location != nil {
		resp.LocationName = m.Location.Name
	}
	if m.ReferenceID != nil {
		ref := m.ReferenceID.String()
		resp.ReferenceID = &ref
	}
	if m.CreatedBy != nil {
		creator := m.CreatedBy.String()
		resp.CreatedBy = &creator
	}
	return resp
}
