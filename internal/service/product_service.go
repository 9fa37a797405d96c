package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/infra"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// priceCacheTTL bounds staleness of the public price-check endpoint, which
// serves store terminals without authentication.
const priceCacheTTL = 5 * time.Minute

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter dto.ProductFilter) (*dto.Paginated[dto.ProductResponse], error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	GetQRCode(ctx context.Context, id uuid.UUID) (string, error)
	BulkImport(ctx context.Context, req dto.BulkImportRequest) (*dto.ImportResult, error)
	LowStock(ctx context.Context) ([]dto.LowStockProduct, error)
	PriceCheck(ctx context.Context, barcode string) (*dto.PriceCheckResponse, error)
}

type productService struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
	rdb       *redis.Client
}

func NewProductService(products repository.ProductRepository, inventory repository.InventoryRepository, rdb *redis.Client) ProductService {
	return &productService{products: products, inventory: inventory, rdb: rdb}
}

// CreateProduct inserts the catalog row and renders its SKU as a QR code
// stored with the product. A failed QR render is logged, not fatal.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.products.FindBySKU(ctx, req.SKU); err == nil {
		return nil, fmt.Errorf("%w: sku %s ja cadastrado", ErrConflict, req.SKU)
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id", ErrValidation)
	}

	unit := req.Unit
	if unit == "" {
		unit = "unidade"
	}

	p := &model.Product{
		SKU:          req.SKU,
		Name:         req.Name,
		Description:  req.Description,
		CategoryID:   categoryID,
		ProductType:  req.ProductType,
		Status:       req.Status,
		Barcode:      req.Barcode,
		SerialNumber: req.SerialNumber,
		Unit:         unit,
		CostPrice:    req.CostPrice,
		SalePrice:    req.SalePrice,
		RentalPrice:  req.RentalPrice,
		MinimumStock: req.MinimumStock,
		MaximumStock: req.MaximumStock,
		Weight:       req.Weight,
		IsActive:     true,
	}

	if qr, err := infra.GenerateQRCodeDataURL(p.SKU); err == nil {
		p.QRCode = &qr
	} else {
		log.Warn().Err(err).Str("sku", p.SKU).Msg("failed to render product QR code")
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produto %s", ErrNotFound, id)
	}
	return productToResponse(p), nil
}

func (s *productService) ListProducts(ctx context.Context, filter dto.ProductFilter) (*dto.Paginated[dto.ProductResponse], error) {
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produto %s", ErrNotFound, id)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category_id", ErrValidation)
		}
		p.CategoryID = cid
	}
	if req.ProductType != nil {
		p.ProductType = *req.ProductType
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Barcode != nil {
		p.Barcode = req.Barcode
	}
	if req.SerialNumber != nil {
		p.SerialNumber = req.SerialNumber
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.CostPrice != nil {
		p.CostPrice = req.CostPrice
	}
	if req.SalePrice != nil {
		p.SalePrice = req.SalePrice
	}
	if req.RentalPrice != nil {
		p.RentalPrice = req.RentalPrice
	}
	if req.MinimumStock != nil {
		p.MinimumStock = *req.MinimumStock
	}
	if req.MaximumStock != nil {
		p.MaximumStock = req.MaximumStock
	}
	if req.Weight != nil {
		p.Weight = req.Weight
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidatePriceCache(ctx, p)
	return productToResponse(p), nil
}

// DeleteProduct deactivates the product. Rows are never removed: movements,
// sales, and rentals keep referencing them.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: produto %s", ErrNotFound, id)
	}
	if err := s.products.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidatePriceCache(ctx, p)
	return nil
}

// GetQRCode returns the stored QR data URL, rendering and persisting it on
// demand for products created before QR support.
func (s *productService) GetQRCode(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: produto %s", ErrNotFound, id)
	}
	if p.QRCode != nil && *p.QRCode != "" {
		return *p.QRCode, nil
	}
	qr, err := infra.GenerateQRCodeDataURL(p.SKU)
	if err != nil {
		return "", err
	}
	p.QRCode = &qr
	if err := s.products.Update(ctx, p); err != nil {
		return "", err
	}
	return qr, nil
}

// BulkImport creates products row by row, collecting per-row failures
// instead of aborting the batch. Duplicate SKUs within the batch or against
// the catalog are reported as errors.
func (s *productService) BulkImport(ctx context.Context, req dto.BulkImportRequest) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Warnings: []string{}, ErrorsDetails: []string{}}
	seen := make(map[string]bool, len(req.Products))

	for i, row := range req.Products {
		if seen[row.SKU] {
			result.Errors++
			result.ErrorsDetails = append(result.ErrorsDetails,
				fmt.Sprintf("linha %d: sku %s duplicado no arquivo", i+1, row.SKU))
			continue
		}
		seen[row.SKU] = true

		if _, err := s.CreateProduct(ctx, row); err != nil {
			result.Errors++
			result.ErrorsDetails = append(result.ErrorsDetails,
				fmt.Sprintf("linha %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	result.Success = result.Errors == 0
	return result, nil
}

func (s *productService) LowStock(ctx context.Context) ([]dto.LowStockProduct, error) {
	records, err := s.inventory.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockProduct, 0, len(records))
	for i := range records {
		rec := &records[i]
		row := dto.LowStockProduct{
			ProductID:  rec.ProductID.String(),
			LocationID: rec.LocationID.String(),
			Quantity:   rec.Quantity,
			Reserved:   rec.ReservedQuantity,
			Available:  rec.Available(),
		}
		if rec.Product != nil {
			row.SKU = rec.Product.SKU
			row.Name = rec.Product.Name
			row.MinimumStock = rec.Product.MinimumStock
		}
		if rec.Location != nil {
			row.LocationName = rec.Location.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// PriceCheck resolves a barcode to name and price, served from the Redis
// cache when warm.
func (s *productService) PriceCheck(ctx context.Context, barcode string) (*dto.PriceCheckResponse, error) {
	cacheKey := "price:" + barcode

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached dto.PriceCheckResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	p, err := s.products.FindByBarcode(ctx, barcode)
	if err != nil || !p.IsActive {
		return nil, fmt.Errorf("%w: codigo de barras %s", ErrNotFound, barcode)
	}

	resp := &dto.PriceCheckResponse{
		SKU:       p.SKU,
		Name:      p.Name,
		SalePrice: p.SalePrice,
		Unit:      p.Unit,
	}
	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, cacheKey, data, priceCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *productService) invalidatePriceCache(ctx context.Context, p *model.Product) {
	if s.rdb == nil || p.Barcode == nil {
		return
	}
	_ = s.rdb.Del(ctx, "price:"+*p.Barcode).Err()
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:           p.ID.String(),
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID.String(),
		ProductType:  p.ProductType,
		Status:       p.Status,
		Barcode:      p.Barcode,
		SerialNumber: p.SerialNumber,
		Unit:         p.Unit,
		CostPrice:    p.CostPrice,
		SalePrice:    p.SalePrice,
		RentalPrice:  p.RentalPrice,
		MinimumStock: p.MinimumStock,
		MaximumStock: p.MaximumStock,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}
