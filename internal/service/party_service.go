package service

// Customers, suppliers, categories, companies, and locations are thin
// create/list services over their repositories, grouped in one file like
// their repository counterparts.

import (
	"context"
	"fmt"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/google/uuid"
)

type PartyService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, filter dto.CustomerFilter) (*dto.Paginated[dto.CustomerResponse], error)

	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, filter dto.SupplierFilter) (*dto.Paginated[dto.SupplierResponse], error)

	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, page, limit int) (*dto.Paginated[dto.CategoryResponse], error)

	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	ListCompanies(ctx context.Context, page, limit int) (*dto.Paginated[dto.CompanyResponse], error)

	CreateLocation(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error)
	ListLocations(ctx context.Context, companyID *uuid.UUID) ([]dto.LocationResponse, error)
}

type partyService struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	categories repository.CategoryRepository
	companies repository.CompanyRepository
}

func NewPartyService(
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	categories repository.CategoryRepository,
	companies repository.CompanyRepository,
) PartyService {
	return &partyService{customers: customers, suppliers: suppliers, categories: categories, companies: companies}
}

// ── Customers ────────────────────────────────────────────────────────────────

func (s *partyService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customerType := req.CustomerType
	if customerType == "" {
		customerType = model.CustomerIndividual
	}
	c := &model.Customer{
		Name:         req.Name,
		CPFCNPJ:      req.CPFCNPJ,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		CustomerType: customerType,
		IsActive:     true,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *partyService) GetCustomer(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: cliente %s", ErrNotFound, id)
	}
	return customerToResponse(c), nil
}

func (s *partyService) ListCustomers(ctx context.Context, filter dto.CustomerFilter) (*dto.Paginated[dto.CustomerResponse], error) {
	customers, total, err := s.customers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

func (s *partyService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:          req.Name,
		CNPJ:          req.CNPJ,
		Category:      req.Category,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		DeliveryTime:  req.DeliveryTime,
		Rating:        req.Rating,
		IsActive:      true,
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	return supplierToResponse(sup), nil
}

func (s *partyService) GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: fornecedor %s", ErrNotFound, id)
	}
	return supplierToResponse(sup), nil
}

func (s *partyService) ListSuppliers(ctx context.Context, filter dto.SupplierFilter) (*dto.Paginated[dto.SupplierResponse], error) {
	suppliers, total, err := s.suppliers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return dto.NewPaginated(out, total, filter.Page, filter.Limit), nil
}

// ── Categories ───────────────────────────────────────────────────────────────

func (s *partyService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		ProductType: req.ProductType,
		IsActive:    true,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return categoryToResponse(c), nil
}

func (s *partyService) ListCategories(ctx context.Context, page, limit int) (*dto.Paginated[dto.CategoryResponse], error) {
	categories, total, err := s.categories.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *categoryToResponse(&categories[i]))
	}
	return dto.NewPaginated(out, total, page, limit), nil
}

// ── Companies and locations ──────────────────────────────────────────────────

func (s *partyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	c := &model.Company{
		Name:     req.Name,
		CNPJ:     req.CNPJ,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, err
	}
	return companyToResponse(c), nil
}

func (s *partyService) ListCompanies(ctx context.Context, page, limit int) (*dto.Paginated[dto.CompanyResponse], error) {
	companies, total, err := s.companies.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, *companyToResponse(&companies[i]))
	}
	return dto.NewPaginated(out, total, page, limit), nil
}

func (s *partyService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: company_id", ErrValidation)
	}
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("%w: empresa %s", ErrNotFound, req.CompanyID)
	}
	l := &model.InventoryLocation{
		CompanyID:   companyID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		IsActive:    true,
	}
	if err := s.companies.CreateLocation(ctx, l); err != nil {
		return nil, err
	}
	return locationToResponse(l), nil
}

func (s *partyService) ListLocations(ctx context.Context, companyID *uuid.UUID) ([]dto.LocationResponse, error) {
	locations, err := s.companies.ListLocations(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, *locationToResponse(&locations[i]))
	}
	return out, nil
}

// ── Response mapping ─────────────────────────────────────────────────────────

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		CPFCNPJ:      c.CPFCNPJ,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		CustomerType: c.CustomerType,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		CNPJ:          s.CNPJ,
		Category:      s.Category,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		PaymentTerms:  s.PaymentTerms,
		DeliveryTime:  s.DeliveryTime,
		Rating:        s.Rating,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}

func categoryToResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		ProductType: c.ProductType,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func companyToResponse(c *model.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func locationToResponse(l *model.InventoryLocation) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          l.ID.String(),
		CompanyID:   l.CompanyID.String(),
		Name:        l.Name,
		Description: l.Description,
		Address:     l.Address,
		IsActive:    l.IsActive,
	}
}
