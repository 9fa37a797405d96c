package service_test

import (
	"context"
	"time"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubInventoryRepo is an in-memory InventoryRepository. DB() returns nil so
// services run their transaction bodies directly against the stub.
type stubInventoryRepo struct {
	records []*model.InventoryRecord
}

func (r *stubInventoryRepo) add(rec *model.InventoryRecord) *model.InventoryRecord {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.records = append(r.records, rec)
	return rec
}

func (r *stubInventoryRepo) byID(id uuid.UUID) *model.InventoryRecord {
	for _, rec := range r.records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// Finders return copies so that post-fetch struct mutation in services
// (done for response building) does not alias the stored record, mirroring
// detached GORM results.
func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryRecord, error) {
	if rec := r.byID(id); rec != nil {
		cp := *rec
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) List(_ context.Context, filter dto.InventoryFilter) ([]model.InventoryRecord, int64, error) {
	out := make([]model.InventoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (r *stubInventoryRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.InventoryRecord, error) {
	if rec := r.byID(id); rec != nil {
		cp := *rec
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) FindByProductAndLocationTx(_ *gorm.DB, productID, locationID uuid.UUID) (*model.InventoryRecord, error) {
	for _, rec := range r.records {
		if rec.ProductID == productID && rec.LocationID == locationID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) FirstByProductTx(_ *gorm.DB, productID uuid.UUID) (*model.InventoryRecord, error) {
	for _, rec := range r.records {
		if rec.ProductID == productID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) CreateTx(_ *gorm.DB, rec *model.InventoryRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	r.records = append(r.records, &cp)
	return nil
}

func (r *stubInventoryRepo) AdjustTx(_ *gorm.DB, id uuid.UUID, qtyDelta, reservedDelta int) error {
	rec := r.byID(id)
	if rec == nil {
		return gorm.ErrRecordNotFound
	}
	rec.Quantity += qtyDelta
	rec.ReservedQuantity += reservedDelta
	now := time.Now().UTC()
	rec.LastMovementAt = &now
	return nil
}

func (r *stubInventoryRepo) SetTx(_ *gorm.DB, id uuid.UUID, quantity, reserved int) error {
	rec := r.byID(id)
	if rec == nil {
		return gorm.ErrRecordNotFound
	}
	rec.Quantity = quantity
	rec.ReservedQuantity = reserved
	return nil
}

func (r *stubInventoryRepo) SumQuantities(_ context.Context) (int64, int64, error) {
	var total, reserved int64
	for _, rec := range r.records {
		total += int64(rec.Quantity)
		reserved += int64(rec.ReservedQuantity)
	}
	return total, reserved, nil
}

func (r *stubInventoryRepo) TotalValue(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubInventoryRepo) LowStock(_ context.Context) ([]model.InventoryRecord, error) {
	return nil, nil
}

func (r *stubInventoryRepo) CountLowStock(_ context.Context) (int64, error) { return 0, nil }

func (r *stubInventoryRepo) DB() *gorm.DB { return nil }

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

// stubMovementRepo captures appended movements for assertion.
type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	return r.movements, int64(len(r.movements)), nil
}

var _ repository.MovementRepository = (*stubMovementRepo)(nil)

// stubProductRepo is an in-memory ProductRepository.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) seed(p *model.Product) *model.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return p
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	r.seed(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode && p.IsActive {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsActive = false
	return nil
}

func (r *stubProductRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.products {
		if p.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubSaleRepo is an in-memory SaleRepository.
type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSaleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) TotalsSince(_ context.Context, since time.Time) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, s := range r.sales {
		if !s.SaleDate.Before(since) {
			total = total.Add(s.TotalAmount)
			count++
		}
	}
	return total, count, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubRentalRepo is an in-memory RentalRepository tracking items by rental.
type stubRentalRepo struct {
	rentals map[uuid.UUID]*model.Rental
}

func newStubRentalRepo() *stubRentalRepo {
	return &stubRentalRepo{rentals: make(map[uuid.UUID]*model.Rental)}
}

func (r *stubRentalRepo) CreateTx(_ *gorm.DB, rental *model.Rental) error {
	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}
	for i := range rental.Items {
		if rental.Items[i].ID == uuid.Nil {
			rental.Items[i].ID = uuid.New()
		}
		rental.Items[i].RentalID = rental.ID
	}
	r.rentals[rental.ID] = rental
	return nil
}

func (r *stubRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Rental, error) {
	rental, ok := r.rentals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rental, nil
}

func (r *stubRentalRepo) List(_ context.Context, filter dto.RentalFilter) ([]model.Rental, int64, error) {
	out := make([]model.Rental, 0, len(r.rentals))
	for _, rental := range r.rentals {
		out = append(out, *rental)
	}
	return out, int64(len(out)), nil
}

func (r *stubRentalRepo) FindItemTx(_ *gorm.DB, itemID, rentalID uuid.UUID) (*model.RentalItem, error) {
	rental, ok := r.rentals[rentalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for i := range rental.Items {
		if rental.Items[i].ID == itemID {
			item := rental.Items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRentalRepo) ItemsTx(_ *gorm.DB, rentalID uuid.UUID) ([]model.RentalItem, error) {
	rental, ok := r.rentals[rentalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rental.Items, nil
}

func (r *stubRentalRepo) AddReturnedTx(_ *gorm.DB, itemID uuid.UUID, quantity int) error {
	for _, rental := range r.rentals {
		for i := range rental.Items {
			if rental.Items[i].ID == itemID {
				rental.Items[i].ReturnedQuantity += quantity
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRentalRepo) CloseTx(_ *gorm.DB, rentalID uuid.UUID, returnDate time.Time) error {
	rental, ok := r.rentals[rentalID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rental.Status = model.RentalReturned
	rental.ReturnDate = &returnDate
	return nil
}

func (r *stubRentalRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, rental := range r.rentals {
		if rental.Status == model.RentalActive {
			n++
		}
	}
	return n, nil
}

func (r *stubRentalRepo) OverdueCandidates(_ context.Context, asOf time.Time) ([]model.Rental, error) {
	var out []model.Rental
	for _, rental := range r.rentals {
		if rental.Status == model.RentalActive && rental.ExpectedReturnDate != nil && rental.ExpectedReturnDate.Before(asOf) {
			out = append(out, *rental)
		}
	}
	return out, nil
}

func (r *stubRentalRepo) MarkOverdue(_ context.Context, asOf time.Time) (int64, error) {
	var n int64
	for _, rental := range r.rentals {
		if rental.Status == model.RentalActive && rental.ExpectedReturnDate != nil && rental.ExpectedReturnDate.Before(asOf) {
			rental.Status = model.RentalOverdue
			n++
		}
	}
	return n, nil
}

func (r *stubRentalRepo) DB() *gorm.DB { return nil }

var _ repository.RentalRepository = (*stubRentalRepo)(nil)

// stubCustomerRepo is an in-memory CustomerRepository.
type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) seed(c *model.Customer) *model.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return c
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.seed(c)
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// stubUserRepo is an in-memory UserRepository keyed by email and id.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.IsActive || includeInactive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsActive = false
	return nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)
