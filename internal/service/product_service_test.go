package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/eder5on/Estoque/internal/dto"
	"github.com/eder5on/Estoque/internal/model"
	"github.com/eder5on/Estoque/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductSvc() (service.ProductService, *stubProductRepo) {
	prodRepo := newStubProductRepo()
	svc := service.NewProductService(prodRepo, &stubInventoryRepo{}, nil)
	return svc, prodRepo
}

func validProductReq(sku string) dto.CreateProductRequest {
	price := decimal.NewFromInt(120)
	return dto.CreateProductRequest{
		SKU:         sku,
		Name:        "Totem Eliptico 120cm",
		CategoryID:  uuid.NewString(),
		ProductType: model.ProductTypeTotemEliptico,
		Status:      model.ProductStatusNovo,
		SalePrice:   &price,
	}
}

func TestCreateProduct_RendersQRCode(t *testing.T) {
	svc, _ := buildProductSvc()

	resp, err := svc.CreateProduct(context.Background(), validProductReq("TE-120"))
	require.NoError(t, err)

	assert.Equal(t, "unidade", resp.Unit, "unit defaults when omitted")
	assert.True(t, resp.IsActive)

	qr, err := svc.GetQRCode(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	svc, _ := buildProductSvc()

	_, err := svc.CreateProduct(context.Background(), validProductReq("DUP-1"))
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), validProductReq("DUP-1"))
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestUpdateProduct_PatchesOnlyGivenFields(t *testing.T) {
	svc, _ := buildProductSvc()
	created, err := svc.CreateProduct(context.Background(), validProductReq("TE-121"))
	require.NoError(t, err)

	newName := "Totem Eliptico 150cm"
	resp, err := svc.UpdateProduct(context.Background(), uuid.MustParse(created.ID), dto.UpdateProductRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, resp.Name)
	assert.Equal(t, created.SKU, resp.SKU)
	require.NotNil(t, resp.SalePrice)
	assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(120)), "untouched fields survive the patch")
}

func TestDeleteProduct_SoftDeletes(t *testing.T) {
	svc, prodRepo := buildProductSvc()
	created, err := svc.CreateProduct(context.Background(), validProductReq("TE-122"))
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.DeleteProduct(context.Background(), id))

	stored, err := prodRepo.FindByID(context.Background(), id)
	require.NoError(t, err, "row must survive deletion")
	assert.False(t, stored.IsActive)
}

func TestBulkImport_ReportsPerRowFailures(t *testing.T) {
	svc, _ := buildProductSvc()
	_, err := svc.CreateProduct(context.Background(), validProductReq("EXIST-1"))
	require.NoError(t, err)

	result, err := svc.BulkImport(context.Background(), dto.BulkImportRequest{
		Products: []dto.CreateProductRequest{
			validProductReq("NEW-1"),
			validProductReq("NEW-2"),
			validProductReq("NEW-2"),   // duplicate within the batch
			validProductReq("EXIST-1"), // duplicate against the catalog
		},
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Errors)
	require.Len(t, result.ErrorsDetails, 2)
	assert.Contains(t, result.ErrorsDetails[0], "duplicado no arquivo")
}

func TestBulkImport_AllRowsClean(t *testing.T) {
	svc, _ := buildProductSvc()

	result, err := svc.BulkImport(context.Background(), dto.BulkImportRequest{
		Products: []dto.CreateProductRequest{
			validProductReq("A-1"),
			validProductReq("A-2"),
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Imported)
}

func TestPriceCheck_ByBarcode(t *testing.T) {
	svc, prodRepo := buildProductSvc()
	req := validProductReq("BC-1")
	barcode := "7891000100103"
	req.Barcode = &barcode
	_, err := svc.CreateProduct(context.Background(), req)
	require.NoError(t, err)

	resp, err := svc.PriceCheck(context.Background(), barcode)
	require.NoError(t, err)
	assert.Equal(t, "BC-1", resp.SKU)
	require.NotNil(t, resp.SalePrice)
	assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(120)))

	// Deactivated products disappear from the terminal lookup.
	stored, err := prodRepo.FindBySKU(context.Background(), "BC-1")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProduct(context.Background(), stored.ID))

	_, err = svc.PriceCheck(context.Background(), barcode)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPriceCheck_UnknownBarcode(t *testing.T) {
	svc, _ := buildProductSvc()

	_, err := svc.PriceCheck(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
