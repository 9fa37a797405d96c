package infra_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eder5on/Estoque/internal/infra"
	"github.com/eder5on/Estoque/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSale() *model.Sale {
	price := decimal.NewFromInt(100)
	return &model.Sale{
		ID:          uuid.New(),
		SaleDate:    time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(300),
		Customer:    &model.Customer{Name: "Loja Centro"},
		Items: []model.SaleItem{
			{Quantity: 3, UnitPrice: price, TotalPrice: decimal.NewFromInt(300), Product: &model.Product{Name: "Totem Display"}},
		},
	}
}

func TestGenerateReceiptPDF_WritesFile(t *testing.T) {
	dir := t.TempDir()
	sale := sampleSale()

	path, err := infra.GenerateReceiptPDF(sale, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, fmt.Sprintf("recibo_%s.pdf", sale.ID)), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateReceiptPDF_CreatesStorageDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")

	_, err := infra.GenerateReceiptPDF(sampleSale(), dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestGenerateReceiptPDF_WithDiscount(t *testing.T) {
	sale := sampleSale()
	sale.DiscountAmount = decimal.NewFromInt(30)
	sale.TotalAmount = decimal.NewFromInt(270)

	path, err := infra.GenerateReceiptPDF(sale, t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerateQRCodeDataURL(t *testing.T) {
	qr, err := infra.GenerateQRCodeDataURL("TOT-001")
	require.NoError(t, err)
	assert.Contains(t, qr, "data:image/png;base64,")
}
