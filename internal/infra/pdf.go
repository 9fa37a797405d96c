package infra

// Receipt PDFs are rendered with go-pdf/fpdf on A7-size pages, close to
// thermal receipt paper. Layout: company header, sale id and date, item
// table, discount line when present, bold total.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eder5on/Estoque/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReceiptPDF renders a receipt for a completed sale into storagePath
// (created if needed) and returns the absolute path of the file.
func GenerateReceiptPDF(sale *model.Sale, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", sale.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Estoque", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de Venda", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	if sale.Customer != nil {
		pdf.CellFormat(contentW, 5, sale.Customer.Name, "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, sale.SaleDate.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range sale.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		pdf.CellFormat(col1, 5, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "R$"+item.TotalPrice.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 7)
	if !sale.DiscountAmount.IsZero() {
		pdf.CellFormat(col1+col2, 5, "Desconto:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "-R$"+sale.DiscountAmount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "R$"+sale.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Obrigado pela preferência!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
