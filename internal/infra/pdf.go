package infra

// pdf.go: printable bill generation using go-pdf/fpdf.
// Layout (A5 portrait):
//   - Business name and "BILL" header
//   - Daily bill number and date in the business timezone
//   - Customer (owner) and vehicle
//   - Item table: material, mattam/qty, rate, total
//   - Pass charge line (if included) and bold total
//
// The output file is saved to Dir/bill_{bill_id}_{daily_bill_no}.pdf.

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"agencyledger/internal/model"

	"github.com/go-pdf/fpdf"
)

// BillPDFRenderer writes bill documents into Dir.
type BillPDFRenderer struct {
	Dir          string
	BusinessName string
	Location     *time.Location
}

func NewBillPDFRenderer(dir, businessName string, loc *time.Location) *BillPDFRenderer {
	if loc == nil {
		loc = time.UTC
	}
	return &BillPDFRenderer{Dir: dir, BusinessName: businessName, Location: loc}
}

// FileName is the document name for a bill: unique per bill, readable by day number.
func FileName(b *model.Bill) string {
	return fmt.Sprintf("bill_%d_%d.pdf", b.ID, b.DailyBillNo)
}

// Render generates the PDF for a committed bill. Owner, Items.Material and
// Pass must be loaded. Returns the path to the generated file.
func (r *BillPDFRenderer) Render(b *model.Bill) (string, error) {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(r.Dir, FileName(b))

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 7, tr(r.BusinessName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 8, "BILL", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Bill info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW/2, 5, fmt.Sprintf("Bill No: %d", b.DailyBillNo), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, "Date: "+b.BillTimestamp.In(r.Location).Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	ownerName := ""
	if b.Owner != nil {
		ownerName = b.Owner.Name
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 5, "Customer Details:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Name: "+tr(ownerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Vehicle: "+b.VehicleNumber, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Items header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.38 // material
	col2 := contentW * 0.26 // mattam / qty
	col3 := contentW * 0.18 // rate
	col4 := contentW * 0.18 // total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Material", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Mattam/Qty", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Rate", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Total", "B", 1, "R", false, 0, "")

	// ── Item rows ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for i := range b.Items {
		item := &b.Items[i]
		name, unit := "", ""
		if item.Material != nil {
			name, unit = item.Material.Name, item.Material.Unit
		}
		if len(name) > 20 {
			name = name[:20]
		}
		pdf.CellFormat(col1, 6, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tr(MattamDisplay(item, name, unit)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, "Rs. "+item.RateAtSale.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "Rs. "+item.TotalCost.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	if b.IncludePass && b.Pass != nil {
		pdf.CellFormat(col1+col2+col3, 6, "Pass Charge", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, "Rs. "+b.Pass.PassAmount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "Total Amount:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 8, "Rs. "+b.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// MattamDisplay is the text printed in the Mattam/Qty column.
// Countable materials (unit NO, bricks, stone, cement) print the rounded
// quantity. Otherwise the grill and checked flags take precedence, then the
// free-text mattam: empty prints "Mattam", a number n prints "Mattam + n"
// (zero prints the quantity), anything else prints as typed.
func MattamDisplay(item *model.Transaction, materialName, unit string) string {
	name := strings.ToUpper(materialName)
	qty := strconv.FormatInt(item.Quantity.Round(0).IntPart(), 10)

	if strings.EqualFold(unit, "NO") ||
		strings.Contains(name, "BRICKS") ||
		strings.Contains(name, "STONE") ||
		strings.Contains(name, "CEMENT") {
		return qty
	}

	mattam := ""
	if item.Mattam != nil {
		mattam = strings.TrimSpace(*item.Mattam)
	}

	if item.GrillMattam {
		if mattam != "" {
			return "Grill Mattam + " + mattam
		}
		return "Grill Mattam"
	}
	if item.MattamChecked {
		if mattam != "" {
			return "Mattam + " + mattam
		}
		return "Mattam"
	}
	if mattam == "" {
		return "Mattam"
	}
	if n, err := strconv.ParseFloat(mattam, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		if n == 0 {
			return qty
		}
		return "Mattam + " + strconv.FormatFloat(math.Round(n), 'f', 0, 64)
	}
	return mattam
}
