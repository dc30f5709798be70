package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/FEBRIAN80/managmnt-food/entity"
)

// BusinessInfo is the identity block printed on top of every receipt.
type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
	Footer  string
}

type ReceiptLine struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}

// ReceiptDocument is the printable content of a committed transaction. It is
// built only from persisted amounts, never from the live cart, so the same
// transaction always yields the same receipt.
type ReceiptDocument struct {
	Business          BusinessInfo  `json:"business"`
	TransactionNumber string        `json:"transactionNumber"`
	CreatedAt         time.Time     `json:"createdAt"`
	CashierName       string        `json:"cashierName"`
	Lines             []ReceiptLine `json:"lines"`
	Subtotal          int64         `json:"subtotal"`
	DiscountRate      int           `json:"discountRate"`
	DiscountAmount    int64         `json:"discountAmount"`
	TaxRate           int           `json:"taxRate"`
	TaxAmount         int64         `json:"taxAmount"`
	Total             int64         `json:"total"`
}

type ReceiptService struct {
	Business BusinessInfo
}

func NewReceiptService(b BusinessInfo) *ReceiptService { return &ReceiptService{Business: b} }

// Compose maps a persisted transaction to its receipt content. Item order is
// the committed order.
func (s *ReceiptService) Compose(txn *entity.Transaction, cashierName string) *ReceiptDocument {
	lines := make([]ReceiptLine, 0, len(txn.Items))
	for _, it := range txn.Items {
		lines = append(lines, ReceiptLine{
			Name:      it.MenuName,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return &ReceiptDocument{
		Business:          s.Business,
		TransactionNumber: txn.TransactionNumber,
		CreatedAt:         txn.CreatedAt,
		CashierName:       cashierName,
		Lines:             lines,
		Subtotal:          txn.Subtotal,
		DiscountRate:      txn.DiscountRate,
		DiscountAmount:    txn.DiscountAmount,
		TaxRate:           txn.TaxRate,
		TaxAmount:         txn.TaxAmount,
		Total:             txn.TotalAmount,
	}
}

// FileName names the exported document after the transaction number so a
// re-export always lands on the same file.
func (d *ReceiptDocument) FileName() string {
	return fmt.Sprintf("receipt-%s.pdf", d.TransactionNumber)
}

const receiptRule = "========================================"

// Render lays the receipt out as printable text: header block, transaction
// details, item table, totals (discount line only when an actual discount was
// applied), closing message.
func (d *ReceiptDocument) Render() string {
	var b strings.Builder

	b.WriteString(d.Business.Name + "\n")
	b.WriteString(d.Business.Address + "\n")
	b.WriteString(d.Business.Phone + "\n")
	b.WriteString(receiptRule + "\n")

	fmt.Fprintf(&b, "No. Transaksi: %s\n", d.TransactionNumber)
	fmt.Fprintf(&b, "Tanggal: %s\n", d.CreatedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Kasir: %s\n", d.CashierName)
	b.WriteString(receiptRule + "\n")

	fmt.Fprintf(&b, "%-20s %4s %10s %10s\n", "ITEM", "QTY", "HARGA", "SUBTOTAL")
	for _, l := range d.Lines {
		fmt.Fprintf(&b, "%-20s %4d %10s %10s\n",
			l.Name, l.Qty, FormatRupiah(l.UnitPrice), FormatRupiah(l.Subtotal))
	}
	b.WriteString(receiptRule + "\n")

	fmt.Fprintf(&b, "Subtotal: %s\n", FormatRupiah(d.Subtotal))
	if d.DiscountAmount > 0 {
		fmt.Fprintf(&b, "Diskon (%d%%): -%s\n", d.DiscountRate, FormatRupiah(d.DiscountAmount))
	}
	fmt.Fprintf(&b, "Pajak (%d%%): %s\n", d.TaxRate, FormatRupiah(d.TaxAmount))
	fmt.Fprintf(&b, "TOTAL: %s\n", FormatRupiah(d.Total))

	b.WriteString("\n" + d.Business.Footer + "\n")
	return b.String()
}

// FormatRupiah renders whole rupiah with id-ID thousand separators: Rp 25.000
func FormatRupiah(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
