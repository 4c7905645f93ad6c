package billing

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/kiranakart/internal/models"
)

// InvoiceNumber is the number printed on the receipt for bill.
func InvoiceNumber(bill models.Bill) string {
	return "INV-" + strings.TrimPrefix(bill.ID, "bill_")
}

// WriteReceipt prints bill as a plain-text invoice. profile may be nil, in
// which case the shop header is omitted.
func WriteReceipt(w io.Writer, bill models.Bill, profile *models.UserProfile) error {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	if profile != nil {
		fmt.Fprintf(&b, "%s\n", strings.ToUpper(profile.Shop))
		if profile.Address != "" {
			fmt.Fprintf(&b, "%s\n", profile.Address)
		}
		if profile.Phone != "" {
			fmt.Fprintf(&b, "Phone: %s\n", profile.Phone)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Invoice: %s\n", InvoiceNumber(bill))
	fmt.Fprintf(&b, "Date: %s\n\n", bill.Timestamp.Format("02 Jan 2006, 15:04"))

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "S.No\tItem\tQty\tPrice\tTotal")
	for i, line := range bill.Lines {
		price := "-"
		if line.UnitPrice.Valid {
			price = formatINR(p, line.UnitPrice.Decimal)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, line.Name, line.Quantity, price, formatINR(p, line.LineTotal))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", formatINR(p, bill.Total))

	_, err := io.WriteString(w, b.String())
	return err
}

func formatINR(p *message.Printer, d decimal.Decimal) string {
	return p.Sprint(currency.Symbol(currency.INR.Amount(d.InexactFloat64())))
}
