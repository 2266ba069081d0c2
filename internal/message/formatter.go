// Package message renders the final order payload handed to the external
// messaging channel. The text layout is the storefront's order format and is
// treated as a stable contract; the channel itself never acknowledges.
package message

import (
	"fmt"
	"strings"

	domcart "example.com/iskina-storefront/internal/domain/cart"
)

// Order is the flattened input to Format: a snapshot of the cart plus the
// finalized checkout details. PaymentLabel is the resolved method's display
// name, or the raw identifier when resolution failed.
type Order struct {
	SiteName      string
	CustomerName  string
	ContactNumber string
	RoomNumber    string
	ServiceType   string
	ServiceTime   string
	Lines         []domcart.Line
	Total         int64
	PaymentLabel  string
	Notes         string
}

// Format renders the order as the human-readable message sent to the store.
// All amounts are exact integer peso values.
func Format(o Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 %s ORDER\n\n", o.SiteName)
	fmt.Fprintf(&b, "👤 Customer: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "📞 Contact: %s\n", o.ContactNumber)
	if o.RoomNumber != "" {
		fmt.Fprintf(&b, "🏨 Room: %s\n", o.RoomNumber)
	}
	fmt.Fprintf(&b, "📍 Service: %s\n", o.ServiceType)
	fmt.Fprintf(&b, "⏰ Service Time: %s\n", o.ServiceTime)

	b.WriteString("\n📋 ORDER DETAILS:\n")
	for _, line := range o.Lines {
		b.WriteString(formatLine(line))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n💰 TOTAL: ₱%d\n", o.Total)
	fmt.Fprintf(&b, "\n💳 Payment: %s\n", o.PaymentLabel)
	b.WriteString("📸 Payment Screenshot: Please attach your payment receipt screenshot\n")

	if o.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s\n", o.Notes)
	}

	fmt.Fprintf(&b, "\nPlease confirm this order to proceed. Thank you for choosing %s!", o.SiteName)
	return b.String()
}

func formatLine(line domcart.Line) string {
	var b strings.Builder

	b.WriteString("• ")
	b.WriteString(line.Name)
	if line.Variation != nil {
		fmt.Fprintf(&b, " (%s)", line.Variation.Name)
	}
	if len(line.AddOns) > 0 {
		names := make([]string, 0, len(line.AddOns))
		for _, a := range line.AddOns {
			if a.Quantity > 1 {
				names = append(names, fmt.Sprintf("%s x%d", a.Name, a.Quantity))
			} else {
				names = append(names, a.Name)
			}
		}
		b.WriteString(" + ")
		b.WriteString(strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, " x%d - ₱%d", line.Quantity, line.Total())
	return b.String()
}
