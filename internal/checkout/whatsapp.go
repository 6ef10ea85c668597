package checkout

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// WhatsAppLink builds a wa.me deep link pre-filled with the order summary.
// Returns empty when no number is configured.
func WhatsAppLink(number string, order OrderPayload) string {
	digits := digitsOnly(number)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Pedido %s\n", order.OrderID)
	fmt.Fprintf(&b, "Cliente: %s (%s)\n", order.Customer.Name, order.Customer.Phone)
	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("- %dx %s", line.Quantity, line.Name))
		if opts := formatOptions(line.SelectedOptions); opts != "" {
			b.WriteString(" (" + opts + ")")
		}
		fmt.Fprintf(&b, " = %s\n", line.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: %s", order.Total.StringFixed(2))

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(b.String())
}

func formatOptions(opts map[string]string) string {
	if len(opts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+opts[k])
	}
	return strings.Join(parts, ", ")
}

func digitsOnly(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
