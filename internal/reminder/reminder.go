// Package reminder builds the outbound dues-reminder message for a customer.
// Pure string formatting; actually opening the link is the caller's business.
package reminder

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder formats reminder messages and WhatsApp deep links.
type Builder struct {
	shopName    string
	countryCode string
}

// NewBuilder returns a Builder. countryCode is the dialing prefix prepended
// to the customer's local phone number, e.g. "88" for Bangladesh.
func NewBuilder(shopName, countryCode string) *Builder {
	return &Builder{shopName: shopName, countryCode: countryCode}
}

// Link bundles the reminder text and the deep link carrying it.
type Link struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// PaymentLink renders the dues-reminder template for a customer and wraps it
// in a wa.me link. The phone number is reduced to digits before the country
// code is prepended.
func (b *Builder) PaymentLink(customerName, phone string, due int64) Link {
	message := fmt.Sprintf("প্রিয় %s,\nআপনার বাকি রয়েছে ৳%d।\nদয়া করে দ্রুত পরিশোধ করুন।\n— %s", customerName, due, b.shopName)
	// QueryEscape uses "+" for spaces; wa.me expects percent encoding.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return Link{
		Message: message,
		URL:     fmt.Sprintf("https://wa.me/%s%s?text=%s", b.countryCode, digitsOnly(phone), encoded),
	}
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
