package formclient

import (
	"fmt"
	"net/url"

	"github.com/bijalsangnaach/academy-backend/types"
)

// BeginnerFee returns the displayed beginner-class fee and pricing note for
// a country selection. Only beginner pricing is published; the selection is
// display-only and never branches server-side logic.
func BeginnerFee(country string) (fee string, note string) {
	if country == types.CountryIndia {
		return "₹1500 / month", "India residents pricing."
	}
	return "$160 / month", "International pricing (USA/UK/CANADA)."
}

// WhatsAppLink builds a wa.me deep link with a prefilled message. The number
// is expected as country code + number, without plus sign or spaces.
func WhatsAppLink(number, text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}
