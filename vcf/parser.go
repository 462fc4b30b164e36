// ABOUTME: vCard address-book export parser
// ABOUTME: Turns raw VCF text into Contact records ready to attach to a profile
package vcf

import (
	"strings"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/models"
)

// Placeholder values applied when a card omits a field.
const (
	UnnamedContact = "Unnamed Contact"
	NoPhone        = "No Phone"
	NoNickname     = "N/A"
	UnknownShop    = "Unknown"
)

// Parse extracts contacts from a vCard export. Each card ends at an
// END:VCARD line; a card with neither a name nor a phone is dropped.
// The first TEL line per card wins, unrecognized lines are ignored, and
// any line-ending convention is accepted. Parse never touches the
// database - the caller attaches the result to a profile.
func Parse(content string, profileID uuid.UUID) []models.Contact {
	var contacts []models.Contact
	var name, phone, nickname, typeOfShop string

	reset := func() {
		name, phone, nickname, typeOfShop = "", "", "", ""
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")

		switch {
		case strings.HasPrefix(line, "FN:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "FN:"))

		case (strings.HasPrefix(line, "TEL;") || strings.HasPrefix(line, "TEL:")) && phone == "":
			if _, value, found := strings.Cut(line, ":"); found {
				phone = strings.TrimSpace(value)
			}

		case strings.HasPrefix(line, "NICKNAME:"):
			nickname = strings.TrimSpace(strings.TrimPrefix(line, "NICKNAME:"))

		case strings.HasPrefix(line, "X-SHOP-TYPE:"):
			typeOfShop = strings.TrimSpace(strings.TrimPrefix(line, "X-SHOP-TYPE:"))

		case strings.HasPrefix(line, "END:VCARD"):
			if name == "" && phone == "" {
				reset()
				continue
			}
			contacts = append(contacts, models.Contact{
				ID:         uuid.New(),
				ProfileID:  profileID,
				ShopName:   defaultIfEmpty(name, UnnamedContact),
				Nickname:   defaultIfEmpty(nickname, NoNickname),
				TypeOfShop: shopType(typeOfShop, nickname),
				Phone:      defaultIfEmpty(phone, NoPhone),
				Status:     models.StatusToCall,
				Notes:      "",
				Position:   len(contacts),
			})
			reset()
		}
	}

	return contacts
}

// shopType falls back to the nickname when the shop-type field is absent.
func shopType(typeOfShop, nickname string) string {
	if typeOfShop != "" {
		return typeOfShop
	}
	if nickname != "" {
		return nickname
	}
	return UnknownShop
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
