package sync

import (
	"testing"

	"google.golang.org/api/people/v1"

	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/vcf"
)

func TestConvertPerson(t *testing.T) {
	person := &people.Person{
		ResourceName: "people/c123",
		Names:        []*people.Name{{DisplayName: "Corner Bakery"}},
		Nicknames:    []*people.Nickname{{Value: "Mia"}},
		PhoneNumbers: []*people.PhoneNumber{
			{Value: "+1-555-0101"},
			{Value: "+1-555-0199", Metadata: &people.FieldMetadata{Primary: true}},
		},
		Organizations: []*people.Organization{{Name: "Bakery"}},
		Biographies:   []*people.Biography{{Value: "open mornings"}},
	}

	gc := convertPerson(person)

	if gc.Name != "Corner Bakery" {
		t.Errorf("Name = %q", gc.Name)
	}
	if gc.Nickname != "Mia" {
		t.Errorf("Nickname = %q", gc.Nickname)
	}
	if gc.Phone != "+1-555-0199" {
		t.Errorf("Phone = %q, want the primary number", gc.Phone)
	}
	if gc.Company != "Bakery" {
		t.Errorf("Company = %q", gc.Company)
	}
	if gc.Notes != "open mornings" {
		t.Errorf("Notes = %q", gc.Notes)
	}
}

func TestConvertPersonFirstPhoneWhenNoPrimary(t *testing.T) {
	person := &people.Person{
		PhoneNumbers: []*people.PhoneNumber{
			{Value: "+1-555-0101"},
			{Value: "+1-555-0102"},
		},
	}

	if gc := convertPerson(person); gc.Phone != "+1-555-0101" {
		t.Errorf("Phone = %q, want the first number", gc.Phone)
	}
}

func TestStageContactDefaults(t *testing.T) {
	contact := stageContact(&GoogleContact{Phone: "+1-555-0101"})

	if contact.Status != models.StatusToCall {
		t.Errorf("Status = %q, want To Call", contact.Status)
	}
	if contact.ShopName != vcf.UnnamedContact {
		t.Errorf("ShopName = %q", contact.ShopName)
	}
	if contact.Nickname != vcf.NoNickname {
		t.Errorf("Nickname = %q", contact.Nickname)
	}
	if contact.TypeOfShop != vcf.UnknownShop {
		t.Errorf("TypeOfShop = %q", contact.TypeOfShop)
	}
}

func TestStageContactKeepsFields(t *testing.T) {
	contact := stageContact(&GoogleContact{
		Name:     "Hill Hardware",
		Nickname: "Sam",
		Phone:    "+1-555-0102",
		Company:  "Hardware",
		Notes:    "closed Mondays",
	})

	if contact.ShopName != "Hill Hardware" || contact.TypeOfShop != "Hardware" {
		t.Errorf("staged contact = %+v", contact)
	}
	if contact.Notes != "closed Mondays" {
		t.Errorf("Notes = %q", contact.Notes)
	}
}
