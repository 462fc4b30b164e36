// ABOUTME: Google Contacts importer building a calling list profile
// ABOUTME: Fetches connections from the People API and stages them as To Call contacts
package sync

import (
	"database/sql"
	"fmt"

	"google.golang.org/api/people/v1"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/vcf"
)

// GoogleContact is a flattened People API person, reduced to the fields
// a calling list cares about.
type GoogleContact struct {
	ResourceName string
	Name         string
	Nickname     string
	Phone        string
	Company      string
	Notes        string
}

// ImportGoogleContacts fetches the account's connections and creates a
// fresh profile named profileName holding them, all staged To Call.
// The profile name must not collide with an existing one.
func ImportGoogleContacts(database *sql.DB, client *people.Service, profileName string) (*models.Profile, error) {
	existing, err := db.FindProfileByName(database, profileName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", db.ErrDuplicateName, profileName)
	}

	fmt.Println("Fetching Google Contacts...")

	var contacts []models.Contact
	totalFetched := 0
	pageToken := ""

	for {
		call := client.People.Connections.List("people/me").
			PageSize(1000).
			PersonFields("names,nicknames,phoneNumbers,organizations,biographies")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contacts: %w", err)
		}
		if response == nil || response.Connections == nil {
			break
		}

		totalFetched += len(response.Connections)

		for _, person := range response.Connections {
			gc := convertPerson(person)
			if gc.Name == "" && gc.Phone == "" {
				continue
			}
			contacts = append(contacts, stageContact(gc))
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(contacts) == 0 {
		return nil, fmt.Errorf("%w: no callable contacts in the Google account", db.ErrValidation)
	}

	profile, err := db.CreateProfile(database, profileName)
	if err != nil {
		return nil, err
	}
	if err := db.InsertContacts(database, profile.ID, contacts); err != nil {
		return nil, fmt.Errorf("failed to store contacts: %w", err)
	}

	fmt.Printf("✓ Fetched %d contacts from Google\n", totalFetched)
	fmt.Printf("✓ Created profile %q with %d contacts\n", profileName, len(contacts))

	return profile, nil
}

// stageContact turns a Google contact into a To Call entry, applying the
// same placeholder defaults the vCard importer uses.
func stageContact(gc *GoogleContact) models.Contact {
	contact := models.Contact{
		ShopName:   gc.Name,
		Nickname:   gc.Nickname,
		TypeOfShop: gc.Company,
		Phone:      gc.Phone,
		Status:     models.StatusToCall,
		Notes:      gc.Notes,
	}

	if contact.ShopName == "" {
		contact.ShopName = vcf.UnnamedContact
	}
	if contact.Nickname == "" {
		contact.Nickname = vcf.NoNickname
	}
	if contact.TypeOfShop == "" {
		contact.TypeOfShop = vcf.UnknownShop
	}
	if contact.Phone == "" {
		contact.Phone = vcf.NoPhone
	}

	return contact
}

// convertPerson converts a People API Person to GoogleContact.
func convertPerson(person *people.Person) *GoogleContact {
	gc := &GoogleContact{
		ResourceName: person.ResourceName,
	}

	if len(person.Names) > 0 && person.Names[0].DisplayName != "" {
		gc.Name = person.Names[0].DisplayName
	}

	if len(person.Nicknames) > 0 && person.Nicknames[0].Value != "" {
		gc.Nickname = person.Nicknames[0].Value
	}

	// Prefer the primary phone, otherwise the first available.
	for _, phone := range person.PhoneNumbers {
		if phone.Value != "" {
			if gc.Phone == "" {
				gc.Phone = phone.Value
			}
			if phone.Metadata != nil && phone.Metadata.Primary {
				gc.Phone = phone.Value
				break
			}
		}
	}

	if len(person.Organizations) > 0 && person.Organizations[0].Name != "" {
		gc.Company = person.Organizations[0].Name
	}

	if len(person.Biographies) > 0 && person.Biographies[0].Value != "" {
		gc.Notes = person.Biographies[0].Value
	}

	return gc
}
