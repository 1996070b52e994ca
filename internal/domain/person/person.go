package person

// Person owns its addresses. Addresses are loaded eagerly and replaced as a whole
// on update; the owner link lives only on Address.PersonID.
type Person struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id,omitempty"`
	FirstName string    `gorm:"size:250;not null;column:first_name" json:"firstName,omitempty"`
	LastName  string    `gorm:"size:250;not null;column:last_name" json:"lastName,omitempty"`
	Addresses []Address `gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
}

func (Person) TableName() string { return "person" }

type Address struct {
	ID         uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id,omitempty"`
	Street     string `gorm:"size:250;not null;column:street" json:"street,omitempty"`
	City       string `gorm:"size:100;not null;column:city" json:"city,omitempty"`
	State      string `gorm:"size:50;not null;column:state" json:"state,omitempty"`
	PostalCode string `gorm:"size:20;not null;column:postal_code" json:"postalCode,omitempty"`

	// PersonID scopes every lookup; it is never serialized.
	PersonID uint `gorm:"not null;index;column:person_id" json:"-"`
}

func (Address) TableName() string { return "address" }

// ApplyFields copies the mutable address fields from src, leaving id and owner untouched.
func (a *Address) ApplyFields(src Address) {
	a.Street = src.Street
	a.City = src.City
	a.State = src.State
	a.PostalCode = src.PostalCode
}

// DetachedAddresses returns copies of addrs with ids cleared and owner set to personID,
// ready to be inserted as a replacement set.
func DetachedAddresses(addrs []Address, personID uint) []Address {
	out := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		a.ID = 0
		a.PersonID = personID
		out = append(out, a)
	}
	return out
}
