package models

// Account is the single resource managed by the service.
//
// ID is assigned by the database on creation and never changes afterwards;
// any ID supplied by a client in a request body is ignored. Name, Email
// and Address must be non-empty. String fields are bounded by the column
// sizes of the "accounts" table.
type Account struct {
	// ID is the server-assigned unique identifier of the account.
	ID int64 `json:"id"`

	// Name is the account holder's display name.
	Name string `json:"name" validate:"required,max=64"`

	// Email is the contact address. Only presence is checked, not format.
	Email string `json:"email" validate:"required,max=64"`

	// Address is the postal address of the account holder.
	Address string `json:"address" validate:"required,max=256"`

	// PhoneNumber is the contact phone number in free form. The key must be
	// present in request bodies but the value may be empty.
	PhoneNumber string `json:"phone_number" validate:"max=32"`

	// DateJoined is the calendar date the account was opened. When omitted
	// on creation the service fills in the current date.
	DateJoined Date `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}
