package model

// Contact is an identity tuple disclosed to a counterparty once a match is
// approved. Depending on who filed the report this is either a real user or
// the administrative office.
type Contact struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
}
