package matching

import "github.com/siddarthan007/laf/internal/model"

// ContactResolver decides which identity is disclosed for an item once a
// match is approved.
type ContactResolver struct {
	office model.Contact
}

// NewContactResolver creates a resolver with the configured office identity.
func NewContactResolver(office model.Contact) *ContactResolver {
	return &ContactResolver{office: office}
}

// Resolve returns the contact disclosed for an item. An admin report filed
// by an admin is an office report and discloses the office identity; an
// admin report filed on behalf of a regular user, like any regular report,
// discloses the reporter's own identity.
func (r *ContactResolver) Resolve(item *model.Item, reporter *model.User) model.Contact {
	if item.IsAdminReport && reporter.IsAdmin() {
		return r.office
	}
	return model.Contact{
		Name:          reporter.Name,
		Email:         reporter.Email,
		ContactNumber: reporter.ContactNumber,
	}
}
