package auth

import "strings"

// Policy decides who may edit and delete customer query records.
// Administrator email comes from configuration and the decision is made
// on the server, so hiding buttons in a client is no longer the only gate
type Policy struct {
	adminEmail string
}

// NewPolicy builds Policy with the configured administrator email
func NewPolicy(adminEmail string) *Policy {
	return &Policy{adminEmail: adminEmail}
}

// IsAdmin reports whether the identity is the configured administrator
func (p *Policy) IsAdmin(idn Identity) bool {
	return p.adminEmail != "" && strings.EqualFold(idn.Email, p.adminEmail)
}

// CanEdit allows the administrator to edit any record and every other
// user to edit only records they created
func (p *Policy) CanEdit(idn Identity, createdBy string) bool {
	if p.IsAdmin(idn) {
		return true
	}
	return idn.DisplayName != "" && idn.DisplayName == createdBy
}

// CanDelete allows deletion to the administrator only
func (p *Policy) CanDelete(idn Identity) bool {
	return p.IsAdmin(idn)
}
