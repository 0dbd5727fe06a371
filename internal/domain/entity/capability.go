// Package entity contains the core business objects of the shop.
package entity

import "slices"

// Capability is a permission a caller must hold to use a protected operation.
type Capability string

const (
	// CapabilityCustomer is held by every authenticated principal.
	CapabilityCustomer Capability = "customer"
	// CapabilityAdmin is held by administrators only.
	CapabilityAdmin Capability = "admin"
)

// String returns the string representation of the Capability.
func (c Capability) String() string {
	return string(c)
}

// IsValid checks if the Capability is a known value.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityCustomer, CapabilityAdmin:
		return true
	default:
		return false
	}
}

// Capabilities is a slice of Capability for convenience.
type Capabilities []Capability

// Contains checks if the set contains a specific capability.
func (cs Capabilities) Contains(c Capability) bool {
	return slices.Contains(cs, c)
}

// Principal is the verified identity behind a bearer credential.
type Principal struct {
	Email   string
	IsAdmin bool
}

// Capabilities lists what the principal is allowed to do.
func (p *Principal) Capabilities() Capabilities {
	if p.IsAdmin {
		return Capabilities{CapabilityCustomer, CapabilityAdmin}
	}

	return Capabilities{CapabilityCustomer}
}

// Can reports whether the principal holds the capability.
func (p *Principal) Can(c Capability) bool {
	return p.Capabilities().Contains(c)
}
