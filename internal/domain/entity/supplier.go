package entity

import "time"

// Supplier proveedor de productos. LeadTime (días) es solo metadato.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	LeadTime    int
	CreatedAt   time.Time
}

// SupplierPatch campos opcionales para Update.
type SupplierPatch struct {
	Name        *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	LeadTime    *int
}

// Apply aplica el patch sobre una copia del proveedor.
func (p SupplierPatch) Apply(s Supplier) Supplier {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ContactName != nil {
		s.ContactName = *p.ContactName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.LeadTime != nil {
		s.LeadTime = *p.LeadTime
	}
	return s
}
