package entities

import "strings"

const DefaultSupplierCategory = "General"

type SalesRepresentative struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Complete reports whether both name and contact are present.
func (r SalesRepresentative) Complete() bool {
	return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Contact) != ""
}

// Supplier is a vendor known to the chain.
//
// Storage model (DynamoDB):
//   - PK: name_key (NormalizeKey(Name))
//   - representatives and branches stored as lists
type Supplier struct {
	Name            string                `json:"name"`
	Category        string                `json:"category"`
	Contact         string                `json:"contact"`
	Representatives []SalesRepresentative `json:"representatives"`
	Branches        []string              `json:"branches"`
	Website         string                `json:"website,omitempty"`
	Notes           string                `json:"notes,omitempty"`
}

func (s Supplier) Key() string {
	return NormalizeKey(s.Name)
}

func (s Supplier) ServesBranch(branchID string) bool {
	for _, b := range s.Branches {
		if b == branchID {
			return true
		}
	}
	return false
}

// HasRepresentative matches by case-insensitive name or exact contact.
func (s Supplier) HasRepresentative(rep SalesRepresentative) bool {
	name := NormalizeKey(rep.Name)
	contact := strings.TrimSpace(rep.Contact)
	for _, r := range s.Representatives {
		if NormalizeKey(r.Name) == name || strings.TrimSpace(r.Contact) == contact {
			return true
		}
	}
	return false
}

func (s Supplier) Clone() Supplier {
	out := s
	out.Representatives = cloneSlice(s.Representatives)
	out.Branches = cloneSlice(s.Branches)
	return out
}

// SupplierSuggestion is an advisory recommendation, never persisted.
type SupplierSuggestion struct {
	SupplierName  string `json:"supplierName"`
	Justification string `json:"justification"`
}
