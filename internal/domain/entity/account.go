package entity

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// AccountKind tags which variant of account a record is.
type AccountKind string

const (
	// AccountKindWorker is a person who takes exams.
	AccountKindWorker AccountKind = "worker"
	// AccountKindCompany is an organization that schedules exams for its workers.
	AccountKindCompany AccountKind = "company"
)

// String returns the string representation of the kind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of the known variants.
func (k AccountKind) IsValid() bool {
	return k == AccountKindWorker || k == AccountKindCompany
}

// Account is an identity capable of authenticating: either a worker or a company.
// Both kinds share a single lifecycle: pending -> active -> (credential reset)*.
type Account struct {
	ID           uuid.UUID   // Generated at creation, immutable.
	Kind         AccountKind // Worker or company.
	Email        string      // Unique across both kinds.
	PasswordHash *string     // One-way hash of the credential. Nil until the first confirmation.
	Active       bool        // False until the owner confirms the email address.
	Name         string      // Full name for workers, legal name for companies.
	Phone        string
	TaxID        string // CPF for workers, CNPJ for companies. Unique within a kind.
	Address      *Address
	Role         Role // Only meaningful for workers.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address is a postal address attached to an account.
type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

// HasCredential reports whether a credential hash has been set.
func (a *Account) HasCredential() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// IsPending reports whether the account is still waiting for confirmation.
func (a *Account) IsPending() bool {
	return !a.Active && !a.HasCredential()
}

// SessionRole is the role carried by session tokens issued for this account.
func (a *Account) SessionRole() Role {
	if a.Kind == AccountKindCompany {
		return RoleCompany
	}
	if a.Role == "" {
		return RoleWorker
	}

	return a.Role
}

// NormalizeEmail lowercases and trims an email address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeTaxID strips CPF/CNPJ punctuation and whitespace, leaving only the digits and letters.
func NormalizeTaxID(taxID string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '-', '/', ' ', '\t':
			return -1
		}

		return unicode.ToUpper(r)
	}, strings.TrimSpace(taxID))
}
