package model

import (
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Index names referenced when classifying unique violations.
const (
	AccountEmailIndex = "idx_accounts_email"
	AccountTaxIDIndex = "idx_accounts_tax_id"
)

// AccountModel mirrors the 'accounts' table. Workers and companies share the table so
// the email index spans both kinds, while the tax identifier is unique per kind.
type AccountModel struct {
	ID           uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	Kind         string                              `gorm:"type:varchar(16);not null;index;uniqueIndex:idx_accounts_tax_id,priority:1"`
	Email        string                              `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	PasswordHash *string                             `gorm:"type:varchar(255)"`
	Active       bool                                `gorm:"not null;default:false"`
	Name         string                              `gorm:"type:varchar(255);not null"`
	Phone        string                              `gorm:"type:varchar(32);not null;default:''"`
	TaxID        string                              `gorm:"type:varchar(32);not null;uniqueIndex:idx_accounts_tax_id,priority:2"`
	Address      datatypes.JSONType[*entity.Address] `gorm:"not null"`
	Role         string                              `gorm:"type:varchar(16);not null;default:''"`
	CreatedAt    time.Time                           `gorm:"not null;index"`
	UpdatedAt    time.Time                           `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
