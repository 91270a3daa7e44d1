package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "12345678909", NormalizeTaxID(" 123.456.789-09 "))
	assert.Equal(t, "11222333000181", NormalizeTaxID("11.222.333/0001-81"))
	assert.Equal(t, "AB12", NormalizeTaxID("ab 12"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestAccount_IsPending(t *testing.T) {
	hash := "h"

	assert.True(t, (&Account{}).IsPending())
	assert.False(t, (&Account{PasswordHash: &hash}).IsPending())
	assert.False(t, (&Account{Active: true}).IsPending())
}

func TestAccount_SessionRole(t *testing.T) {
	assert.Equal(t, RoleCompany, (&Account{Kind: AccountKindCompany, Role: RoleAdmin}).SessionRole())
	assert.Equal(t, RoleWorker, (&Account{Kind: AccountKindWorker}).SessionRole())
	assert.Equal(t, RoleAdmin, (&Account{Kind: AccountKindWorker, Role: RoleAdmin}).SessionRole())
}
