package service

import "examhub/internal/domain/entity"

// LifecycleMetrics records outcomes of account lifecycle operations.
type LifecycleMetrics interface {
	RecordRegistration(kind entity.AccountKind, outcome string)
	RecordLogin(outcome string)
	RecordPurge(deleted int64)
	RecordMail(kind MessageKind, outcome string)
}
