package handler

import (
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// isStaff reports whether the caller administers the directory and every exam.
func isStaff(c echo.Context) bool {
	return deliverycontext.HasRole(c, entity.RoleAdmin, entity.RoleEditor)
}

// canAccessAccount allows staff and the account itself.
func canAccessAccount(c echo.Context, kind entity.AccountKind, id uuid.UUID) bool {
	if isStaff(c) {
		return true
	}

	session, ok := deliverycontext.GetSession(c)

	return ok && session.Kind == kind && session.AccountID == id
}

// canAccessExam allows staff and the worker or company the exam belongs to.
func canAccessExam(c echo.Context, exam *entity.Exam) bool {
	if isStaff(c) {
		return true
	}

	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return false
	}

	switch session.Kind {
	case entity.AccountKindWorker:
		return exam.WorkerID == session.AccountID
	case entity.AccountKindCompany:
		return exam.CompanyID == session.AccountID
	default:
		return false
	}
}

// authorizeExam loads the exam for non-staff callers and reports exams they are not part of as missing.
func (h *ExamHandler) authorizeExam(c echo.Context, id uuid.UUID) error {
	if isStaff(c) {
		return nil
	}

	exam, err := h.examUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !canAccessExam(c, exam) {
		return domainerrors.ErrExamNotFound
	}

	return nil
}

// scopeExamFilter pins the filter of a non-staff caller to its own exams.
// Asking for another account's exams is forbidden.
func scopeExamFilter(c echo.Context, workerID, companyID *uuid.UUID) error {
	if isStaff(c) {
		return nil
	}

	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return domainerrors.ErrForbidden
	}

	var own *uuid.UUID
	switch session.Kind {
	case entity.AccountKindWorker:
		own = workerID
	case entity.AccountKindCompany:
		own = companyID
	default:
		return domainerrors.ErrForbidden
	}

	if *own != uuid.Nil && *own != session.AccountID {
		return domainerrors.ErrForbidden
	}
	*own = session.AccountID

	return nil
}

// companyMayAssign reports whether a non-staff caller may attach an exam to companyID.
func companyMayAssign(c echo.Context, companyID uuid.UUID) bool {
	if isStaff(c) {
		return true
	}

	session, ok := deliverycontext.GetSession(c)

	return ok && session.Kind == entity.AccountKindCompany && session.AccountID == companyID
}
