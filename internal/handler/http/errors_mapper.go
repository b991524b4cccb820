package http

import (
	"errors"
	"net/http"

	"github.com/nandervang/go-consult-base/internal/adapter"
	"github.com/nandervang/go-consult-base/internal/crypto"
	"github.com/nandervang/go-consult-base/internal/service"
	"github.com/nandervang/go-consult-base/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	service.ErrProjectNotActive:        http.StatusConflict,
	service.ErrInvalidStatusTransition: http.StatusConflict,
	service.ErrInvoiceHasNoItems:       http.StatusBadRequest,
	service.ErrInvalidPeriod:           http.StatusBadRequest,

	crypto.ErrWeakPassword:       http.StatusBadRequest,
	crypto.ErrVaultLocked:        http.StatusLocked,
	crypto.ErrDecryptionFailed:   http.StatusForbidden,
	crypto.ErrMalformedPayload:   http.StatusInternalServerError,
	crypto.ErrUnsupportedVersion: http.StatusInternalServerError,

	adapter.ErrRateUnavailable: http.StatusBadGateway,

	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrClientNotFound:        http.StatusNotFound,
	store.ErrProjectNotFound:       http.StatusNotFound,
	store.ErrTimeEntryNotFound:     http.StatusNotFound,
	store.ErrInvoiceNotFound:       http.StatusNotFound,
	store.ErrInvoiceNumberExists:   http.StatusConflict,
	store.ErrSalaryPaymentNotFound: http.StatusNotFound,
	store.ErrSalaryPeriodExists:    http.StatusConflict,
	store.ErrCVProfileNotFound:     http.StatusNotFound,
	store.ErrDocumentNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
