package exceptions

import (
	"fmt"

	"github.com/KuechlerO/simple-sams-api/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}

	// SAMS: StatusCode carries the HTTP status the remote service answered
	// with, so callers can inspect it without parsing messages.
	ErrSamsLoginFailed = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientInvalidUsernameOrPassword, fmt.Sprintf(constvars.ErrDevSamsLoginRejected, statusCode))
	}
	ErrSamsExportFailed = func(statusCode int, resource string) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevSamsExportFailed, resource, statusCode))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevSamsDecodeResponse, resource))
	}
	ErrSubjectIDMismatch = func(gotSubjectID, requestedID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSamsSubjectIDMismatch, gotSubjectID, requestedID))
	}

	// Credentials file
	ErrCredentialsFileRead = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCredentialsFileRead, path))
	}
	ErrCredentialsFileFormat = func(path string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCredentialsFileFormat, path))
	}

	// Phenopacket transforms
	ErrOnsetSelectionEmpty = func(selector string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevOnsetSelectionEmpty, selector))
	}
)
