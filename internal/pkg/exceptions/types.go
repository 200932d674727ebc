package exceptions

import (
	"fmt"
	"thirdopinion-service/internal/pkg/constvars"
)

// Builder validation failures. These name the setter the caller forgot so the
// error message is actionable on its own.
var (
	ErrRequiredFieldMissing = func(field, setter string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientResourceIncomplete, fmt.Sprintf(constvars.ErrDevRequiredFieldMissing, field, setter))
	}
	ErrConfidenceOutOfRange = func(value float64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidClinicalValue, fmt.Sprintf(constvars.ErrDevConfidenceOutOfRange, value))
	}
	ErrEmptyFocusList = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientResourceIncomplete, constvars.ErrDevEmptyFocusList)
	}
	ErrFocusNotCondition = func(reference string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidClinicalValue, fmt.Sprintf(constvars.ErrDevFocusNotCondition, reference))
	}
	ErrInvalidDetermination = func(determination string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidClinicalValue, fmt.Sprintf(constvars.ErrDevInvalidDetermination, determination))
	}
	ErrInvalidCriteriaType = func(criteriaType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidClinicalValue, fmt.Sprintf(constvars.ErrDevInvalidCriteriaType, criteriaType))
	}
	ErrConditionNotDerivable = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientResourceIncomplete, constvars.ErrDevConditionNotDerivable)
	}
	ErrInvalidFactInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidClinicalValue, fmt.Sprintf(constvars.ErrDevInvalidFactInput, FormatFirstValidationError(err)))
	}
)

// Serialization and FHIR data-plane failures.
var (
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientAWSOperationFailed, constvars.ErrDevSendHTTPRequest)
	}
	ErrSignHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSignHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCannotDecodeResponse, resourceType))
	}
	ErrFetchFHIRResource = func(err error, resourceType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevFetchFHIRResource, resourceType))
	}
	ErrUnexpectedFHIRResponseCode = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, statusCode, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevUnexpectedFHIRResponseCode, statusCode))
	}
)

// AWS collaborator failures.
var (
	ErrAWSOperation = func(err error, service, operation string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevAWSOperation, service, operation))
	}
	ErrPollTimeout = func(waitingFor, elapsed string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusGatewayTimeout, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevPollTimeout, waitingFor, elapsed))
	}
	ErrSecretNotFound = func(err error, secretName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevSecretNotFound, secretName))
	}
	ErrModelInvocation = func(err error, modelID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevModelInvocationFailed, modelID))
	}
	ErrModelStreamInterrupted = func(err error, modelID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevModelStreamInterrupted, modelID))
	}
	ErrQueueSend = func(err error, queueURL string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevQueueSendFailed, queueURL))
	}
	ErrQueueReceive = func(err error, queueURL string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevQueueReceiveFailed, queueURL))
	}
	ErrStorageUpload = func(err error, objectKey, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevStorageUploadFailed, objectKey, bucket))
	}
	ErrStorageDownload = func(err error, objectKey, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevStorageDownloadFailed, objectKey, bucket))
	}
	ErrAuthOperation = func(err error, operation string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevAuthOperationFailed, operation))
	}
	ErrDatastoreDescribe = func(err error, datastoreID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientAWSOperationFailed, fmt.Sprintf(constvars.ErrDevDatastoreDescribeFailed, datastoreID))
	}
)
