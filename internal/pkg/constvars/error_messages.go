package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
	ErrClientResourceIncomplete            = "clinical resource is missing required data"
	ErrClientInvalidClinicalValue          = "clinical value is not valid"
	ErrClientAWSOperationFailed            = "operation against AWS service failed"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevRequiredFieldMissing       = "required field %q is not set; call %s before Build"
	ErrDevConfidenceOutOfRange       = "confidence score %v is outside the range [0.0, 1.0]"
	ErrDevEmptyFocusList             = "at least one focus reference must be supplied"
	ErrDevFocusNotCondition          = "focus reference %q must point at a Condition resource"
	ErrDevInvalidDetermination       = "determination %q is not one of [CR PR SD PD Baseline Inconclusive]"
	ErrDevInvalidCriteriaType        = "criteria type %q is not a recognized progression standard"
	ErrDevConditionNotDerivable      = "a Condition can only be derived when the determination indicates progression"
	ErrDevInvalidFactInput           = "structured fact rejected: %s"
	ErrDevCannotMarshalJSON          = "cannot marshal data into JSON"
	ErrDevCannotDecodeResponse       = "cannot decode %s response body"
	ErrDevCreateHTTPRequest          = "cannot create HTTP request"
	ErrDevSendHTTPRequest            = "cannot send HTTP request"
	ErrDevSignHTTPRequest            = "cannot sign HTTP request with SigV4"
	ErrDevFetchFHIRResource          = "cannot fetch %s resource from the FHIR datastore"
	ErrDevAWSOperation               = "AWS %s operation %s failed"
	ErrDevPollTimeout                = "gave up waiting for %s after %s"
	ErrDevSecretNotFound             = "secret %q could not be retrieved"
	ErrDevModelInvocationFailed      = "model invocation for %q failed"
	ErrDevModelStreamInterrupted     = "model response stream for %q was interrupted"
	ErrDevQueueSendFailed            = "cannot send message to queue %q"
	ErrDevQueueReceiveFailed         = "cannot receive messages from queue %q"
	ErrDevStorageUploadFailed        = "cannot upload object %q to bucket %q"
	ErrDevStorageDownloadFailed      = "cannot download object %q from bucket %q"
	ErrDevAuthOperationFailed        = "Cognito %s operation failed"
	ErrDevDatastoreDescribeFailed    = "cannot describe HealthLake datastore %q"
	ErrDevDatastoreNotActive         = "HealthLake datastore %q did not reach ACTIVE state"
	ErrDevUnexpectedFHIRResponseCode = "unexpected status code %d from FHIR datastore"
)
