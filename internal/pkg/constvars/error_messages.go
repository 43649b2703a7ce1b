package constvars

const (
	ResponseUnknown = "unknown"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application"
)

// Error messages for developers
const (
	ErrDevInvalidInput      = "invalid input"
	ErrDevValidationFailed  = "request validation failed"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	ErrDevSamsLoginRejected     = "SAMS login rejected with HTTP status %d"
	ErrDevSamsExportFailed      = "SAMS export of %s failed with HTTP status %d"
	ErrDevSamsDecodeResponse    = "failed to decode SAMS %s response"
	ErrDevSamsSubjectIDMismatch = "SAMS returned phenopacket with subject id %q for requested external id %q"

	ErrDevCredentialsFileRead   = "failed to read credentials file %s"
	ErrDevCredentialsFileFormat = "credentials file %s must contain at least two lines (username, password)"

	ErrDevOnsetSelectionEmpty = "cannot resolve %q onset timestamp: phenopacket has no phenotypic features"
)
