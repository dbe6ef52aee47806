package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact the administrator"
	ErrClientInvalidTimeRange              = "end time must be after start time"
	ErrClientTherapistNotFound             = "therapist not found"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientEmailAlreadyExists            = "email already used"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevURLParamIDValidationFailed = "URL param %s is not a valid identifier"
	ErrDevInvalidTimeRange           = "booking end_time is not strictly after start_time"
	ErrDevTherapistNotExists         = "therapist does not exist"
	ErrDevBookingNotExists           = "booking does not exist"
	ErrDevEmailAlreadyExists         = "therapist email already registered"
	ErrDevDBFailedToFindData         = "database failed to find data"
	ErrDevDBFailedToInsertData       = "database failed to insert data"
	ErrDevDBFailedToIterateDataset   = "database failed to iterate dataset"
	ErrDevQueueFailedToPublish       = "queue failed to publish message"
	ErrDevQueueFailedToConsume       = "queue failed to start consuming"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
)
