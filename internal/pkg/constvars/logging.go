package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingTherapistIDKey = "therapist_id"
	LoggingBookingIDKey   = "booking_id"
	LoggingMessageIDKey   = "message_id"
	LoggingEventTypeKey   = "event_type"
	LoggingQueueKey       = "queue"
)
