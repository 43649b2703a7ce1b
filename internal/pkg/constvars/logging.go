package constvars

const (
	LoggingSubjectIDKey   = "subject_id"
	LoggingPatientIDKey   = "patient_id"
	LoggingPacketCountKey = "packet_count"
	LoggingStatusCodeKey  = "status_code"
	LoggingOnsetKey       = "onset_timestamp"
)
