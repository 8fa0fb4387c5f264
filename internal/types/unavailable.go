package types

// Reason codes for data-gap conditions. These are not errors; they travel as
// tagged values the caller can surface or ignore.
const (
	CodeOppRosterMissing      = "OPP_ROSTER_MISSING"
	CodeScheduleMappingFailed = "SCHEDULE_MAPPING_FAILED"
	CodeCapUnknown            = "CAP_UNKNOWN"
)

// Unavailable marks a result that could not be computed from the supplied
// inputs, with a machine-readable code and a human-readable message.
type Unavailable struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewUnavailable builds an Unavailable value.
func NewUnavailable(code, message string) *Unavailable {
	return &Unavailable{Code: code, Message: message}
}

// ErrorResponse is the standard HTTP error payload.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}
