package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Code  string `json:"code,omitempty" example:"class_full"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Stable machine-readable codes for recoverable, user-facing rejections.
const (
	CodeValidation           = "validation_failed"
	CodeNotFound             = "not_found"
	CodeDuplicate            = "duplicate"
	CodeClassFull            = "class_full"
	CodeMemberProfileMissing = "member_profile_missing"
	CodeRateLimited          = "rate_limited"
)
