package entity

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

type NotificationEvent string

const (
	EventValidationFailed NotificationEvent = "validation_failed"
	EventGateNotPassed    NotificationEvent = "gate_not_passed"
	EventGateFailed       NotificationEvent = "gate_failed"
	EventCodeSent         NotificationEvent = "code_sent"
	EventSendFailed       NotificationEvent = "send_failed"
	EventVerifySuccess    NotificationEvent = "verify_success"
	EventVerifyMismatch   NotificationEvent = "verify_mismatch"
	EventVerifyFailed     NotificationEvent = "verify_failed"
	EventCodeExpired      NotificationEvent = "code_expired"
	EventCodeResent       NotificationEvent = "code_resent"
)

// Notification is a transient message for the user.
type Notification struct {
	Kind    NotificationKind  `json:"kind"`
	Event   NotificationEvent `json:"event"`
	Message string            `json:"message"`
}
