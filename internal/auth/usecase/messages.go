package usecase

const (
	msgFillAllFields  = "Please fill in all fields"
	msgGateRequired   = "Please complete the security verification"
	msgGateFailed     = "Security verification failed. Please refresh the page."
	msgCodeSent       = "OTP sent successfully! Check console for demo code."
	msgSendFailed     = "Failed to send OTP. Please try again."
	msgCodeIncomplete = "Please enter a valid %d-digit OTP"
	msgLoginSuccess   = "Login successful! Redirecting to %s dashboard..."
	msgCodeMismatch   = "Invalid OTP. Please try again."
	msgVerifyFailed   = "Unable to verify OTP. Please try again."
	msgCodeExpired    = "OTP expired. Please request a new one."
	msgCodeResent     = "New OTP sent successfully!"
	msgBusy           = "Server is busy, please try again"
)
