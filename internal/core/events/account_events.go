package events

const (
	EventUserRegistered         = "user.registered"
	EventPasswordResetRequested = "auth.password_reset_requested"
)

func NewUserRegisteredEvent(email, firstName string) BaseEvent {
	return NewBaseEvent(EventUserRegistered, map[string]interface{}{
		"email":      email,
		"first_name": firstName,
	})
}

func NewPasswordResetRequestedEvent(email, resetURL string) BaseEvent {
	return NewBaseEvent(EventPasswordResetRequested, map[string]interface{}{
		"email":     email,
		"reset_url": resetURL,
	})
}
