package webhook

import "errors"

var (
	ErrMalformedPayload = errors.New("webhook payload is not valid JSON or misses required event fields")
	ErrMissingField     = errors.New("webhook payload misses the repository identifier")
	ErrNoRegistration   = errors.New("no registration matches the event's repository")
	ErrAuthentication   = errors.New("webhook signature verification failed")
	ErrDelivery         = errors.New("failed to deliver notification")
)
