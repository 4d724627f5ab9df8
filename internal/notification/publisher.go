// Package notification is the outbound channel for assignment events.
// Delivery is fire-and-forget: a failed publish must never block or
// reverse the operation that triggered it.
package notification

import "context"

// Message is the envelope published to the task topic.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Publisher emits a message to the notification channel.
//
// Publish errors are the caller's to log and discard; propagating them
// into the triggering operation breaks the best-effort contract.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}
