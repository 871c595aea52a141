package port

import "context"

// Mailer sends a contact-form submission to the transactional mail provider.
// Delivery is fire-and-forget from the domain's point of view: there is no
// template control beyond the four fields below.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

type Message struct {
	FromName  string
	FromEmail string
	FromPhone string
	Body      string
}
