package models

// ContactSubmission is bound from the contact form. It is never persisted.
type ContactSubmission struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Message string `form:"message" json:"message"`
}

// ContactOutcome is the terminal state of one contact submission.
type ContactOutcome int

const (
	ContactInvalid ContactOutcome = iota
	ContactDelivered
	ContactDeliveryFailed
)

func (o ContactOutcome) String() string {
	switch o {
	case ContactInvalid:
		return "invalid"
	case ContactDelivered:
		return "delivered"
	case ContactDeliveryFailed:
		return "delivery_failed"
	default:
		return "unknown"
	}
}

// Submitted reports whether the visitor should see the confirmation page.
func (o ContactOutcome) Submitted() bool {
	return o == ContactDelivered || o == ContactDeliveryFailed
}
