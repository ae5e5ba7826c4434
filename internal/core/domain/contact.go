package domain

import "time"

// ContactMessage is a contact-form submission archived before relay, so a
// failed email hand-off never loses the message.
type ContactMessage struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject    string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message    string    `json:"message" bson:"message"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}
