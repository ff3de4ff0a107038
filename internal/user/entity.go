package user

import "github.com/google/uuid"

// User is a registered business owner. The mobile number is the login key and
// unique across the install; OTP delivery and verification happen outside
// this service, which only issues the session once identity is asserted.
type User struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	BusinessName     string    `json:"businessName"`
	BusinessCategory string    `json:"businessCategory"`
	Mobile           string    `json:"mobile"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	Website          string    `json:"website,omitempty"`
	// ProfileImage is a base64 data string rendered on invoices and cards.
	ProfileImage string `json:"profileImage,omitempty"`
}
