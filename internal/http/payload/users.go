package payload

import (
	"github.com/jellydator/validation"
)

type UpsertUserRequest struct {
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

func (u UpsertUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Username, validation.Length(1, 64)),
		validation.Field(&u.PublicKey, validation.Length(32, 44)),
	)
}

// UsernamePtr returns nil when no username was supplied, so an upsert never
// overwrites an existing value with the empty string.
func (u UpsertUserRequest) UsernamePtr() *string {
	if u.Username == "" {
		return nil
	}
	return &u.Username
}

func (u UpsertUserRequest) PublicKeyPtr() *string {
	if u.PublicKey == "" {
		return nil
	}
	return &u.PublicKey
}

type ContactRequest struct {
	Username  string `json:"username"`
	PublicKey string `json:"publicKey"`
}

func (c ContactRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&c.PublicKey, validation.Required, validation.Length(32, 44)),
	)
}
