package model

// ProfileUpdate enumerates the fields the self-service update may change.
// Avatar is applied only when a new image was uploaded.
type ProfileUpdate struct {
	Name   string
	Email  string
	Avatar *Avatar
}

// AdminUpdate enumerates the fields the admin update may change.
type AdminUpdate struct {
	Name   string
	Email  string
	Gender string
	Role   string
}
