package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assignable to a seller account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Avatar is a reference to an image hosted by the external asset service.
type Avatar struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

// Sell represents a seller account, the single persistent entity.
//
// Password holds the bcrypt hash and is excluded from the default read
// projection; repository call sites that need it request the credential
// projection explicitly. The reset fields are populated only while a
// password-reset flow is in flight.
type Sell struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Password    string             `bson:"password,omitempty" json:"-"`
	ProductName string             `bson:"product_name,omitempty" json:"product_name,omitempty"`
	ProductCat  string             `bson:"product_cat,omitempty" json:"product_cat,omitempty"`
	Avatar      Avatar             `bson:"avatar,omitempty" json:"avatar"`
	Role        string             `bson:"role" json:"role"`

	ResetPasswordToken  string    `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpire time.Time `bson:"reset_password_expire,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PublicSell is the API view of an account. It can never carry the password
// hash or reset-token fields.
type PublicSell struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Gender      string    `json:"gender,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	ProductCat  string    `json:"product_cat,omitempty"`
	Avatar      Avatar    `json:"avatar"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public returns the API projection of the account.
func (s *Sell) Public() *PublicSell {
	return &PublicSell{
		ID:          s.ID.Hex(),
		Name:        s.Name,
		Email:       s.Email,
		Gender:      s.Gender,
		ProductName: s.ProductName,
		ProductCat:  s.ProductCat,
		Avatar:      s.Avatar,
		Role:        s.Role,
		CreatedAt:   s.CreatedAt,
	}
}
