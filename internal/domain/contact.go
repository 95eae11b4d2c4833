package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name" binding:"required"`
	Email     string        `bson:"email" json:"email" binding:"required,email"`
	Subject   string        `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string        `bson:"message" json:"message" binding:"required"`
	IsRead    bool          `bson:"isRead" json:"isRead"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// User is an admin account. Only admins authenticate; the public site has
// no user accounts.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
