package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SurveyDocument mirrors one submission in the surveys collection. The
// honeypot and recaptchaToken request fields never reach this struct.
type SurveyDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Gender      string             `bson:"gender"`
	Nationality string             `bson:"nationality"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	Address     string             `bson:"address"`
	Message     string             `bson:"message"`
	IPAddress   string             `bson:"ipAddress"`
	UserAgent   string             `bson:"userAgent"`
	CreatedAt   time.Time          `bson:"createdAt"`
}
