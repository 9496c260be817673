package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMapAdminSurveyDocument(t *testing.T) {
	id := primitive.NewObjectID()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	doc := SurveyDocument{
		ID:          id,
		Name:        "Jo Ann",
		Gender:      "female",
		Nationality: "X",
		Email:       "a@b.com",
		Phone:       "+1 555-1234",
		Address:     "1 Rd",
		Message:     "Hello there, this is fine.",
		IPAddress:   "192.0.2.1",
		UserAgent:   "test-agent",
		CreatedAt:   createdAt,
	}

	survey := mapAdminSurveyDocument(doc)

	assert.Equal(t, id.Hex(), survey.ID)
	assert.Equal(t, "Jo Ann", survey.Name)
	assert.Equal(t, "female", survey.Gender)
	assert.Equal(t, "X", survey.Nationality)
	assert.Equal(t, "a@b.com", survey.Email)
	assert.Equal(t, "+1 555-1234", survey.Phone)
	assert.Equal(t, "1 Rd", survey.Address)
	assert.Equal(t, "Hello there, this is fine.", survey.Message)
	assert.Equal(t, "192.0.2.1", survey.IPAddress)
	assert.Equal(t, "test-agent", survey.UserAgent)
	assert.Equal(t, createdAt, survey.CreatedAt)
}
