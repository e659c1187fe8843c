package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a free-form patient testimonial. The common fields are typed;
// every other field the client sends is kept in Extra and stored inline.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	Rating    float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Extra     bson.M             `bson:",inline" json:"-"`
}

// reviewFields are the keys owned by the typed fields of Review.
var reviewFields = []string{"_id", "name", "location", "rating", "comment", "createdAt"}

// reviewJSON has the typed fields of Review without its JSON methods.
type reviewJSON Review

// UnmarshalJSON decodes the typed fields and keeps the rest in Extra. Client
// supplied _id and createdAt are ignored.
func (r *Review) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "_id")
	delete(raw, "createdAt")

	known := make(map[string]json.RawMessage, len(reviewFields))
	extra := bson.M{}
	for k, v := range raw {
		if isReviewField(k) {
			known[k] = v
			continue
		}
		var value interface{}
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		extra[k] = value
	}

	typed, err := json.Marshal(known)
	if err != nil {
		return err
	}
	var decoded reviewJSON
	if err := json.Unmarshal(typed, &decoded); err != nil {
		return err
	}
	*r = Review(decoded)
	if len(extra) > 0 {
		r.Extra = extra
	}
	return nil
}

// MarshalJSON writes the typed fields and the extras as one flat object.
func (r Review) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(reviewJSON(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return typed, nil
	}

	out := make(map[string]interface{}, len(r.Extra)+len(reviewFields))
	for k, v := range r.Extra {
		out[k] = v
	}
	var known map[string]json.RawMessage
	if err := json.Unmarshal(typed, &known); err != nil {
		return nil, err
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}

func isReviewField(key string) bool {
	for _, f := range reviewFields {
		if f == key {
			return true
		}
	}
	return false
}
