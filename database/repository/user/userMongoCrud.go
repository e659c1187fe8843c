// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertProfile sets the profile fields of the user with the email, creating
// a regular user when none exists. The role of an existing user is untouched.
func (r *MongoUserRepo) UpsertProfile(ctx context.Context, email string, profile models.UserProfile) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	set := bson.M{"email": email, "updatedAt": now}
	if profile.Name != "" {
		set["name"] = profile.Name
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now, "role": models.RoleRegular},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("failed to upsert user %s: %w", email, err)
	}
	return repository.FromUpdate(res), nil
}

// SetRole changes the role of the user with the email. No user is created.
func (r *MongoUserRepo) SetRole(ctx context.Context, email string, role models.Role) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": role, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	return repository.FromUpdate(res), nil
}

// DeleteByEmail removes a user document by its email.
func (r *MongoUserRepo) DeleteByEmail(ctx context.Context, email string) (models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("failed to delete user %s: %w", email, err)
	}
	return repository.FromDelete(res), nil
}
