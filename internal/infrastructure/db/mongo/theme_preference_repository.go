package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

const themePreferenceCollection = "theme_preferences"

// ThemePreferenceRepository stores one document per user, keyed by the API's
// user id.
type ThemePreferenceRepository struct {
	coll *mongo.Collection
}

var _ ports.ThemePreferenceRepository = (*ThemePreferenceRepository)(nil)

func NewThemePreferenceRepository(db *mongo.Database) *ThemePreferenceRepository {
	return &ThemePreferenceRepository{coll: db.Collection(themePreferenceCollection)}
}

type mongoThemePreference struct {
	UserID    string `bson:"_id"`
	Theme     string `bson:"theme"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *ThemePreferenceRepository) Get(ctx context.Context, userID string) (domain.ThemeID, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoThemePreference
	if err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrPreferenceNotFound
		}
		return "", fmt.Errorf("find theme preference: %w", err)
	}
	return domain.ThemeID(doc.Theme), nil
}

// Save upserts the user's choice.
func (r *ThemePreferenceRepository) Save(ctx context.Context, userID string, id domain.ThemeID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"theme":      string(id),
		"updated_at": time.Now().Unix(),
	}}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": userID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}
