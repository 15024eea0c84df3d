package migrations

import (
	"context"

	"github.com/ksugita/tenrankai/entity"
	"github.com/ksugita/tenrankai/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EnsureMembershipIndexes creates the indexes the membership list queries
// rely on: per-user lookup ordered by recency.
func EnsureMembershipIndexes(ctx context.Context, client *mongo.Client, databaseName string) error {
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	for _, name := range []string{"favorites", "bookmarks"} {
		collection := client.Database(databaseName).Collection(name)
		if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}

	return nil
}

// MigratePreferences moves the legacy membership arrays embedded in user
// documents into the favorites and bookmarks collections, then unsets the
// arrays. Records already present in the side tables are left untouched, so
// the migration can be re-run.
func MigratePreferences(ctx context.Context, client *mongo.Client, databaseName string) error {
	userRepository := repository.NewUserRepository(client, databaseName)
	favoriteRepository := repository.NewFavoriteRepository(client, databaseName)
	bookmarkRepository := repository.NewBookmarkRepository(client, databaseName)

	users, err := userRepository.FindManyWithLegacyPreferences(ctx)
	if err != nil {
		return err
	}

	for _, user := range users {
		if user.Preferences == nil {
			continue
		}

		for _, item := range user.Preferences.FavoriteVenues {
			favorite := &entity.Favorite{
				ID:        entity.MembershipID(user.UID, item.MuseumID),
				UserID:    user.UID,
				MuseumID:  item.MuseumID,
				CreatedAt: item.AddedAt,
			}
			if err := favoriteRepository.InsertOne(ctx, favorite); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					continue
				}
				return err
			}
		}

		for _, item := range user.Preferences.BookmarkedExhibitions {
			bookmark := &entity.Bookmark{
				ID:           entity.MembershipID(user.UID, item.ExhibitionID),
				UserID:       user.UID,
				ExhibitionID: item.ExhibitionID,
				CreatedAt:    item.AddedAt,
			}
			if err := bookmarkRepository.InsertOne(ctx, bookmark); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					continue
				}
				return err
			}
		}

		if err := userRepository.UnsetLegacyPreferences(ctx, user.UID); err != nil {
			return err
		}

		log.Info().Str("uid", user.UID).
			Int("favorites", len(user.Preferences.FavoriteVenues)).
			Int("bookmarks", len(user.Preferences.BookmarkedExhibitions)).
			Msg("Migrated embedded preferences")
	}

	return nil
}
