package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/stument-forum-api/models"
)

// CountDocuments counts each forum collection. The counts are taken one after
// another and are not a consistent snapshot.
func (f *forumDatabase) CountDocuments(ctx context.Context) (models.ForumStats, error) {
	var stats models.ForumStats
	counts := []struct {
		name string
		dst  *int64
	}{
		{f.collections.Students, &stats.Students},
		{f.collections.Mentors, &stats.Mentors},
		{f.collections.Connections, &stats.Connections},
		{f.collections.ChatRooms, &stats.ChatRooms},
		{f.collections.Messages, &stats.Messages},
	}
	for _, c := range counts {
		n, err := f.db.Collection(c.name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return models.ForumStats{}, err
		}
		*c.dst = n
	}
	return stats, nil
}
