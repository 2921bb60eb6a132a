package seed

import (
	"sort"

	"stride/models"
)

const (
	minFavorites = 3
	maxFavorites = 8
)

// createFavorites gives every user between 3 and 8 distinct random sneakers,
// fewer when the catalogue is smaller than that.
func (l *loader) createFavorites() (int, error) {
	if len(l.users) == 0 || len(l.sneakers) == 0 {
		return 0, nil
	}

	sneakerIDs := make([]uint, 0, len(l.sneakers))
	for _, id := range l.sneakers {
		sneakerIDs = append(sneakerIDs, id)
	}
	sort.Slice(sneakerIDs, func(i, j int) bool { return sneakerIDs[i] < sneakerIDs[j] })

	userIDs := make([]uint, 0, len(l.users))
	for _, id := range l.users {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })

	high := maxFavorites
	if len(sneakerIDs) < high {
		high = len(sneakerIDs)
	}
	low := minFavorites
	if low > high {
		low = high
	}

	var favorites []models.Favorite
	for _, userID := range userIDs {
		n := low + l.rng.Intn(high-low+1)
		for _, idx := range l.rng.Perm(len(sneakerIDs))[:n] {
			favorites = append(favorites, models.Favorite{UserID: userID, SneakerID: sneakerIDs[idx]})
		}
	}
	if err := l.tx.CreateInBatches(favorites, priceBatchSize).Error; err != nil {
		return 0, err
	}
	return len(favorites), nil
}
