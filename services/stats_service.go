// services/stats_service.go
package services

import (
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"memory-game-service/models"
)

// averageScoreKey is where the cached global average lives.
const averageScoreKey = "average_score"

// StatsService maintains the cached average of all players' cumulative
// scores. The scheduler refreshes it hourly; the challenge and
// congratulations mails read it.
type StatsService struct {
	DB    *gorm.DB
	cache *cache.Cache
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		DB:    db,
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// CacheAverageScore recomputes the mean cumulative score across all
// players and stores it in the cache. With no registered players the
// cache is left untouched and zero is returned.
func (s *StatsService) CacheAverageScore() (float64, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, nil
	}

	total := 0
	for _, u := range users {
		total += u.Score
	}
	average := float64(total) / float64(len(users))
	s.cache.Set(averageScoreKey, average, cache.NoExpiration)
	return average, nil
}

// AverageScore returns the cached average, or zero before the first
// refresh.
func (s *StatsService) AverageScore() float64 {
	if v, ok := s.cache.Get(averageScoreKey); ok {
		return v.(float64)
	}
	return 0
}
