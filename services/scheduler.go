// services/scheduler.go
package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"memory-game-service/models"
	"memory-game-service/workers"
)

// StartScoreScheduler runs the two recurring jobs: refreshing the cached
// average score and mailing a challenge to every player who sits below it.
// Both run once per interval (hourly in production).
func (s *StatsService) StartScoreScheduler(mailer workers.Mailer, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			avg, err := s.CacheAverageScore()
			if err != nil {
				log.Error().Err(err).Msg("failed to refresh average score")
				return
			}
			log.Debug().Float64("average", avg).Msg("average score refreshed")
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := s.sendChallengeMail(mailer); err != nil {
				log.Error().Err(err).Msg("challenge mail run failed")
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	return sched, nil
}

// sendChallengeMail nudges every player whose lifetime score is below the
// cached global average. The mail lists the player's games still in
// progress so they know where to pick up.
func (s *StatsService) sendChallengeMail(mailer workers.Mailer) error {
	avg := s.AverageScore()

	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		if float64(user.Score) >= avg {
			continue
		}
		diff := int(avg) - user.Score

		body := fmt.Sprintf(
			"Greetings %s, your current memory game score is %d. "+
				"It is %d less than the average score of %.0f. Keep going!",
			user.Name, user.Score, diff, avg)

		var games []models.Game
		if err := s.DB.Where("user_name = ? AND status = ?", user.Name, models.StatusActive).
			Find(&games).Error; err != nil {
			return err
		}
		if len(games) > 0 {
			ids := make([]string, len(games))
			for i, g := range games {
				ids[i] = g.ID
			}
			body += fmt.Sprintf(" You have %d games in progress. Their ids are: %s",
				len(games), strings.Join(ids, ", "))
		}

		if err := mailer.Send(user.Email, "Is your memory better than average?", body); err != nil {
			log.Error().Err(err).Str("user", user.Name).Msg("failed to send challenge mail")
		}
	}
	return nil
}
