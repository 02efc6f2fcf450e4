// workers/congrats_worker.go
package workers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"memory-game-service/models"
)

// CompletionEvent is emitted by the game service when a game reaches the
// completed status.
type CompletionEvent struct {
	UserName string
	GameID   string
	Score    int
}

// CongratsNotifier delivers congratulations mail for completed games. The
// game service hands events over a buffered channel and returns
// immediately; delivery happens on the worker goroutine so a slow or
// failing mail relay never delays a move response.
type CongratsNotifier struct {
	DB      *gorm.DB
	Mailer  Mailer
	Average func() float64

	events chan CompletionEvent
}

func NewCongratsNotifier(db *gorm.DB, mailer Mailer, average func() float64) *CongratsNotifier {
	return &CongratsNotifier{
		DB:      db,
		Mailer:  mailer,
		Average: average,
		events:  make(chan CompletionEvent, 64),
	}
}

// GameCompleted queues a completion event. Never blocks; if the buffer is
// full the event is dropped with a warning, since the mail is best-effort.
func (n *CongratsNotifier) GameCompleted(userName, gameID string, score int) {
	ev := CompletionEvent{UserName: userName, GameID: gameID, Score: score}
	select {
	case n.events <- ev:
	default:
		log.Warn().Str("user", userName).Str("game", gameID).Msg("completion event dropped, notifier queue full")
	}
}

// Run consumes completion events until the context is cancelled.
func (n *CongratsNotifier) Run(ctx context.Context) {
	log.Info().Msg("congratulations notifier running")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("congratulations notifier stopped")
			return
		case ev := <-n.events:
			if err := n.send(ev); err != nil {
				log.Error().Err(err).Str("user", ev.UserName).Str("game", ev.GameID).Msg("failed to send congratulations mail")
			}
		}
	}
}

func (n *CongratsNotifier) send(ev CompletionEvent) error {
	var user models.User
	if err := n.DB.First(&user, "name = ?", ev.UserName).Error; err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Congratulations %s, you completed game %s with %d points. "+
			"Your lifetime score is now %d. The average score is %.0f. Keep it up!",
		user.Name, ev.GameID, ev.Score, user.Score, n.Average())
	return n.Mailer.Send(user.Email, "Congratulations", body)
}
