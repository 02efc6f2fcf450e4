// services/game_service.go
package services

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"memory-game-service/engine"
	"memory-game-service/models"
)

// Notifier receives completion events for asynchronous delivery. It must
// not block: a move response never waits on notification plumbing.
type Notifier interface {
	GameCompleted(userName, gameID string, score int)
}

type GameService struct {
	DB       *gorm.DB
	Notifier Notifier

	// MaxBoardSize caps the size accepted by the create endpoint. This is
	// boundary validation policy, not an engine invariant.
	MaxBoardSize int
}

func NewGameService(db *gorm.DB, notifier Notifier, maxBoardSize int) *GameService {
	return &GameService{DB: db, Notifier: notifier, MaxBoardSize: maxBoardSize}
}

// lockForUpdate takes a row lock on dialects that support it. SQLite (used
// in tests) has no FOR UPDATE; its writes are serialized anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// createGame builds a shuffled board for the named player and persists the
// new active game.
func (s *GameService) createGame(userName string, size int) (*models.Game, error) {
	var user models.User
	if err := s.DB.First(&user, "name = ?", userName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	board, err := engine.NewBoard(size)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:       uuid.NewString(),
		UserName: user.Name,
		Board:    board,
		Status:   models.StatusActive,
		Size:     size,
		History:  []engine.Move{},
	}
	if err := s.DB.Create(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) getGame(gameID string) (*models.Game, error) {
	var game models.Game
	if err := s.DB.First(&game, "id = ?", gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

// moveOutcome reports what a single move did.
type moveOutcome struct {
	Game      *models.Game
	Matched   bool
	Completed bool
}

// makeMove applies one guess as an atomic read-modify-write: the game row
// is locked, the move evaluated, the history appended, match points
// credited and, on a cleared board, the completed transition (Score row,
// games counter) performed — all in one transaction. A precondition
// failure mutates nothing.
func (s *GameService) makeMove(gameID string, card1, card2 int) (*moveOutcome, error) {
	var out moveOutcome
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := lockForUpdate(tx).First(&game, "id = ?", gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		if !game.IsActive() {
			return ErrGameOver
		}

		matched, err := engine.ApplyMove(game.Board, card1, card2)
		if err != nil {
			return err
		}
		game.History = append(game.History, engine.Move{Card1: card1, Card2: card2})

		var user models.User
		if err := tx.First(&user, "name = ?", game.UserName).Error; err != nil {
			return err
		}

		if matched {
			points, err := addMatchPoints(tx, &user, game.Size)
			if err != nil {
				return err
			}
			game.Score += points
		}

		if engine.IsComplete(game.Board) {
			game.Status = models.StatusCompleted
			score := models.Score{
				ID:       uuid.NewString(),
				GameID:   game.ID,
				UserName: user.Name,
				Date:     time.Now(),
				Size:     game.Size,
			}
			if err := tx.Create(&score).Error; err != nil {
				return err
			}
			if err := addCompletedGame(tx, &user); err != nil {
				return err
			}
			out.Completed = true
		}

		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		out.Game = &game
		out.Matched = matched
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Congratulations mail is fire-and-forget, after the commit.
	if out.Completed && s.Notifier != nil {
		s.Notifier.GameCompleted(out.Game.UserName, out.Game.ID, out.Game.Score)
	}
	return &out, nil
}

// cancelGame moves an active game to cancelled and reverses the points it
// had awarded. Terminal games stay exactly as they ended.
func (s *GameService) cancelGame(gameID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := lockForUpdate(tx).First(&game, "id = ?", gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		if !game.IsActive() {
			return ErrGameOver
		}

		game.Status = models.StatusCancelled
		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, "name = ?", game.UserName).Error; err != nil {
			return err
		}
		return removePoints(tx, &user, game.Score)
	})
}

func (s *GameService) userGames(userName string) ([]models.Game, error) {
	var user models.User
	if err := s.DB.First(&user, "name = ?", userName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	var games []models.Game
	if err := s.DB.Where("user_name = ?", user.Name).Order("created_at").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

// --- Fiber handlers ---

type newGameRequest struct {
	User string `json:"user"`
	Size int    `json:"size"`
}

// CreateGame starts a new game for an existing player.
func (s *GameService) CreateGame(c *fiber.Ctx) error {
	var req newGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Size < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "board size must be greater than zero"})
	}
	if req.Size > s.MaxBoardSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "board size exceeds the allowed maximum"})
	}

	game, err := s.createGame(req.User, req.Size)
	if err != nil {
		return s.renderError(c, err)
	}

	log.Info().Str("game", game.ID).Str("user", game.UserName).Int("size", game.Size).Msg("game created")
	return c.Status(fiber.StatusCreated).JSON(game.ToForm())
}

// GetGame returns the current state of a game. Completed and cancelled
// games show all cards revealed.
func (s *GameService) GetGame(c *fiber.Ctx) error {
	game, err := s.getGame(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(game.ToForm())
}

// GetUserGames returns all of a player's games, past and current,
// including cancelled ones.
func (s *GameService) GetUserGames(c *fiber.Ctx) error {
	games, err := s.userGames(c.Params("name"))
	if err != nil {
		return s.renderError(c, err)
	}
	forms := make([]models.GameForm, len(games))
	for i := range games {
		forms[i] = games[i].ToForm()
	}
	return c.JSON(forms)
}

type makeMoveRequest struct {
	Card1 int `json:"card1"`
	Card2 int `json:"card2"`
}

// MakeMove applies a guess to a game and returns the post-move board with
// the two played cards revealed.
func (s *GameService) MakeMove(c *fiber.Ctx) error {
	var req makeMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	out, err := s.makeMove(c.Params("id"), req.Card1, req.Card2)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(fiber.Map{
		"matched": out.Matched,
		"card1":   req.Card1,
		"card2":   req.Card2,
		"game":    out.Game.ToFormWithMove(req.Card1, req.Card2),
	})
}

// CancelGame cancels an active game.
func (s *GameService) CancelGame(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := s.cancelGame(id); err != nil {
		return s.renderError(c, err)
	}
	log.Info().Str("game", id).Msg("game cancelled")
	return c.JSON(fiber.Map{"message": "cancelled the game with id: " + id})
}

// GetGameHistory returns the ordered list of guesses made in a game.
func (s *GameService) GetGameHistory(c *fiber.Ctx) error {
	game, err := s.getGame(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	history := game.History
	if history == nil {
		history = []engine.Move{}
	}
	return c.JSON(history)
}

// renderError maps service and engine errors onto transport status codes.
func (s *GameService) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrGameNotFound), errors.Is(err, ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrGameOver),
		errors.Is(err, engine.ErrBoardSize),
		errors.Is(err, engine.ErrIndexOutOfRange),
		errors.Is(err, engine.ErrSameCard),
		errors.Is(err, engine.ErrCardUnavailable):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("game operation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
