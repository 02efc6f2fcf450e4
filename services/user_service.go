// services/user_service.go
package services

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"memory-game-service/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// createUser registers a new player. The name is slugified so it can live
// in URLs; the slug is the primary identifier and must be unique.
func (s *UserService) createUser(name, email string) (*models.User, error) {
	key := slug.Make(strings.TrimSpace(name))
	if key == "" {
		return nil, errors.New("a player name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("an email address is required")
	}

	var existing models.User
	err := s.DB.First(&existing, "name = ?", key).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Name: key, Email: strings.TrimSpace(email)}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// rankings returns every player who has scored, best first.
func (s *UserService) rankings() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("score > 0").Order("score DESC").Find(&users).Error
	return users, err
}

// --- Fiber handlers ---

type newUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser registers a new player. Requires an email and a unique name.
func (s *UserService) CreateUser(c *fiber.Ctx) error {
	var req newUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := s.createUser(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log.Info().Str("user", user.Name).Msg("player registered")
	return c.Status(fiber.StatusCreated).JSON(user.ToForm())
}

// GetUserRankings returns all players ranked by their cumulative points.
func (s *UserService) GetUserRankings(c *fiber.Ctx) error {
	users, err := s.rankings()
	if err != nil {
		log.Error().Err(err).Msg("ranking query failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	forms := make([]models.UserForm, len(users))
	for i := range users {
		forms[i] = users[i].ToForm()
	}
	return c.JSON(forms)
}
