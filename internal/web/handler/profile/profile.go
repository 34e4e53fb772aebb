// Package profile serves the stored generation profiles over HTTP.
package profile

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/config"
	profilecontroller "github.com/go-randomstring/randomstring/internal/db/controller/profile"
	"github.com/go-randomstring/randomstring/internal/db/models"
	"github.com/go-randomstring/randomstring/internal/generator"
	"github.com/go-randomstring/randomstring/internal/web/handler"
	"github.com/go-randomstring/randomstring/internal/web/middleware/auth"
)

const (
	// Path is the profile collection.
	Path = handler.RootPath + "profiles"

	// ItemPath is a single profile.
	ItemPath = Path + "/:name"
)

// Form is the JSON body used to create or update a profile.
type Form struct {
	Name           string `json:"name" validate:"required,max=64,excludesall=/"`
	Description    string `json:"description" validate:"max=255"`
	Length         int    `json:"length" validate:"gte=0"`
	Charset        string `json:"charset"`
	Readable       bool   `json:"readable"`
	Capitalization string `json:"capitalization" validate:"omitempty,oneof=uppercase lowercase"`
}

// View is the JSON representation of a stored profile.
type View struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Length         int    `json:"length"`
	Charset        string `json:"charset"`
	Readable       bool   `json:"readable"`
	Capitalization string `json:"capitalization"`
}

// Service is the profile handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Init initializes the profile handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, gen *generator.Generator) error {
	if app == nil || cfg == nil || db == nil || gen == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Use(Path, auth.New(cfg.Webserver.APIToken))

	app.Get(Path, s.List)
	app.Post(Path, s.Create)
	app.Get(ItemPath, s.Get)
	app.Put(ItemPath, s.Update)
	app.Delete(ItemPath, s.Delete)

	return nil
}

// List returns all profiles.
func (s *Service) List(c *fiber.Ctx) error {
	profiles, err := profilecontroller.GetAll(s.db)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]View, len(profiles))
	for i := range profiles {
		out[i] = toView(&profiles[i])
	}

	return c.JSON(out)
}

// Get returns one profile.
func (s *Service) Get(c *fiber.Ctx) error {
	p, err := profilecontroller.Get(s.db, c.Params("name"))
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(toView(p))
}

// Create stores a new profile.
func (s *Service) Create(c *fiber.Ctx) error {
	form, err := s.parseForm(c)
	if err != nil {
		return err
	}

	if form == nil {
		return nil
	}

	p, err := profilecontroller.Create(s.db, form.model())
	if err != nil {
		return s.fail(c, err)
	}

	log.Info().Str("profile", p.Name).Msg("profile created")

	return c.Status(fiber.StatusCreated).JSON(toView(p))
}

// Update replaces the options of an existing profile.
func (s *Service) Update(c *fiber.Ctx) error {
	name := c.Params("name")

	form, err := s.parseForm(c)
	if err != nil {
		return err
	}

	if form == nil {
		return nil
	}

	if form.Name != name {
		return handler.Fail(c, fiber.StatusBadRequest, "profile name in body does not match the path")
	}

	p, err := profilecontroller.Update(s.db, name, form.model())
	if err != nil {
		return s.fail(c, err)
	}

	log.Info().Str("profile", p.Name).Msg("profile updated")

	return c.JSON(toView(p))
}

// Delete removes a profile.
func (s *Service) Delete(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := profilecontroller.Delete(s.db, name); err != nil {
		return s.fail(c, err)
	}

	log.Info().Str("profile", name).Msg("profile deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

// parseForm decodes and validates the request body. A nil form with a nil
// error means the error response was already sent.
func (s *Service) parseForm(c *fiber.Ctx) (*Form, error) {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		log.Debug().Err(err).Msg("failed to parse profile form")

		return nil, handler.Fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.validator.Struct(&form); err != nil {
		return nil, handler.Fail(c, fiber.StatusBadRequest, "validation failed", handler.ValidationErrors(err)...)
	}

	if form.Length > s.cfg.Generator.MaxLength {
		return nil, handler.Fail(c, fiber.StatusBadRequest, "length exceeds the configured maximum")
	}

	// a profile that can never generate anything is rejected up front
	if _, err := charset.Resolve(form.model().Options().CharsetConfig()); err != nil {
		return nil, handler.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	return &form, nil
}

func (s *Service) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profilecontroller.ErrProfileNotFound):
		return handler.Fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, profilecontroller.ErrProfileAlreadyExists):
		return handler.Fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, profilecontroller.ErrProfileNameEmpty), errors.Is(err, profilecontroller.ErrProfileNil):
		return handler.Fail(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("profile operation failed")

		return handler.Fail(c, fiber.StatusInternalServerError, "profile operation failed")
	}
}

func (f *Form) model() *models.Profile {
	return &models.Profile{
		Name:           f.Name,
		Description:    f.Description,
		Length:         f.Length,
		Charset:        f.Charset,
		Readable:       f.Readable,
		Capitalization: f.Capitalization,
	}
}

func toView(p *models.Profile) View {
	return View{
		Name:           p.Name,
		Description:    p.Description,
		Length:         p.Length,
		Charset:        p.Charset,
		Readable:       p.Readable,
		Capitalization: p.Capitalization,
	}
}
