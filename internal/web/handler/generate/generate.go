// Package generate serves random strings over HTTP.
package generate

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/config"
	"github.com/go-randomstring/randomstring/internal/db/controller/profile"
	"github.com/go-randomstring/randomstring/internal/generator"
	"github.com/go-randomstring/randomstring/internal/web/handler"
)

const (
	// Path generates strings.
	Path = handler.RootPath + "generate"

	// PresetsPath lists the built-in charsets.
	PresetsPath = handler.RootPath + "presets"
)

// Request holds the optional overrides of a generation request.
// Nil fields keep the profile or configured default.
type Request struct {
	Length         *int    `json:"length" query:"length" validate:"omitempty,gte=0"`
	Charset        *string `json:"charset" query:"charset"`
	Readable       *bool   `json:"readable" query:"readable"`
	Capitalization *string `json:"capitalization" query:"capitalization" validate:"omitempty,oneof=uppercase lowercase"` //nolint:lll
	Count          *int    `json:"count" query:"count" validate:"omitempty,gte=1"`
	Profile        string  `json:"profile" query:"profile"`
}

// Response carries the generated strings.
type Response struct {
	Success bool     `json:"success"`
	Length  int      `json:"length"`
	Values  []string `json:"values"`
}

// Preset describes a built-in charset.
type Preset struct {
	Name  string `json:"name"`
	Chars string `json:"chars"`
}

// Service is the generate handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	gen       *generator.Generator
	validator *validator.Validate
}

// Init initializes the generate handler. db may be nil, profiles are unavailable then.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, gen *generator.Generator) error {
	if app == nil || cfg == nil || gen == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.db = db
	s.gen = gen
	s.validator = validator.New()

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)
	app.Get(PresetsPath, s.Presets)

	return nil
}

// Get generates strings from query parameters.
func (s *Service) Get(c *fiber.Ctx) error {
	var req Request

	if err := c.QueryParser(&req); err != nil {
		log.Debug().Err(err).Msg("failed to parse generate query")

		return handler.Fail(c, fiber.StatusBadRequest, "invalid query parameters")
	}

	applyPresentQueryFlags(&req, c.Queries())

	return s.handle(c, &req)
}

// Post generates strings from a JSON body.
func (s *Service) Post(c *fiber.Ctx) error {
	var req Request

	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Debug().Err(err).Msg("failed to parse generate request")

			return handler.Fail(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	return s.handle(c, &req)
}

// Presets lists the built-in charsets.
func (s *Service) Presets(c *fiber.Ctx) error {
	presets := charset.Presets()

	out := make([]Preset, len(presets))
	for i, p := range presets {
		out[i] = Preset{Name: string(p), Chars: p.Chars()}
	}

	return c.JSON(out)
}

func (s *Service) handle(c *fiber.Ctx, req *Request) error {
	if err := s.validator.Struct(req); err != nil {
		return handler.Fail(c, fiber.StatusBadRequest, "validation failed", handler.ValidationErrors(err)...)
	}

	opts, status, err := s.options(req)
	if err != nil {
		return handler.Fail(c, status, err.Error())
	}

	count := 1
	if req.Count != nil {
		count = *req.Count
	}

	if count > s.cfg.Generator.MaxCount {
		return handler.Fail(c, fiber.StatusBadRequest,
			"count exceeds the maximum of "+strconv.Itoa(s.cfg.Generator.MaxCount))
	}

	values, err := s.generateAll(&opts, count)
	if err != nil {
		return handler.FailGeneration(c, err)
	}

	return c.JSON(Response{
		Success: true,
		Length:  opts.Length,
		Values:  values,
	})
}

// options layers the request over the profile or the configured defaults.
func (s *Service) options(req *Request) (generator.Options, int, error) {
	opts := s.cfg.Generator.Options()

	if req.Profile != "" {
		p, err := profile.Get(s.db, req.Profile)

		switch {
		case errors.Is(err, profile.ErrProfileNotFound):
			return opts, fiber.StatusNotFound, err
		case errors.Is(err, profile.ErrDBNil):
			return opts, fiber.StatusServiceUnavailable, errors.New("profiles are not available")
		case err != nil:
			log.Error().Err(err).Str("profile", req.Profile).Msg("failed to load profile")

			return opts, fiber.StatusInternalServerError, errors.New("failed to load profile")
		}

		opts = p.Options()
	}

	if req.Length != nil {
		opts.Length = *req.Length
	}

	if req.Charset != nil {
		opts.Charset = *req.Charset
		opts.CharsetExplicit = true
	}

	if req.Readable != nil {
		opts.Readable = *req.Readable
	}

	if req.Capitalization != nil {
		opts.Capitalization = charset.Capitalization(*req.Capitalization)
	}

	if opts.Length > s.cfg.Generator.MaxLength {
		return opts, fiber.StatusBadRequest,
			errors.New("length exceeds the maximum of " + strconv.Itoa(s.cfg.Generator.MaxLength))
	}

	return opts, fiber.StatusOK, nil
}

// generateAll runs count independent generations concurrently and keeps their order.
func (s *Service) generateAll(opts *generator.Options, count int) ([]string, error) {
	futures := make([]<-chan generator.Result, count)
	for i := range futures {
		futures[i] = s.gen.GenerateFuture(opts)
	}

	values := make([]string, count)

	var firstErr error

	for i, f := range futures {
		res := <-f
		if res.Err != nil && firstErr == nil {
			firstErr = res.Err
		}

		values[i] = res.Value
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return values, nil
}

// applyPresentQueryFlags handles parameters given without a value:
// "readable" alone switches the filter on, "charset=" is an explicit empty
// charset and "capitalization=" keeps the default.
func applyPresentQueryFlags(req *Request, q map[string]string) {
	if v, ok := q["readable"]; ok && v == "" {
		on := true
		req.Readable = &on
	}

	if v, ok := q["charset"]; ok {
		req.Charset = &v
	}

	if req.Capitalization != nil && *req.Capitalization == "" {
		req.Capitalization = nil
	}
}
