package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/config"
	"github.com/go-randomstring/randomstring/internal/db/controller/profile"
	"github.com/go-randomstring/randomstring/internal/db/models"
)

// defaultProfiles are stored if the profile table is empty.
func defaultProfiles(cfg *config.Config) []models.Profile {
	return []models.Profile{
		{
			Name:        "token",
			Description: "default length alphanumeric token",
			Length:      cfg.Generator.OutputLength(),
			Charset:     string(charset.Alphanumeric),
		},
		{
			Name:        "pin",
			Description: "six digit pin",
			Length:      6,
			Charset:     string(charset.Numeric),
		},
		{
			Name:           "readable-code",
			Description:    "uppercase code without ambiguous characters",
			Length:         8,
			Charset:        string(charset.Alphanumeric),
			Readable:       true,
			Capitalization: string(charset.Uppercase),
		},
	}
}

func seed(cfg *config.Config, db *gorm.DB) error {
	count, err := profile.Count(db)
	if err != nil {
		return errors.Wrap(err, "failed to count profiles")
	}

	if count > 0 {
		return nil
	}

	for _, p := range defaultProfiles(cfg) {
		if _, err = profile.Create(db, &p); err != nil {
			return errors.Wrapf(err, "failed to seed profile %q", p.Name)
		}
	}

	log.Info().Int("profiles", len(defaultProfiles(cfg))).Msg("seeded default profiles")

	return nil
}
