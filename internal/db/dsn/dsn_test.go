package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-randomstring/randomstring/internal/config"
)

func TestCreate(t *testing.T) {
	cfg := &config.Config{
		DB: config.DB{
			Host:     "db",
			Port:     3306,
			User:     "user",
			Password: "secret",
			Name:     "profiles",
			Extras:   "parseTime=True",
		},
	}

	assert.Equal(t, "user:secret@tcp(db:3306)/profiles?parseTime=True", Create(cfg))

	cfg.DB.Port = 5432
	cfg.DB.Extras = "sslmode=disable"
	assert.Equal(t, "host=db user=user password=secret dbname=profiles port=5432 sslmode=disable", Postgres(cfg))

	cfg.DB.Extras = ""
	assert.Equal(t, "host=db user=user password=secret dbname=profiles port=5432", Postgres(cfg))
}

func TestSQLite(t *testing.T) {
	assert.Equal(t, ":memory:", SQLite(&config.Config{}))
	assert.Equal(t, "x.db", SQLite(&config.Config{DB: config.DB{Name: "x.db"}}))
}
