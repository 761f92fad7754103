package config

import (
	"errors"
	"fmt"
	"time"

	"catanboard/internal/models"

	"github.com/caarlos0/env/v11"
)

type SourcesConfig struct {
	Leaderboard string        `env:"LEADERBOARD_CSV" envDefault:""`
	Standard    string        `env:"STANDARD_CSV" envDefault:""`
	Caravan     string        `env:"CARAVAN_CSV" envDefault:""`
	Seafarers   string        `env:"SEAFARERS_CSV" envDefault:""`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type WebConfig struct {
	Addr        string   `env:"ADDR" envDefault:":8080"`
	Title       string   `env:"TITLE" envDefault:"Leaderboard"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

type SheetsConfig struct {
	CredentialsFile string `env:"CREDENTIALS_FILE" envDefault:""`
	SpreadsheetID   string `env:"SPREADSHEET_ID" envDefault:""`
	OwnerEmail      string `env:"OWNER_EMAIL" envDefault:""`
}

type Config struct {
	PageType    string `env:"PAGE_TYPE" envDefault:"single"`
	BasePath    string `env:"BASE_PATH" envDefault:""`
	DefaultSort string `env:"DEFAULT_SORT" envDefault:"wins"`

	Sources SourcesConfig `envPrefix:"SOURCE_"`
	Web     WebConfig     `envPrefix:"WEB_"`
	Sheets  SheetsConfig  `envPrefix:"SHEETS_"`

	LogLevel  string `env:"LOGGER_LEVEL" envDefault:"debug"`
	LogFormat string `env:"LOGGER_FORMAT" envDefault:"json"`

	DiscordToken     string   `env:"DISCORD_TOKEN" envDefault:""`
	DiscordGuildID   string   `env:"DISCORD_GUILD_ID" envDefault:""`
	AllowedChannelID string   `env:"ALLOWED_CHANNEL_ID" envDefault:""`
	AdminUserIDs     []string `env:"ADMIN_USER_IDS" envSeparator:"," envDefault:""`

	TelegramToken    string  `env:"TELEGRAM_TOKEN" envDefault:""`
	TelegramAdminIDs []int64 `env:"TELEGRAM_ADMIN_IDS" envSeparator:"," envDefault:""`
}

// Named source locations, in merge order.
type SourceLocation struct {
	Name     string
	Location string
}

var (
	ErrUnknownPageType = errors.New("unknown page type")
	ErrUnknownSort     = errors.New("unknown sort mode")
	ErrMissingSource   = errors.New("missing source location")
)

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if _, ok := models.ParseSortMode(c.DefaultSort); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSort, c.DefaultSort)
	}
	switch models.PageType(c.PageType) {
	case models.PageSingle:
		if c.Sources.Leaderboard == "" {
			return fmt.Errorf("%w: SOURCE_LEADERBOARD_CSV is required for a single page", ErrMissingSource)
		}
	case models.PageCombined:
		if c.Sources.Standard == "" || c.Sources.Caravan == "" {
			return fmt.Errorf("%w: SOURCE_STANDARD_CSV and SOURCE_CARAVAN_CSV are required for a combined page", ErrMissingSource)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPageType, c.PageType)
	}
	return nil
}

// SourceLocations lists the configured sources for the page type.
// Seafarers is optional on a combined page.
func (c *Config) SourceLocations() []SourceLocation {
	if models.PageType(c.PageType) != models.PageCombined {
		return []SourceLocation{{Name: "leaderboard", Location: c.Sources.Leaderboard}}
	}
	locations := []SourceLocation{
		{Name: "standard", Location: c.Sources.Standard},
		{Name: "caravan", Location: c.Sources.Caravan},
	}
	if c.Sources.Seafarers != "" {
		locations = append(locations, SourceLocation{Name: "seafarers", Location: c.Sources.Seafarers})
	}
	return locations
}

func (c *Config) Sort() models.SortMode {
	mode, ok := models.ParseSortMode(c.DefaultSort)
	if !ok {
		return models.SortWins
	}
	return mode
}
