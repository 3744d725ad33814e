// Package config provides configuration loading for calgrid.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/calgrid/internal/constants"
	"github.com/julianstephens/calgrid/internal/models"
	"github.com/julianstephens/calgrid/internal/utils"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the root configuration structure.
type Config struct {
	WorkingHours WorkingHoursConfig `yaml:"working_hours"`
	DefaultView  string             `yaml:"default_view"`
	DetailAction string             `yaml:"detail_action,omitempty"` // flow launched from the event detail sheet
	Calendars    []CalendarConfig   `yaml:"calendars"`
	Source       SourceConfig       `yaml:"source"`
}

// WorkingHoursConfig configures the slot rows of week, day and availability grids.
type WorkingHoursConfig struct {
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	SlotMinutes int    `yaml:"slot_minutes"`
}

// CalendarConfig configures a sub-calendar. Visible defaults to true.
type CalendarConfig struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Color   string `yaml:"color"`
	Visible *bool  `yaml:"visible,omitempty"`
}

// SourceConfig configures where events are fetched from.
type SourceConfig struct {
	Type string `yaml:"type"` // "sqlite", "postgres", "ics"
	Path string `yaml:"path,omitempty"`
	URL  string `yaml:"url,omitempty"` // postgres connection string without password
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the default location (~/.config/calgrid/config.yaml).
func Load() (*Config, error) {
	return LoadFrom(constants.DefaultConfigPath)
}

// LoadFrom reads configuration from a specific path. A missing file yields
// the defaults.
func LoadFrom(path string) (*Config, error) {
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.Source.Path = ExpandPath(cfg.Source.Path)

	return &cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for unspecified config options.
func (c *Config) applyDefaults() {
	if c.WorkingHours.Start == "" {
		c.WorkingHours.Start = constants.DefaultWorkStart
	}
	if c.WorkingHours.End == "" {
		c.WorkingHours.End = constants.DefaultWorkEnd
	}
	if c.WorkingHours.SlotMinutes == 0 {
		c.WorkingHours.SlotMinutes = constants.DefaultSlotMinutes
	}
	if c.DefaultView == "" {
		c.DefaultView = constants.DefaultView
	}
	if len(c.Calendars) == 0 {
		c.Calendars = []CalendarConfig{{
			ID:    constants.DefaultCalendarID,
			Name:  constants.DefaultCalendarName,
			Color: constants.DefaultCalendarColor,
		}}
	}
	for i := range c.Calendars {
		if c.Calendars[i].Name == "" {
			c.Calendars[i].Name = c.Calendars[i].ID
		}
		if c.Calendars[i].Color == "" {
			c.Calendars[i].Color = constants.FallbackColor
		}
	}
	if c.Source.Type == "" {
		c.Source.Type = constants.SourceSQLite
	}
	if c.Source.Type == constants.SourceSQLite && c.Source.Path == "" {
		c.Source.Path = ExpandPath(constants.DefaultStorePath)
	}
}

// Validate reports malformed values. An empty slot window is not an error;
// it produces grids without slot rows.
func (c *Config) Validate() error {
	var errs []error
	if !utils.ValidateTimeFormat(c.WorkingHours.Start) {
		errs = append(errs, fmt.Errorf("working_hours.start %q is not HH:MM", c.WorkingHours.Start))
	}
	if !utils.ValidateTimeFormat(c.WorkingHours.End) {
		errs = append(errs, fmt.Errorf("working_hours.end %q is not HH:MM", c.WorkingHours.End))
	}
	if _, err := models.ParseViewKind(c.DefaultView); err != nil {
		errs = append(errs, fmt.Errorf("default_view: %w", err))
	}

	seen := make(map[string]bool)
	for i, cal := range c.Calendars {
		if cal.ID == "" {
			errs = append(errs, fmt.Errorf("calendars[%d]: id is required", i))
		} else if seen[cal.ID] {
			errs = append(errs, fmt.Errorf("calendars[%d]: duplicate id %q", i, cal.ID))
		}
		seen[cal.ID] = true
		if !ValidColor(cal.Color) {
			errs = append(errs, fmt.Errorf("calendars[%d]: color %q is not #RRGGBB", i, cal.Color))
		}
	}

	switch c.Source.Type {
	case constants.SourceSQLite, constants.SourceICS:
		if c.Source.Path == "" {
			errs = append(errs, fmt.Errorf("source.path is required for %s", c.Source.Type))
		}
	case constants.SourcePostgres:
	default:
		errs = append(errs, fmt.Errorf("source.type %q is not sqlite, postgres or ics", c.Source.Type))
	}

	return errors.Join(errs...)
}

// ValidColor reports whether s is a #RRGGBB color.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

// Settings returns the working-hours and presentation settings.
func (c *Config) Settings() models.Settings {
	return models.Settings{
		WorkStart:    c.WorkingHours.Start,
		WorkEnd:      c.WorkingHours.End,
		SlotMinutes:  c.WorkingHours.SlotMinutes,
		DefaultView:  c.DefaultView,
		DetailAction: c.DetailAction,
	}
}

// CalendarList returns the configured calendars in order.
func (c *Config) CalendarList() []models.Calendar {
	out := make([]models.Calendar, len(c.Calendars))
	for i, cal := range c.Calendars {
		visible := true
		if cal.Visible != nil {
			visible = *cal.Visible
		}
		out[i] = models.Calendar{ID: cal.ID, Name: cal.Name, Color: cal.Color, Visible: visible}
	}
	return out
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Dir returns the directory holding the config file at path.
func Dir(path string) string {
	return filepath.Dir(ExpandPath(path))
}
