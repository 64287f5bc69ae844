package entity

import (
	"fmt"
	"regexp"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Settings struct {
	SoundEnabled bool   `json:"soundEnabled"`
	MusicEnabled bool   `json:"musicEnabled"`
	AITier       Tier   `json:"aiDifficulty"`
	DarkMode     bool   `json:"darkMode"`
	XColor       string `json:"xColor"`
	OColor       string `json:"oColor"`
	GridColor    string `json:"gridColor"`
}

func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		MusicEnabled: true,
		AITier:       DefaultTier,
		DarkMode:     true,
		XColor:       "#3498db",
		OColor:       "#e74c3c",
		GridColor:    "#95a5a6",
	}
}

// SettingsPatch carries the fields of a partial settings update. Nil fields keep their current value.
type SettingsPatch struct {
	SoundEnabled *bool   `json:"soundEnabled"`
	MusicEnabled *bool   `json:"musicEnabled"`
	AITier       *Tier   `json:"aiDifficulty"`
	DarkMode     *bool   `json:"darkMode"`
	XColor       *string `json:"xColor"`
	OColor       *string `json:"oColor"`
	GridColor    *string `json:"gridColor"`
}

// Apply - returns settings with the non-nil fields of the patch written over them.
func (that SettingsPatch) Apply(settings Settings) Settings {
	if that.SoundEnabled != nil {
		settings.SoundEnabled = *that.SoundEnabled
	}
	if that.MusicEnabled != nil {
		settings.MusicEnabled = *that.MusicEnabled
	}
	if that.AITier != nil {
		settings.AITier = *that.AITier
	}
	if that.DarkMode != nil {
		settings.DarkMode = *that.DarkMode
	}
	if that.XColor != nil {
		settings.XColor = *that.XColor
	}
	if that.OColor != nil {
		settings.OColor = *that.OColor
	}
	if that.GridColor != nil {
		settings.GridColor = *that.GridColor
	}

	return settings
}

func (that Settings) Validate() error {
	if _, err := ParseTier(string(that.AITier)); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidSettings, err)
	}

	colors := []struct {
		name  string
		value string
	}{
		{"xColor", that.XColor},
		{"oColor", that.OColor},
		{"gridColor", that.GridColor},
	}

	for _, color := range colors {
		if !hexColor.MatchString(color.value) {
			return fmt.Errorf("%w: %s %q is not a #rrggbb color", apperror.ErrInvalidSettings, color.name, color.value)
		}
	}

	return nil
}
