package dashboard

import (
	"go.uber.org/zap"
	"aquaview.xyz/water-quality-dashboard/pkg/common"
	"aquaview.xyz/water-quality-dashboard/pkg/models"
)

// themePreferenceID pins the single persisted preference row.
const themePreferenceID uint = 1

func themeLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameDashboardCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTheme),
	)
}

func (d *Dashboard) defaultTheme() models.Theme {
	if d.DefaultTheme == models.ThemeDark {
		return models.ThemeDark
	}
	return models.ThemeLight
}

func (d *Dashboard) currentTheme() models.Theme {
	var pref models.ThemePreference
	if err := d.Store.Conn.First(&pref, themePreferenceID).Error; err != nil {
		return d.defaultTheme()
	}
	if pref.Theme != models.ThemeLight && pref.Theme != models.ThemeDark {
		// stored garbage falls back to the default
		return d.defaultTheme()
	}
	return pref.Theme
}

func (d *Dashboard) setTheme(theme models.Theme) error {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		theme = d.defaultTheme()
	}

	pref := models.ThemePreference{ID: themePreferenceID, Theme: theme}
	err := d.Store.Conn.Save(&pref).Error
	if err == nil {
		themeLogger().Info("Theme set", zap.String("theme", string(theme)))
	}
	return err
}

func (d *Dashboard) toggleTheme() (models.Theme, error) {
	next := models.ThemeDark
	if d.currentTheme() == models.ThemeDark {
		next = models.ThemeLight
	}
	return next, d.setTheme(next)
}

type IThemeImpl struct {
	dashboard *Dashboard
}

func (it *IThemeImpl) Current() models.Theme {
	return it.dashboard.currentTheme()
}

func (it *IThemeImpl) Set(theme models.Theme) error {
	return it.dashboard.setTheme(theme)
}

func (it *IThemeImpl) Toggle() (models.Theme, error) {
	return it.dashboard.toggleTheme()
}

func (d *Dashboard) GetITheme() ITheme {
	return &IThemeImpl{dashboard: d}
}
