// Package sections holds the registry of CV section types: default
// ordering, default pagination flags and localized titles.
package sections

import "github.com/jmallet/cv-builder/internal/types"

// Config describes one section type as the editor and renderers see it.
type Config struct {
	Type             types.SectionType
	Name             string
	Icon             string
	DefaultStartPage bool
	Order            int
	TitleFR          string
	TitleEN          string
}

// Registry lists every known section type in default order.
var Registry = []Config{
	{Type: types.SectionPersonalInfo, Name: "Personal Information", Icon: "user", Order: 0, TitleFR: "Informations personnelles", TitleEN: "Personal Information"},
	{Type: types.SectionExperiences, Name: "Professional Experience", Icon: "briefcase", Order: 1, TitleFR: "Expérience professionnelle", TitleEN: "Professional Experience"},
	{Type: types.SectionEducation, Name: "Education", Icon: "graduation-cap", Order: 2, TitleFR: "Formation", TitleEN: "Education"},
	{Type: types.SectionSkillCategories, Name: "Technical Skills", Icon: "code", Order: 3, TitleFR: "Compétences techniques", TitleEN: "Technical Skills"},
	{Type: types.SectionSoftSkills, Name: "Soft Skills", Icon: "heart", Order: 4, TitleFR: "Soft Skills", TitleEN: "Soft Skills"},
	{Type: types.SectionLanguages, Name: "Languages", Icon: "globe", Order: 5, TitleFR: "Langues", TitleEN: "Languages"},
	{Type: types.SectionProjects, Name: "Projects", Icon: "folder-open", Order: 6, TitleFR: "Projets", TitleEN: "Projects"},
	{Type: types.SectionInterests, Name: "Interests", Icon: "star", Order: 7, TitleFR: "Centres d'intérêt", TitleEN: "Interests"},
	{Type: types.SectionCertifications, Name: "Certifications", Icon: "award", Order: 8, TitleFR: "Certifications", TitleEN: "Certifications"},
	{Type: types.SectionHiddenText, Name: "Hidden Text", Icon: "eye-off", Order: 9, TitleFR: "Texte caché", TitleEN: "Hidden Text"},
}

// DefaultOrder returns the default section render order.
func DefaultOrder() []types.SectionType {
	order := make([]types.SectionType, len(Registry))
	for i, cfg := range Registry {
		order[i] = cfg.Type
	}
	return order
}

// Lookup returns the config for a section type.
func Lookup(t types.SectionType) (Config, bool) {
	for _, cfg := range Registry {
		if cfg.Type == t {
			return cfg, true
		}
	}
	return Config{}, false
}

// Known reports whether the section type is in the registry.
func Known(t types.SectionType) bool {
	_, ok := Lookup(t)
	return ok
}

// Title resolves the localized title of a section type. An unknown type
// falls back to its raw identifier so a label is never blank.
func Title(t types.SectionType, language string) string {
	cfg, ok := Lookup(t)
	if !ok {
		return string(t)
	}
	if language == types.LanguageFrench {
		return cfg.TitleFR
	}
	return cfg.TitleEN
}

// DefaultTitle returns the English title used when creating a section.
func DefaultTitle(t types.SectionType) string {
	return Title(t, types.LanguageEnglish)
}

// DefaultStartPage returns the default section-level break flag.
func DefaultStartPage(t types.SectionType) bool {
	cfg, ok := Lookup(t)
	return ok && cfg.DefaultStartPage
}

// DefaultTheme returns the theme applied to new documents.
func DefaultTheme() types.ThemeConfig {
	return types.ThemeConfig{
		PrimaryColor:   "#1f2937",
		SecondaryColor: "#6b7280",
		AccentColor:    "#3b82f6",
		FontFamily:     "Helvetica",
		FontSize: &types.FontSizes{
			Name:   "24px",
			Title:  "16px",
			Header: "14px",
			Text:   "12px",
			Tags:   "10px",
		},
	}
}
