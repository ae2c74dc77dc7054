// Package types provides type definitions for the CV document model shared across the cv-builder system.
package types

// PersonalInfo holds the identity block rendered in every template header.
type PersonalInfo struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	PhotoURL  *string `json:"photoUrl"`
}

// Experience represents one professional experience entry.
type Experience struct {
	ID           string   `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Education represents one degree or training entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// SkillCategory groups related technical skills under a named category.
type SkillCategory struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// LanguageLevel is a CEFR proficiency level, plus "Native".
type LanguageLevel string

// CEFR proficiency levels.
const (
	LevelA1     LanguageLevel = "A1"
	LevelA2     LanguageLevel = "A2"
	LevelB1     LanguageLevel = "B1"
	LevelB2     LanguageLevel = "B2"
	LevelC1     LanguageLevel = "C1"
	LevelC2     LanguageLevel = "C2"
	LevelNative LanguageLevel = "Native"
)

// Rank maps a proficiency level onto a 1-7 ordinal scale.
// Unknown levels rank 0 so indicators degrade to empty rather than guessing.
func (l LanguageLevel) Rank() int {
	switch l {
	case LevelA1:
		return 1
	case LevelA2:
		return 2
	case LevelB1:
		return 3
	case LevelB2:
		return 4
	case LevelC1:
		return 5
	case LevelC2:
		return 6
	case LevelNative:
		return 7
	default:
		return 0
	}
}

// Language represents one spoken language entry.
type Language struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// Project represents one personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Certification represents one certification entry.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url,omitempty"`
}

// Interest represents one interest or extracurricular entry.
type Interest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// FontSizes holds the per-role font sizes of a theme, in CSS units.
type FontSizes struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Header string `json:"header"`
	Text   string `json:"text"`
	Tags   string `json:"tags"`
}

// ThemeConfig holds the cosmetic settings applied by templates.
// Pagination never reads the theme.
type ThemeConfig struct {
	PrimaryColor   string     `json:"primaryColor"`
	SecondaryColor string     `json:"secondaryColor"`
	AccentColor    string     `json:"accentColor"`
	FontFamily     string     `json:"fontFamily"`
	FontSize       *FontSizes `json:"fontSize,omitempty"`
}
