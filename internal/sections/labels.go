package sections

import "github.com/jmallet/cv-builder/internal/types"

// label is a fr/en string pair.
type label struct {
	fr string
	en string
}

// labels are the non-title strings the renderers need. The full editor
// string table lives with the UI, not here.
var labels = map[string]label{
	"present":  {fr: "Présent", en: "Present"},
	"profile":  {fr: "Profil", en: "Profile"},
	"contact":  {fr: "Contact", en: "Contact"},
	"grade":    {fr: "Mention", en: "Grade"},
	"issuedBy": {fr: "Délivré par", en: "Issued by"},
}

// Label resolves a renderer label for the given language, falling back
// to the key itself for unknown keys.
func Label(key, language string) string {
	l, ok := labels[key]
	if !ok {
		return key
	}
	if language == types.LanguageFrench {
		return l.fr
	}
	return l.en
}
