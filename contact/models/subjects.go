package models

// DefaultSubjectLabel is used when the form sends no subject code.
const DefaultSubjectLabel = "Kontakt"

// Subject codes offered by the website form.
const (
	SubjectPurchase     = "kupno"
	SubjectConstruction = "budowa"
	SubjectRenovation   = "remont"
	SubjectOther        = "inne"
)

var subjectLabels = map[string]string{
	SubjectPurchase:     "Chcę kupić dom",
	SubjectConstruction: "Zlecenie budowy domu",
	SubjectRenovation:   "Remont / Wykończenie",
	SubjectOther:        "Inne zapytanie",
}

// SubjectLabel maps a subject code to its display label. Unknown codes are
// returned as is, an empty code yields DefaultSubjectLabel.
func SubjectLabel(code string) string {
	if label, ok := subjectLabels[code]; ok {
		return label
	}
	if code != "" {
		return code
	}
	return DefaultSubjectLabel
}

// SubjectLabels returns a copy of the code to label table.
func SubjectLabels() map[string]string {
	out := make(map[string]string, len(subjectLabels))
	for code, label := range subjectLabels {
		out[code] = label
	}
	return out
}
