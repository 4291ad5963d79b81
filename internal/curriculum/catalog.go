// Package curriculum holds the collège syllabus: the four school levels,
// their subjects, and the chapters each subject covers. The data mirrors the
// French programmes officiels and drives topic selection in the UI.
package curriculum

// Level is a French collège grade, from 6ème (first year) to 3ème (last).
type Level string

const (
	Sixieme   Level = "6ème"
	Cinquieme Level = "5ème"
	Quatrieme Level = "4ème"
	Troisieme Level = "3ème"
)

// Levels returns the grades in school order, youngest first.
func Levels() []Level {
	return []Level{Sixieme, Cinquieme, Quatrieme, Troisieme}
}

// Subject is a school subject with its chapter list for one level.
type Subject struct {
	Name   string
	Topics []string
}

// Exam-style subjects available only in 3ème. They generate a full mock
// paper instead of a chapter quiz.
const (
	SubjectBrevetBlanc   = "Brevet Blanc"
	SubjectAnnalesBrevet = "Annales Brevet"
)

// Session source labels recorded with study events.
const (
	SourceTopicQuiz   = "topic-quiz"
	SourceBrevetBlanc = "brevet-blanc"
	SourceAnnales     = "annales"
)

var subjectIcons = map[string]string{
	"Mathématiques":       "📐",
	"Français":            "📚",
	"Histoire-Géographie": "🌍",
	"SVT":                 "🧬",
	"Physique-Chimie":     "🧪",
	"Technologie":         "🔧",
	"Anglais":             "🇬🇧",
	"Espagnol":            "🇪🇸",
	"Allemand":            "🇩🇪",
	"Italien":             "🇮🇹",
	"EMC":                 "🤝",
	"Arts Plastiques":     "🎨",
	"Éducation Musicale":  "🎵",
	SubjectBrevetBlanc:    "📜",
	SubjectAnnalesBrevet:  "🏛️",
}

// Icon returns the emoji shown next to a subject name, or empty if unknown.
func Icon(subject string) string {
	return subjectIcons[subject]
}

// SubjectsForLevel returns the subjects taught at the given level, in menu
// order. Unknown levels return nil.
func SubjectsForLevel(level Level) []Subject {
	for _, c := range catalog {
		if c.level == level {
			return c.subjects
		}
	}
	return nil
}

// FindSubject looks up one subject at a level by name.
func FindSubject(level Level, name string) (Subject, bool) {
	for _, s := range SubjectsForLevel(level) {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// IsMockExam reports whether the subject generates a complete Brevet Blanc
// paper. Mock exams skip the topic step and always run 20 questions.
func IsMockExam(subject string) bool {
	return subject == SubjectBrevetBlanc
}

// IsPastPaper reports whether the subject reproduces a published Brevet
// session (annales). The selected topic names the session to reproduce.
func IsPastPaper(subject string) bool {
	return subject == SubjectAnnalesBrevet
}

// SessionSource maps a subject to the source label recorded on study events.
func SessionSource(subject string) string {
	switch {
	case IsMockExam(subject):
		return SourceBrevetBlanc
	case IsPastPaper(subject):
		return SourceAnnales
	default:
		return SourceTopicQuiz
	}
}

type levelCatalog struct {
	level    Level
	subjects []Subject
}
