package curriculum

import "strings"

// CustomTopicTrigger is the sentinel topic entry that, when selected, asks
// the student to type their own topic (a specific book or work) instead of
// picking a chapter from the syllabus.
const CustomTopicTrigger = "Autre œuvre / Livre spécifique (Saisir le titre)"

// TopicChoice is either a syllabus chapter or a student-typed topic. The
// zero value means no topic has been chosen yet.
type TopicChoice struct {
	topic  string
	custom bool
}

// CatalogTopic wraps a chapter picked from the syllabus.
func CatalogTopic(topic string) TopicChoice {
	return TopicChoice{topic: topic}
}

// CustomTopic wraps a topic the student typed themselves. Whitespace is
// trimmed; an all-whitespace input yields the zero TopicChoice.
func CustomTopic(input string) TopicChoice {
	t := strings.TrimSpace(input)
	if t == "" {
		return TopicChoice{}
	}
	return TopicChoice{topic: t, custom: true}
}

// IsCustom reports whether the topic was typed by the student.
func (c TopicChoice) IsCustom() bool {
	return c.custom
}

// IsZero reports whether no topic has been chosen.
func (c TopicChoice) IsZero() bool {
	return c.topic == ""
}

// Value returns the topic text sent to the generator.
func (c TopicChoice) Value() string {
	return c.topic
}

// NeedsCustomInput reports whether the selected syllabus entry is the
// custom-topic sentinel, meaning the UI must collect free text before a
// TopicChoice can be formed.
func NeedsCustomInput(selected string) bool {
	return selected == CustomTopicTrigger
}
