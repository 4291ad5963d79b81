// Package revision orchestrates a study session: the phase machine from
// home screen to quiz result, the current selection, the loaded sheet with
// its copy variants, and the running quiz. Generation runs asynchronously;
// every load is tagged with an epoch so a stale result arriving after the
// student moved on is discarded instead of clobbering newer state.
package revision

// Phase is the current step of the study flow.
type Phase string

const (
	PhaseHome         Phase = "home"
	PhaseSelection    Phase = "selection"
	PhaseLoadingSheet Phase = "loading-sheet"
	PhaseSheet        Phase = "sheet"
	PhaseQuizSetup    Phase = "quiz-setup"
	PhaseLoadingQuiz  Phase = "loading-quiz"
	PhaseQuiz         Phase = "quiz"
	PhaseResult       Phase = "result"
)
