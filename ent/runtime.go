// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jmercier/collegien/ent/answerevent"
	"github.com/jmercier/collegien/ent/llmrequestevent"
	"github.com/jmercier/collegien/ent/schema"
	"github.com/jmercier/collegien/ent/studysessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[4].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescPoints is the schema descriptor for points field.
	answereventDescPoints := answereventFields[6].Descriptor()
	// answerevent.DefaultPoints holds the default value on creation for the points field.
	answerevent.DefaultPoints = answereventDescPoints.Default.(int)
	// answereventDescFeedback is the schema descriptor for feedback field.
	answereventDescFeedback := answereventFields[7].Descriptor()
	// answerevent.DefaultFeedback holds the default value on creation for the feedback field.
	answerevent.DefaultFeedback = answereventDescFeedback.Default.(string)
	// answereventDescGradedBy is the schema descriptor for graded_by field.
	answereventDescGradedBy := answereventFields[8].Descriptor()
	// answerevent.GradedByValidator is a validator for the "graded_by" field. It is called by the builders before save.
	answerevent.GradedByValidator = answereventDescGradedBy.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[9].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	studysessioneventMixin := schema.StudySessionEvent{}.Mixin()
	studysessioneventMixinFields0 := studysessioneventMixin[0].Fields()
	_ = studysessioneventMixinFields0
	studysessioneventFields := schema.StudySessionEvent{}.Fields()
	_ = studysessioneventFields
	// studysessioneventDescTimestamp is the schema descriptor for timestamp field.
	studysessioneventDescTimestamp := studysessioneventMixinFields0[1].Descriptor()
	// studysessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	studysessionevent.DefaultTimestamp = studysessioneventDescTimestamp.Default.(func() time.Time)
	// studysessioneventDescSessionID is the schema descriptor for session_id field.
	studysessioneventDescSessionID := studysessioneventFields[0].Descriptor()
	// studysessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysessionevent.SessionIDValidator = studysessioneventDescSessionID.Validators[0].(func(string) error)
	// studysessioneventDescAction is the schema descriptor for action field.
	studysessioneventDescAction := studysessioneventFields[1].Descriptor()
	// studysessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	studysessionevent.ActionValidator = studysessioneventDescAction.Validators[0].(func(string) error)
	// studysessioneventDescLevel is the schema descriptor for level field.
	studysessioneventDescLevel := studysessioneventFields[2].Descriptor()
	// studysessionevent.DefaultLevel holds the default value on creation for the level field.
	studysessionevent.DefaultLevel = studysessioneventDescLevel.Default.(string)
	// studysessioneventDescSubject is the schema descriptor for subject field.
	studysessioneventDescSubject := studysessioneventFields[3].Descriptor()
	// studysessionevent.DefaultSubject holds the default value on creation for the subject field.
	studysessionevent.DefaultSubject = studysessioneventDescSubject.Default.(string)
	// studysessioneventDescTopic is the schema descriptor for topic field.
	studysessioneventDescTopic := studysessioneventFields[4].Descriptor()
	// studysessionevent.DefaultTopic holds the default value on creation for the topic field.
	studysessionevent.DefaultTopic = studysessioneventDescTopic.Default.(string)
	// studysessioneventDescSource is the schema descriptor for source field.
	studysessioneventDescSource := studysessioneventFields[5].Descriptor()
	// studysessionevent.DefaultSource holds the default value on creation for the source field.
	studysessionevent.DefaultSource = studysessioneventDescSource.Default.(string)
	// studysessioneventDescDifficulty is the schema descriptor for difficulty field.
	studysessioneventDescDifficulty := studysessioneventFields[6].Descriptor()
	// studysessionevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	studysessionevent.DefaultDifficulty = studysessioneventDescDifficulty.Default.(string)
	// studysessioneventDescQuestionCount is the schema descriptor for question_count field.
	studysessioneventDescQuestionCount := studysessioneventFields[7].Descriptor()
	// studysessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	studysessionevent.DefaultQuestionCount = studysessioneventDescQuestionCount.Default.(int)
	// studysessioneventDescScore is the schema descriptor for score field.
	studysessioneventDescScore := studysessioneventFields[8].Descriptor()
	// studysessionevent.DefaultScore holds the default value on creation for the score field.
	studysessionevent.DefaultScore = studysessioneventDescScore.Default.(int)
	// studysessioneventDescMaxScore is the schema descriptor for max_score field.
	studysessioneventDescMaxScore := studysessioneventFields[9].Descriptor()
	// studysessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	studysessionevent.DefaultMaxScore = studysessioneventDescMaxScore.Default.(int)
	// studysessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	studysessioneventDescDurationSecs := studysessioneventFields[10].Descriptor()
	// studysessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	studysessionevent.DefaultDurationSecs = studysessioneventDescDurationSecs.Default.(int)
}
