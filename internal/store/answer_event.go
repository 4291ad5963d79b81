package store

import (
	"context"
	"fmt"

	"github.com/jmercier/collegien/ent"
	"github.com/jmercier/collegien/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetQuestionText(data.QuestionText).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetPoints(data.Points).
		SetFeedback(data.Feedback).
		SetGradedBy(data.GradedBy).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersForSession(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers for session %s: %w", sessionID, err)
	}

	records := make([]AnswerRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AnswerRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:     e.SessionID,
				QuestionID:    e.QuestionID,
				QuestionType:  e.QuestionType,
				QuestionText:  e.QuestionText,
				LearnerAnswer: e.LearnerAnswer,
				Correct:       e.Correct,
				Points:        e.Points,
				Feedback:      e.Feedback,
				GradedBy:      e.GradedBy,
				TimeMs:        e.TimeMs,
			},
		})
	}
	return records, nil
}
