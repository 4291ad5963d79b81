package store

import (
	"context"
	"fmt"

	"github.com/jmercier/collegien/ent"
	"github.com/jmercier/collegien/ent/studysessionevent"
)

func (r *eventRepo) AppendStudySession(ctx context.Context, data StudySessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.StudySessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetLevel(data.Level).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetSource(data.Source).
		SetDifficulty(data.Difficulty).
		SetQuestionCount(data.QuestionCount).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save study session event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListStudySessions(ctx context.Context, opts QueryOpts) ([]StudySessionRecord, error) {
	query := r.client.StudySessionEvent.Query().
		Order(ent.Desc(studysessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(studysessionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(studysessionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(studysessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(studysessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query study sessions: %w", err)
	}

	records := make([]StudySessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, StudySessionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			StudySessionEventData: StudySessionEventData{
				SessionID:     e.SessionID,
				Action:        e.Action,
				Level:         e.Level,
				Subject:       e.Subject,
				Topic:         e.Topic,
				Source:        e.Source,
				Difficulty:    e.Difficulty,
				QuestionCount: e.QuestionCount,
				Score:         e.Score,
				MaxScore:      e.MaxScore,
				DurationSecs:  e.DurationSecs,
			},
		})
	}
	return records, nil
}
