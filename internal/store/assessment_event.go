package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/ksa/ent"
	"github.com/abhisek/ksa/ent/assessmentevent"
	"github.com/abhisek/ksa/internal/phase"
)

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetSessionID(data.SessionID).
		SetUserName(data.UserName).
		SetSector(data.Sector).
		SetPhase(data.Phase).
		SetNextPhase(data.NextPhase).
		SetScore(data.Score).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		SetPointsAwarded(data.PointsAwarded).
		SetBadge(data.Badge).
		SetRemediationFallback(data.RemediationFallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

// QueryAssessmentEvents returns events newest first.
func (r *eventRepo) QueryAssessmentEvents(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error) {
	query := r.client.AssessmentEvent.Query().
		Order(ent.Desc(assessmentevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(assessmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(assessmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(assessmentevent.TimestampLTE(opts.To))
	}
	if opts.Sector != "" {
		query = query.Where(assessmentevent.Sector(opts.Sector))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}

	records := make([]AssessmentEventRecord, len(events))
	for i, e := range events {
		records[i] = AssessmentEventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AssessmentEventData: AssessmentEventData{
				AssessmentID:        e.AssessmentID,
				SessionID:           e.SessionID,
				UserName:            e.UserName,
				Sector:              e.Sector,
				Phase:               e.Phase,
				NextPhase:           e.NextPhase,
				Score:               e.Score,
				Correct:             e.Correct,
				Total:               e.Total,
				Passed:              e.Passed,
				PointsAwarded:       e.PointsAwarded,
				Badge:               e.Badge,
				RemediationFallback: e.RemediationFallback,
			},
		}
	}
	return records, nil
}

func (r *eventRepo) AssessmentStatsBySector(ctx context.Context) ([]SectorStats, error) {
	events, err := r.client.AssessmentEvent.Query().
		Order(ent.Asc(assessmentevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment stats: %w", err)
	}

	bySector := make(map[string]*SectorStats)
	scoreSum := make(map[string]int)
	for _, e := range events {
		st, ok := bySector[e.Sector]
		if !ok {
			st = &SectorStats{Sector: e.Sector}
			bySector[e.Sector] = st
		}
		st.Attempts++
		if e.Passed {
			st.Passes++
		}
		if e.Score > st.BestScore {
			st.BestScore = e.Score
		}
		if phase.Index(phase.Phase(e.NextPhase)) > phase.Index(phase.Phase(st.HighestPhase)) {
			st.HighestPhase = e.NextPhase
		}
		scoreSum[e.Sector] += e.Score
	}

	out := make([]SectorStats, 0, len(bySector))
	for sector, st := range bySector {
		st.AvgScore = float64(scoreSum[sector]) / float64(st.Attempts)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sector < out[j].Sector })
	return out, nil
}
