package report

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gx14ac/zart/internal/compare"
	"github.com/gx14ac/zart/internal/metrics"
)

// SkipError is returned by a renderer when a report's selector resolved to
// zero data points. Skips are warnings, never failures.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string { return "report skipped: " + e.Reason }

// Data is the resolved input handed to the renderer for one target.
type Data struct {
	Baseline  string
	Candidate string
	Entries   []compare.Entry
	Rows      []Row
	Scaling   *metrics.ScalingTable
}

// Renderer turns one resolved target into an artifact on disk. The chart
// adapter is the production implementation; tests substitute their own.
type Renderer interface {
	Render(t Target, d *Data) error
}

// Inputs carries everything one pipeline run consumes. The store is passed
// in explicitly; there is no ambient process-wide data.
type Inputs struct {
	Store     *metrics.Store
	Baseline  string
	Candidate string
	// Ops fixes the operation order. Nil means the store's insertion order.
	Ops []metrics.Op
	// Scaling sources by logical name ("basic", "realistic", "advanced").
	Scaling map[string]*metrics.ScalingTable
}

// Skip records one report that was not produced and why.
type Skip struct {
	ID     string
	Path   string
	Reason string
}

// Outcome lists what a run produced and what it did not. A run never
// silently omits a report: everything not in Written is in Skipped or Failed.
type Outcome struct {
	Written []string
	Skipped []Skip
	Failed  []Skip
}

// Run processes each target independently: comparison data is derived once,
// then every report either writes its artifact or is recorded as skipped or
// failed. A single broken report never suppresses the others. Only input
// errors (bad store data) abort the run.
func Run(in Inputs, targets []Target, r Renderer, log logrus.FieldLogger) (Outcome, error) {
	var out Outcome

	var entries []compare.Entry
	if in.Store != nil {
		ops := in.Ops
		if ops == nil {
			ops = in.Store.Ops()
		}
		var err error
		entries, err = compare.Compute(in.Store, in.Baseline, in.Candidate, ops)
		if err != nil {
			return out, fmt.Errorf("computing ratios: %w", err)
		}
	}

	for _, t := range targets {
		d, reason := resolve(in, t, entries)
		if reason != "" {
			out.Skipped = append(out.Skipped, Skip{ID: t.ID, Path: t.Path, Reason: reason})
			log.WithFields(logrus.Fields{"report": t.ID, "reason": reason}).Warn("report skipped")
			continue
		}

		err := r.Render(t, d)
		switch {
		case err == nil:
			out.Written = append(out.Written, t.Path)
			log.WithFields(logrus.Fields{"report": t.ID, "path": t.Path}).Info("artifact written")
		case isSkip(err):
			out.Skipped = append(out.Skipped, Skip{ID: t.ID, Path: t.Path, Reason: err.Error()})
			log.WithFields(logrus.Fields{"report": t.ID, "reason": err.Error()}).Warn("report skipped")
		default:
			out.Failed = append(out.Failed, Skip{ID: t.ID, Path: t.Path, Reason: err.Error()})
			log.WithFields(logrus.Fields{"report": t.ID, "error": err.Error()}).Error("report failed")
		}
	}
	return out, nil
}

// resolve builds the renderer input for one target, or a skip reason when
// the selector has nothing to draw from.
func resolve(in Inputs, t Target, entries []compare.Entry) (*Data, string) {
	d := &Data{Baseline: in.Baseline, Candidate: in.Candidate}

	switch t.Kind {
	case Line, TwinAxisLine:
		table, ok := in.Scaling[t.Source]
		if !ok || table == nil {
			return nil, fmt.Sprintf("no %s scaling source", t.Source)
		}
		if table.Len() == 0 {
			return nil, fmt.Sprintf("scaling source %s is empty", t.Source)
		}
		d.Scaling = table
		return d, ""

	case Table:
		if len(entries) == 0 {
			return nil, "no comparison data"
		}
		d.Entries = entries
		d.Rows = BuildRows(entries)
		return d, ""

	default:
		sel := selectEntries(entries, t.Ops)
		if len(sel) == 0 {
			return nil, "selector matched no measurements"
		}
		d.Entries = sel
		return d, ""
	}
}

// selectEntries picks the entries for a definition's operation subset, in
// definition order. A nil subset keeps every entry.
func selectEntries(entries []compare.Entry, ops []metrics.Op) []compare.Entry {
	if ops == nil {
		return entries
	}
	byOp := make(map[metrics.Op]compare.Entry, len(entries))
	for _, e := range entries {
		byOp[e.Op] = e
	}
	var out []compare.Entry
	for _, op := range ops {
		if e, ok := byOp[op]; ok {
			out = append(out, e)
		}
	}
	return out
}

func isSkip(err error) bool {
	var s *SkipError
	return errors.As(err, &s)
}
