// Package feedback collects the user's verdicts on shown suggestions and
// handles the feedback report artifact.
package feedback

import (
	"encoding/csv"
	"os"
	"time"

	"go.uber.org/zap"
)

// Verdict is the user's judgment of a shown phrase.
type Verdict string

const (
	Good Verdict = "good"
	Bad  Verdict = "bad"
)

// Record is one judgment, with the sentence text in effect when it was made.
type Record struct {
	Time    time.Time
	Phrase  string
	Verdict Verdict
	Context string
}

// Recorder keeps the append-only in-memory log of feedback records for the
// process lifetime. When an artifact path is configured, every record is
// also appended to that CSV file so the exported report stays in step with
// the live log. Records are never mutated, removed, or reordered.
type Recorder struct {
	records      []Record
	artifactPath string
	log          *zap.Logger
	now          func() time.Time
}

// NewRecorder creates a recorder. artifactPath may be empty to keep the log
// memory-only.
func NewRecorder(artifactPath string, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{artifactPath: artifactPath, log: log, now: time.Now}
}

// Record appends a judgment to the log. The in-memory append cannot fail; a
// failure writing the CSV artifact is logged and does not lose the record.
func (r *Recorder) Record(phrase string, verdict Verdict, context string) {
	rec := Record{Time: r.now(), Phrase: phrase, Verdict: verdict, Context: context}
	r.records = append(r.records, rec)
	r.log.Info("feedback recorded",
		zap.String("verdict", string(verdict)),
		zap.String("phrase", phrase))
	if r.artifactPath == "" {
		return
	}
	if err := appendArtifact(r.artifactPath, rec); err != nil {
		r.log.Warn("writing feedback artifact failed",
			zap.String("path", r.artifactPath),
			zap.Error(err))
	}
}

// Records returns a copy of the log in record order.
func (r *Recorder) Records() []Record {
	return append([]Record(nil), r.records...)
}

func (r *Recorder) Len() int {
	return len(r.records)
}

var artifactHeader = []string{"timestamp", "phrase", "verdict", "context"}

func appendArtifact(path string, rec Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(artifactHeader); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		rec.Time.Format(time.RFC3339),
		rec.Phrase,
		string(rec.Verdict),
		rec.Context,
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
