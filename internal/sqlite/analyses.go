// File path: internal/sqlite/analyses.go
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jafrlab/jafr/internal/jafr"
	"github.com/jafrlab/jafr/internal/narrative"
)

// ErrNotFound marks a lookup for an analysis id that does not exist.
var ErrNotFound = errors.New("analysis not found")

// historyLimit bounds unscoped history listings to the most recent records.
const historyLimit = 50

// Analysis is one persisted jafr analysis. Records are written once and
// never mutated afterwards.
type Analysis struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Mother      string              `json:"mother"`
	Question    string              `json:"question"`
	Traditional jafr.Traditional    `json:"traditionalResults"`
	AIAnalysis  *narrative.Analysis `json:"aiAnalysis,omitempty"`
	Combined    string              `json:"combinedInterpretation,omitempty"`
	AIEnabled   bool                `json:"aiEnabled"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type analysisRow struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Mother      string         `db:"mother"`
	Question    string         `db:"question"`
	Traditional string         `db:"traditional"`
	AIAnalysis  sql.NullString `db:"ai_analysis"`
	Combined    sql.NullString `db:"combined"`
	AIEnabled   bool           `db:"ai_enabled"`
	CreatedAt   string         `db:"created_at"`
}

// SaveAnalysis inserts a completed analysis and returns its generated id.
// The creation timestamp is server-assigned.
func (s *Store) SaveAnalysis(ctx context.Context, analysis Analysis) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("sqlite store not initialised")
	}
	traditional, err := json.Marshal(analysis.Traditional)
	if err != nil {
		return 0, fmt.Errorf("marshal traditional results: %w", err)
	}
	var aiAnalysis sql.NullString
	if analysis.AIAnalysis != nil {
		encoded, err := json.Marshal(analysis.AIAnalysis)
		if err != nil {
			return 0, fmt.Errorf("marshal ai analysis: %w", err)
		}
		aiAnalysis = sql.NullString{String: string(encoded), Valid: true}
	}
	var combined sql.NullString
	if analysis.Combined != "" {
		combined = sql.NullString{String: analysis.Combined, Valid: true}
	}
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (name, mother, question, traditional, ai_analysis, combined, ai_enabled, created_at)
                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		analysis.Name, analysis.Mother, analysis.Question,
		string(traditional), aiAnalysis, combined, analysis.AIEnabled, createdAt)
	if err != nil {
		return 0, fmt.Errorf("insert analysis: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("analysis id: %w", err)
	}
	return id, nil
}

// ListAnalyses returns the most recent records, newest first.
func (s *Store) ListAnalyses(ctx context.Context) ([]Analysis, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	rows := []analysisRow{}
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM analyses ORDER BY created_at DESC, id DESC LIMIT ?`, historyLimit); err != nil {
		return nil, fmt.Errorf("select analyses: %w", err)
	}
	analyses := make([]Analysis, 0, len(rows))
	for _, row := range rows {
		analysis, err := row.toAnalysis()
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}

// AnalysisByID retrieves a single record; ErrNotFound when the id is absent.
func (s *Store) AnalysisByID(ctx context.Context, id int64) (*Analysis, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("sqlite store not initialised")
	}
	var row analysisRow
	if err := s.db.GetContext(ctx, &row, `SELECT * FROM analyses WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select analysis %d: %w", id, err)
	}
	analysis, err := row.toAnalysis()
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r analysisRow) toAnalysis() (Analysis, error) {
	analysis := Analysis{
		ID:        r.ID,
		Name:      r.Name,
		Mother:    r.Mother,
		Question:  r.Question,
		AIEnabled: r.AIEnabled,
		Combined:  r.Combined.String,
	}
	if err := json.Unmarshal([]byte(r.Traditional), &analysis.Traditional); err != nil {
		return Analysis{}, fmt.Errorf("decode traditional results for %d: %w", r.ID, err)
	}
	if r.AIAnalysis.Valid && r.AIAnalysis.String != "" {
		decoded := narrative.Analysis{}
		if err := json.Unmarshal([]byte(r.AIAnalysis.String), &decoded); err != nil {
			return Analysis{}, fmt.Errorf("decode ai analysis for %d: %w", r.ID, err)
		}
		analysis.AIAnalysis = &decoded
	}
	if parsed, err := time.Parse(time.RFC3339Nano, r.CreatedAt); err == nil {
		analysis.CreatedAt = parsed
	}
	return analysis, nil
}
