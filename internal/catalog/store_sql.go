package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSchemeNotFound is returned by LoadSQL when the scheme has no subjects.
var ErrSchemeNotFound = errors.New("grading scheme not found")

// LoadSQL reads a scheme's subjects and bands (see internal/db for the
// schema) and returns a validated catalog.
func LoadSQL(ctx context.Context, db *sql.DB, scheme string) (*Catalog, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT code, name, mandatory FROM subjects WHERE scheme=$1 ORDER BY position, code`, scheme)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	var subjects []Subject
	index := map[string]int{}
	for rows.Next() {
		var s Subject
		var mand int
		if err := rows.Scan(&s.Code, &s.Name, &mand); err != nil {
			rows.Close()
			return nil, err
		}
		s.Mandatory = mand != 0
		index[s.Code] = len(subjects)
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSchemeNotFound, scheme)
	}

	brows, err := db.QueryContext(ctx,
		`SELECT subject_code, min_mark, max_mark, grade, points FROM grade_bands
		 WHERE scheme=$1 ORDER BY subject_code, position`, scheme)
	if err != nil {
		return nil, fmt.Errorf("load grade bands: %w", err)
	}
	defer brows.Close()
	for brows.Next() {
		var code, grade string
		var b Band
		if err := brows.Scan(&code, &b.Min, &b.Max, &grade, &b.Points); err != nil {
			return nil, err
		}
		i, ok := index[code]
		if !ok {
			return nil, fmt.Errorf("%w: band for unknown subject %s", ErrInvalidCatalog, code)
		}
		b.Grade = Grade(grade)
		subjects[i].Bands = append(subjects[i].Bands, b)
	}
	if err := brows.Err(); err != nil {
		return nil, err
	}
	return New(subjects...)
}

// SeedSQL replaces a scheme's rows with the contents of c.
func SeedSQL(ctx context.Context, db *sql.DB, scheme string, c *Catalog) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM grade_bands WHERE scheme=$1`, scheme); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM subjects WHERE scheme=$1`, scheme); err != nil {
		return err
	}
	for pos, s := range c.Subjects() {
		mand := 0
		if s.Mandatory {
			mand = 1
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO subjects (scheme, code, name, mandatory, position) VALUES ($1,$2,$3,$4,$5)`,
			scheme, s.Code, s.Name, mand, pos); err != nil {
			return fmt.Errorf("seed subject %s: %w", s.Code, err)
		}
		for i, b := range s.Bands {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO grade_bands (scheme, subject_code, position, min_mark, max_mark, grade, points)
				 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				scheme, s.Code, i, b.Min, b.Max, string(b.Grade), b.Points); err != nil {
				return fmt.Errorf("seed band %s/%s: %w", s.Code, b.Grade, err)
			}
		}
	}
	return tx.Commit()
}
