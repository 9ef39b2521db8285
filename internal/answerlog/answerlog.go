// Package answerlog keeps every answer the runner produces in a SQLite
// database so that a changed answer after a refactor is noticed.
package answerlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/aocgo/aoc2025"
)

const schema = `
	create table if not exists answer
	(
		run        varchar(40)  not null,
		year       integer      not null,
		day        integer      not null,
		part       varchar(20)  not null,
		sample     integer      not null,
		value      text         not null,
		elapsed_ns integer      not null,
		at_ns      integer      not null
	);
	create index if not exists answer_part_index
		on answer (year, day, part, sample, at_ns);
`

// Store is an answer history backed by SQLite.
type Store struct {
	db     *sql.DB
	insert *sql.Stmt
}

// Open opens or creates the history at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	insert, err := db.Prepare(`
		insert into answer (run, year, day, part, sample, value, elapsed_ns, at_ns)
		values (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, insert: insert}, nil
}

// Record appends a.
func (s *Store) Record(ctx context.Context, a aoc.Answer) error {
	if a.At.IsZero() {
		a.At = time.Now()
	}
	_, err := s.insert.ExecContext(ctx,
		a.Run, a.Year, a.Day, a.Part, a.Sample, a.Value,
		a.Elapsed.Nanoseconds(), a.At.UnixNano())
	return err
}

const selectCols = `run, year, day, part, sample, value, elapsed_ns, at_ns`

type scanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row scanner) (aoc.Answer, error) {
	var (
		a       aoc.Answer
		elapsed int64
		at      int64
	)
	if err := row.Scan(&a.Run, &a.Year, &a.Day, &a.Part, &a.Sample, &a.Value, &elapsed, &at); err != nil {
		return aoc.Answer{}, err
	}
	a.Elapsed = time.Duration(elapsed)
	a.At = time.Unix(0, at)
	return a, nil
}

// Last returns the most recent real-input answer for the part.
func (s *Store) Last(ctx context.Context, year, day int, part string) (aoc.Answer, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		select `+selectCols+` from answer
		where year = ? and day = ? and part = ? and sample = 0
		order by at_ns desc, rowid desc
		limit 1`, year, day, part)
	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return aoc.Answer{}, false, nil
	}
	if err != nil {
		return aoc.Answer{}, false, err
	}
	return a, true, nil
}

// List returns the real-input answers for year, oldest first. If day is
// non-zero only that day's answers are returned.
func (s *Store) List(ctx context.Context, year, day int) ([]aoc.Answer, error) {
	rows, err := s.db.QueryContext(ctx, `
		select `+selectCols+` from answer
		where year = ? and (? = 0 or day = ?) and sample = 0
		order by day, part, at_ns, rowid`, year, day, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []aoc.Answer
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Close releases the database.
func (s *Store) Close() error {
	s.insert.Close()
	return s.db.Close()
}
