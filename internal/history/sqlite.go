package history

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
create table if not exists plays
  (
	  id text not null primary key,
	  sum text not null,
	  bpm real,
	  hispeed real,
	  summary blob,
	  inputs blob,
	  played_at integer
  );
create index if not exists plays_sum on plays (sum);
`

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, fmt.Errorf("unable to open %v: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create plays table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, r *Record) error {
	summary, inputs, err := encodeRecord(r)
	if nil != err {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"insert into plays(id, sum, bpm, hispeed, summary, inputs, played_at) values(?, ?, ?, ?, ?, ?, ?)",
		r.ID.String(), r.Sum, r.BPM, r.Hispeed, summary, inputs, r.PlayedAt.UnixNano(),
	)
	if nil != err {
		return fmt.Errorf("unable to save play: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, sum string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"select id, sum, bpm, hispeed, summary, inputs, played_at from plays where sum = ? order by played_at",
		sum,
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load plays: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var id string
		var summary, inputs []byte
		var playedAt int64
		var r Record
		if err := rows.Scan(&id, &r.Sum, &r.BPM, &r.Hispeed, &summary, &inputs, &playedAt); nil != err {
			return nil, fmt.Errorf("unable to scan play: %w", err)
		}
		if r.ID, err = uuid.Parse(id); nil != err {
			log.Println("skipping play with invalid id", id, err)
			continue
		}
		if err := decodeRecord(&r, summary, inputs); nil != err {
			log.Println("skipping play", id, err)
			continue
		}
		r.PlayedAt = time.Unix(0, playedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
