package history

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps plays in a shared Postgres database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const postgresSchema = `
create table if not exists plays (
	id uuid primary key,
	sum text not null,
	bpm double precision,
	hispeed double precision,
	summary jsonb not null,
	inputs jsonb not null,
	played_at timestamptz not null
);
create index if not exists plays_sum on plays (sum);
`

func OpenPostgres(ctx context.Context, url string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if nil != err {
		return nil, fmt.Errorf("unable to create pool: %w", err)
	}
	if err := pool.Ping(ctx); nil != err {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); nil != err {
		pool.Close()
		return nil, fmt.Errorf("unable to create plays table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, r *Record) error {
	summary, inputs, err := encodeRecord(r)
	if nil != err {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`insert into plays (id, sum, bpm, hispeed, summary, inputs, played_at)
		 values ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID.String(), r.Sum, r.BPM, r.Hispeed, string(summary), string(inputs), r.PlayedAt,
	)
	if nil != err {
		return fmt.Errorf("unable to save play: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, sum string) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`select id::text, sum, bpm, hispeed, summary::text, inputs::text, played_at
		 from plays where sum = $1 order by played_at`,
		sum,
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load plays: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		var id, summary, inputs string
		if err := rows.Scan(&id, &r.Sum, &r.BPM, &r.Hispeed, &summary, &inputs, &r.PlayedAt); nil != err {
			return nil, fmt.Errorf("unable to scan play: %w", err)
		}
		if r.ID, err = uuid.Parse(id); nil != err {
			log.Println("skipping play with invalid id", id, err)
			continue
		}
		if err := decodeRecord(&r, []byte(summary), []byte(inputs)); nil != err {
			log.Println("skipping play", r.ID, err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
