// Package database stores indexed CPU names and their keywords in SQLite.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps the whole index in process memory
const MemoryDSN = ":memory:"

var ErrNotFound = errors.New("not found")

const schema = `
CREATE TABLE IF NOT EXISTS cpus (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL UNIQUE,
	brand       TEXT NOT NULL DEFAULT '',
	series      TEXT NOT NULL DEFAULT '',
	model       TEXT NOT NULL DEFAULT '',
	suffix      TEXT NOT NULL DEFAULT '',
	generation  TEXT NOT NULL DEFAULT '',
	indexed_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS keywords (
	cpu_id    INTEGER NOT NULL REFERENCES cpus(id) ON DELETE CASCADE,
	keyword   TEXT NOT NULL,
	position  INTEGER NOT NULL,
	PRIMARY KEY (cpu_id, keyword)
);

CREATE INDEX IF NOT EXISTS idx_keywords_keyword ON keywords(keyword);
`

// DB wraps the SQLite handle
type DB struct {
	conn *sql.DB
}

// CPU is one indexed CPU name
type CPU struct {
	ID         int64
	Name       string
	Brand      string
	Series     string
	Model      string
	Suffix     string
	Generation string
	IndexedAt  time.Time
}

// SearchHit is a CPU matched by a keyword search
type SearchHit struct {
	CPU
	Exact   bool
	Matches int
}

// Open opens the database at dsn and applies the schema. An empty dsn uses MemoryDSN.
func Open(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// every new connection to :memory: would see an empty database
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

// UpsertCPU inserts or replaces a CPU and its keywords, returning its id
func (db *DB) UpsertCPU(ctx context.Context, cpu CPU, keywords []string) (int64, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if cpu.IndexedAt.IsZero() {
		cpu.IndexedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO cpus (name, brand, series, model, suffix, generation, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			brand = excluded.brand,
			series = excluded.series,
			model = excluded.model,
			suffix = excluded.suffix,
			generation = excluded.generation,
			indexed_at = excluded.indexed_at`,
		cpu.Name, cpu.Brand, cpu.Series, cpu.Model, cpu.Suffix, cpu.Generation, cpu.IndexedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert cpu %s: %w", cpu.Name, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT id FROM cpus WHERE name = ?", cpu.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to load cpu id for %s: %w", cpu.Name, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM keywords WHERE cpu_id = ?", id); err != nil {
		return 0, fmt.Errorf("failed to clear keywords for %s: %w", cpu.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO keywords (cpu_id, keyword, position) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare keyword insert: %w", err)
	}
	defer stmt.Close()

	for i, kw := range keywords {
		if _, err := stmt.ExecContext(ctx, id, kw, i); err != nil {
			return 0, fmt.Errorf("failed to insert keyword %q: %w", kw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cpu %s: %w", cpu.Name, err)
	}
	return id, nil
}

const cpuColumns = "c.id, c.name, c.brand, c.series, c.model, c.suffix, c.generation, c.indexed_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCPU(row rowScanner, extra ...any) (CPU, error) {
	var cpu CPU
	dest := []any{&cpu.ID, &cpu.Name, &cpu.Brand, &cpu.Series, &cpu.Model, &cpu.Suffix, &cpu.Generation, &cpu.IndexedAt}
	err := row.Scan(append(dest, extra...)...)
	return cpu, err
}

// GetCPU returns the CPU indexed under name
func (db *DB) GetCPU(ctx context.Context, name string) (*CPU, error) {
	row := db.conn.QueryRowContext(ctx, "SELECT "+cpuColumns+" FROM cpus c WHERE c.name = ?", name)
	cpu, err := scanCPU(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("cpu %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cpu %s: %w", name, err)
	}
	return &cpu, nil
}

// ListCPUs returns every indexed CPU ordered by name
func (db *DB) ListCPUs(ctx context.Context) ([]CPU, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT "+cpuColumns+" FROM cpus c ORDER BY c.name")
	if err != nil {
		return nil, fmt.Errorf("failed to list cpus: %w", err)
	}
	defer rows.Close()

	var cpus []CPU
	for rows.Next() {
		cpu, err := scanCPU(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cpu: %w", err)
		}
		cpus = append(cpus, cpu)
	}
	return cpus, rows.Err()
}

// GetKeywords returns the keywords of a CPU in generation order
func (db *DB) GetKeywords(ctx context.Context, cpuID int64) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT keyword FROM keywords WHERE cpu_id = ? ORDER BY position", cpuID)
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, fmt.Errorf("failed to scan keyword: %w", err)
		}
		out = append(out, kw)
	}
	return out, rows.Err()
}

// SearchCPUs finds CPUs having a keyword equal to, or containing, any of the
// variants. Exact matches rank first, then CPUs with more matching keywords.
func (db *DB) SearchCPUs(ctx context.Context, variants []string, limit int) ([]SearchHit, error) {
	if len(variants) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(variants)), ",")
	likes := make([]string, len(variants))
	var exactArgs, likeArgs []any
	for i, v := range variants {
		exactArgs = append(exactArgs, v)
		likes[i] = `k.keyword LIKE ? ESCAPE '\'`
		likeArgs = append(likeArgs, "%"+escapeLike(v)+"%")
	}

	query := fmt.Sprintf(`
		SELECT %s,
			MAX(CASE WHEN k.keyword IN (%s) THEN 1 ELSE 0 END) AS exact,
			COUNT(*) AS matches
		FROM keywords k
		JOIN cpus c ON c.id = k.cpu_id
		WHERE %s
		GROUP BY c.id
		ORDER BY exact DESC, matches DESC, c.name ASC
		LIMIT ?`, cpuColumns, placeholders, strings.Join(likes, " OR "))

	args := append(append(exactArgs, likeArgs...), limit)
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search cpus: %w", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var exact int
		var hit SearchHit
		cpu, err := scanCPU(rows, &exact, &hit.Matches)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		hit.CPU = cpu
		hit.Exact = exact == 1
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
