package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"goldboard/internal/model"
)

// SQLiteRecorder keeps the full quotation history in a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc readers don't block the crawler's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			date         TEXT NOT NULL,
			product_code TEXT NOT NULL,
			product_name TEXT,
			buy_price    TEXT,
			sell_price   TEXT,
			fetched_at   INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_date ON quotes(date)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_code ON quotes(product_code)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// Record inserts the batch in a single transaction.
func (r *SQLiteRecorder) Record(records []model.PriceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	now := time.Now().Unix()
	for _, rec := range records {
		if _, err := tx.Exec(`INSERT INTO quotes
			(date, product_code, product_name, buy_price, sell_price, fetched_at)
			VALUES (?,?,?,?,?,?)`,
			rec.Date.String(), rec.ProductCode, rec.ProductName,
			rec.BuyPrice.String(), rec.SellPrice.String(), now,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert quote %s: %w", rec.ProductCode, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
