package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Collector получатель метрик БД
type Collector interface {
	ObserveDBQuery(operation string, seconds float64)
	SetDBPoolStats(db string, open, inUse, idle int, waitCount int64)
}

// DB обёртка над *sql.DB, снимающая длительность запросов.
// collector может быть nil - тогда обёртка только прокидывает вызовы.
type DB struct {
	db        *sql.DB
	collector Collector
	name      string
}

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, collector Collector, name string) *DB {
	return &DB{db: db, collector: collector, name: name}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула раз в 15 секунд
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, name)
	if collector != nil {
		go wrapped.collectPoolStats(15*time.Second, stopCh)
	}
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию, запросы внутри которой тоже учитываются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, started time.Time) {
	if d.collector == nil {
		return
	}
	d.collector.ObserveDBQuery(Operation(query), time.Since(started).Seconds())
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s := d.db.Stats()
			d.collector.SetDBPoolStats(d.name, s.OpenConnections, s.InUse, s.Idle, s.WaitCount)
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с учётом метрик.
// Запоминает конфликт сериализации: репозитории оборачивают ошибки через %v,
// и до менеджера транзакций исходный *pq.Error не доходит.
type Tx struct {
	tx       *sql.Tx
	parent   *DB
	conflict bool
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe(query, time.Now())
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.track(err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe(query, time.Now())
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.track(err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe(query, time.Now())
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.track(row.Err())
	return row
}

func (t *Tx) Commit() error {
	err := t.tx.Commit()
	t.track(err)
	return err
}

// SerializationFailed true, если какой-либо запрос транзакции упал с конфликтом сериализации
func (t *Tx) SerializationFailed() bool {
	return t.conflict
}

func (t *Tx) track(err error) {
	if err != nil && IsSerializationFailure(err) {
		t.conflict = true
	}
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// Operation извлекает тип операции (select/insert/update/delete) из текста запроса
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	switch op := strings.ToLower(fields[0]); op {
	case "select", "insert", "update", "delete":
		return op
	default:
		return "other"
	}
}
