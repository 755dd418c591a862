package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/20Magus03/back-express/internal/store"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// mysqlDupEntry is ER_DUP_ENTRY.
const mysqlDupEntry = 1062

// DB is the MySQL-backed room store.
type DB struct {
	*sqlx.DB
}

var _ store.RoomStore = (*DB)(nil)

// Open connects to MySQL, retrying the initial ping with exponential backoff
// until connectTimeout elapses, then ensures the schema exists.
func Open(ctx context.Context, dsn string, connectTimeout time.Duration, log *zap.Logger) (*DB, error) {
	xdb, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = connectTimeout
	ping := func() error {
		err := xdb.PingContext(ctx)
		if err != nil {
			log.Warn("mysql not ready", zap.Error(err))
		}
		return err
	}
	if err := backoff.Retry(ping, backoff.WithContext(b, ctx)); err != nil {
		_ = xdb.Close()
		return nil, errors.Wrap(err, "ping mysql")
	}

	d := New(xdb)
	if err := d.EnsureSchema(ctx); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an existing connection.
func New(x *sqlx.DB) *DB { return &DB{DB: x} }

func (d *DB) Close() error { return d.DB.Close() }

// EnsureSchema creates the habitaciones table. num_habi is UNIQUE so that
// concurrent creates are arbitrated by the database.
func (d *DB) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS habitaciones (
			habitacion_id BIGINT AUTO_INCREMENT PRIMARY KEY,
			num_habi INT NOT NULL UNIQUE,
			tipo VARCHAR(255) NOT NULL,
			capacidad INT NOT NULL,
			precio INT NOT NULL,
			estado TINYINT(1) NOT NULL DEFAULT 1
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}
	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

func (d *DB) List(ctx context.Context) ([]store.Room, error) {
	var rooms []store.Room
	if err := d.SelectContext(ctx, &rooms, "SELECT * FROM habitaciones ORDER BY habitacion_id ASC"); err != nil {
		return nil, errors.Wrap(err, "list habitaciones")
	}
	return rooms, nil
}

func (d *DB) Get(ctx context.Context, id int64) (*store.Room, error) {
	var r store.Room
	if err := d.GetContext(ctx, &r, "SELECT * FROM habitaciones WHERE habitacion_id=?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, errors.Wrap(err, "get habitacion")
	}
	return &r, nil
}

func (d *DB) Create(ctx context.Context, r store.Room) (*store.Room, error) {
	res, err := d.ExecContext(ctx,
		"INSERT INTO habitaciones (num_habi,tipo,capacidad,precio,estado) VALUES (?,?,?,?,?)",
		r.NumHabi, r.Tipo, r.Capacidad, r.Precio, r.Estado,
	)
	if err != nil {
		if isDuplicate(err) {
			return nil, store.ErrDuplicateNumber
		}
		return nil, errors.Wrap(err, "insert habitacion")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "insert habitacion")
	}
	return d.Get(ctx, id)
}

// Update applies only the fields set in p.
func (d *DB) Update(ctx context.Context, id int64, p store.RoomPatch) (*store.Room, error) {
	fields := []string{}
	args := []any{}
	if p.NumHabi != nil {
		fields = append(fields, "num_habi=?")
		args = append(args, *p.NumHabi)
	}
	if p.Tipo != nil {
		fields = append(fields, "tipo=?")
		args = append(args, *p.Tipo)
	}
	if p.Capacidad != nil {
		fields = append(fields, "capacidad=?")
		args = append(args, *p.Capacidad)
	}
	if p.Precio != nil {
		fields = append(fields, "precio=?")
		args = append(args, *p.Precio)
	}
	if p.Estado != nil {
		fields = append(fields, "estado=?")
		args = append(args, *p.Estado)
	}
	if len(fields) == 0 {
		return d.Get(ctx, id)
	}

	args = append(args, id)
	if _, err := d.ExecContext(ctx, "UPDATE habitaciones SET "+strings.Join(fields, ",")+" WHERE habitacion_id=?", args...); err != nil {
		if isDuplicate(err) {
			return nil, store.ErrDuplicateNumber
		}
		return nil, errors.Wrap(err, "update habitacion")
	}
	return d.Get(ctx, id)
}

func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.ExecContext(ctx, "DELETE FROM habitaciones WHERE habitacion_id=?", id)
	if err != nil {
		return errors.Wrap(err, "delete habitacion")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete habitacion: rows affected")
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDupEntry
}
