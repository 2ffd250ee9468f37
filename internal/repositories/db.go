package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup, update or delete touches no row
var ErrNotFound = errors.New("record not found")

// DBTX is the query surface shared by *pgxpool.Pool, pgx.Tx and pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Beginner starts transactions
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos groups the repositories bound to one connection or transaction
type Repos struct {
	Users    UserRepository
	Products ProductRepository
	Images   ProductImageRepository
	Links    ProductLinkRepository
}

func NewRepos(db DBTX) Repos {
	return Repos{
		Users:    NewUserRepo(db),
		Products: NewProductRepo(db),
		Images:   NewProductImageRepo(db),
		Links:    NewProductLinkRepo(db),
	}
}

// TxManager runs a unit of work inside a single transaction
type TxManager interface {
	WithinTx(ctx context.Context, fn func(repos Repos) error) error
}

type txManager struct {
	db Beginner
}

func NewTxManager(db Beginner) TxManager {
	return &txManager{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise
func (m *txManager) WithinTx(ctx context.Context, fn func(repos Repos) error) error {
	return pgx.BeginFunc(ctx, m.db, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
}

func notFoundOnNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// likePattern builds a substring pattern with LIKE metacharacters escaped
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
