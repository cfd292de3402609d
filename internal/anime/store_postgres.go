package anime

import (
	"context"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/anidex/internal/platform/database/schema"
	"github.com/taibuivan/anidex/internal/platform/dberr"
)

// resourceName is used in 404 messages.
const resourceName = "Anime"

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	returning = "RETURNING " + strings.Join(schema.Anime.Columns(), ", ")
)

type PostgresRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresRepository(db *pgxpool.Pool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		logger: logger.With(slog.String("repo", "anime")),
	}
}

func (repository *PostgresRepository) ListAnimes(context context.Context) ([]*Anime, error) {
	rows, err := repository.query(context, "list_animes", listQuery())
	if err != nil {
		return nil, err
	}

	animes, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[Anime])
	if err != nil {
		return nil, dberr.Wrap(err, "scan_animes")
	}
	return animes, nil
}

func (repository *PostgresRepository) GetAnime(context context.Context, id int) (*Anime, error) {
	return repository.one(context, "get_anime", getQuery(id))
}

func (repository *PostgresRepository) CreateAnime(context context.Context, input Input) (*Anime, error) {
	return repository.one(context, "create_anime", createQuery(input))
}

func (repository *PostgresRepository) UpdateAnime(context context.Context, id int, input Input) (*Anime, error) {
	return repository.one(context, "update_anime", updateQuery(id, input))
}

// DeleteAnime removes the row and returns it as it was before deletion.
func (repository *PostgresRepository) DeleteAnime(context context.Context, id int) (*Anime, error) {
	return repository.one(context, "delete_anime", deleteQuery(id))
}

// one runs a statement expected to yield exactly one row.
func (repository *PostgresRepository) one(context context.Context, action string, builder sq.Sqlizer) (*Anime, error) {
	rows, err := repository.query(context, action, builder)
	if err != nil {
		return nil, err
	}

	anime, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Anime])
	if err != nil {
		return nil, rowError(err, action)
	}
	return anime, nil
}

// rowError classifies a single-row failure: no row becomes an Anime 404,
// constraint violations a 400 and anything else a 500.
func rowError(err error, action string) error {
	return dberr.NotFound(resourceName, dberr.Wrap(err, action))
}

func (repository *PostgresRepository) query(context context.Context, action string, builder sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_"+action)
	}

	repository.logger.DebugContext(context, action, slog.String("query", query), slog.Any("args", args))

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return rows, nil
}

// # Statements

func listQuery() sq.SelectBuilder {
	return psql.
		Select(schema.Anime.Columns()...).
		From(schema.Anime.Table).
		OrderBy(schema.Anime.ID + " ASC")
}

func getQuery(id int) sq.SelectBuilder {
	return psql.
		Select(schema.Anime.Columns()...).
		From(schema.Anime.Table).
		Where(sq.Eq{schema.Anime.ID: id})
}

func createQuery(input Input) sq.InsertBuilder {
	return psql.
		Insert(schema.Anime.Table).
		Columns(schema.Anime.Name, schema.Anime.Description).
		Values(input.Name, input.Description).
		Suffix(returning)
}

func updateQuery(id int, input Input) sq.UpdateBuilder {
	return psql.
		Update(schema.Anime.Table).
		Set(schema.Anime.Name, input.Name).
		Set(schema.Anime.Description, input.Description).
		Where(sq.Eq{schema.Anime.ID: id}).
		Suffix(returning)
}

func deleteQuery(id int) sq.DeleteBuilder {
	return psql.
		Delete(schema.Anime.Table).
		Where(sq.Eq{schema.Anime.ID: id}).
		Suffix(returning)
}
