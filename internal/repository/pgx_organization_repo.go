package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/yakoovad/workload-planner/internal/db"
)

type Organization struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	Get(ctx context.Context, id string) (*Organization, error)
}

type pgxOrganizationRepository struct {
	pool *pgxpool.Pool
}

func NewPgxOrganizationRepository(pool *pgxpool.Pool) OrganizationRepository {
	return &pgxOrganizationRepository{pool: pool}
}

func (p *pgxOrganizationRepository) Create(ctx context.Context, org *Organization) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("organizations", "id", "name"),
		im.Values(psql.Arg(org.ID), psql.Arg(org.Name)),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return translate(err)
}

func (p *pgxOrganizationRepository) Get(ctx context.Context, id string) (*Organization, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns("id", "name"),
		sm.From("organizations"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	org := &Organization{}
	if err = e.QueryRow(ctx, sql, args...).Scan(&org.ID, &org.Name); err != nil {
		return nil, translate(err)
	}
	return org, nil
}
