package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/yakoovad/workload-planner/internal/db"
)

type Membership struct {
	TeamID          string   `db:"team_id"`
	TeamName        string   `db:"team_name"`
	PersonID        string   `db:"person_id"`
	PersonName      string   `db:"person_name"`
	WeeklyHours     *float64 `db:"weekly_hours"`
	WorkloadPercent *float64 `db:"workload_percent"`
}

type MembershipRepository interface {
	Upsert(ctx context.Context, m *Membership) error
	Delete(ctx context.Context, teamID, personID string) error
	ListByPersons(ctx context.Context, personIDs []string) ([]*Membership, error)
	ListByTeam(ctx context.Context, teamID string) ([]*Membership, error)
}

type pgxMembershipRepository struct {
	pool *pgxpool.Pool
}

func NewPgxMembershipRepository(pool *pgxpool.Pool) MembershipRepository {
	return &pgxMembershipRepository{pool: pool}
}

func (p *pgxMembershipRepository) Upsert(ctx context.Context, m *Membership) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("team_memberships", "team_id", "person_id", "weekly_hours", "workload_percent"),
		im.Values(psql.Arg(m.TeamID), psql.Arg(m.PersonID), psql.Arg(m.WeeklyHours), psql.Arg(m.WorkloadPercent)),
		im.OnConflict(psql.Quote("team_id"), psql.Quote("person_id")).DoUpdate(
			im.SetCol("weekly_hours").ToArg(m.WeeklyHours),
			im.SetCol("workload_percent").ToArg(m.WorkloadPercent),
		),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return translate(err)
}

func (p *pgxMembershipRepository) Delete(ctx context.Context, teamID, personID string) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Delete(
		dm.From("team_memberships"),
		dm.Where(
			psql.Quote("team_id").EQ(psql.Arg(teamID)).
				And(psql.Quote("person_id").EQ(psql.Arg(personID))),
		))

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	commandTag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *pgxMembershipRepository) ListByPersons(ctx context.Context, personIDs []string) ([]*Membership, error) {
	if len(personIDs) == 0 {
		return []*Membership{}, nil
	}

	return p.list(ctx, psql.Quote("m", "person_id").In(psql.Arg(anyArgs(personIDs)...)))
}

func (p *pgxMembershipRepository) ListByTeam(ctx context.Context, teamID string) ([]*Membership, error) {
	return p.list(ctx, psql.Quote("m", "team_id").EQ(psql.Arg(teamID)))
}

func (p *pgxMembershipRepository) list(ctx context.Context, where bob.Expression) ([]*Membership, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(
			psql.Quote("m", "team_id"),
			psql.Quote("t", "name"),
			psql.Quote("m", "person_id"),
			psql.Quote("p", "name"),
			psql.Quote("m", "weekly_hours"),
			psql.Quote("m", "workload_percent"),
		),
		sm.From("team_memberships").As("m"),
		sm.InnerJoin("teams").As("t").On(psql.Quote("t", "id").EQ(psql.Quote("m", "team_id"))),
		sm.InnerJoin("persons").As("p").On(psql.Quote("p", "id").EQ(psql.Quote("m", "person_id"))),
		sm.Where(where),
		sm.OrderBy(psql.Quote("t", "name")),
		sm.OrderBy(psql.Quote("p", "name")),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Membership, error) {
		m := &Membership{}
		if err = row.Scan(&m.TeamID, &m.TeamName, &m.PersonID, &m.PersonName, &m.WeeklyHours, &m.WorkloadPercent); err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return memberships, nil
}
