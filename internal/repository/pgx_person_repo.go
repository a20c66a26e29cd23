package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/workload-planner/internal/db"
	"github.com/yakoovad/workload-planner/internal/model"
)

type Person struct {
	ID              string     `db:"id"`
	OrganizationID  string     `db:"organization_id"`
	Name            string     `db:"name"`
	Email           string     `db:"email"`
	PasswordHash    string     `db:"password_hash"`
	Role            model.Role `db:"role"`
	WeeklyHours     float64    `db:"weekly_hours"`
	WorkloadPercent float64    `db:"workload_percent"`
}

type PersonPatch struct {
	ID              string   `db:"id"`
	Name            *string  `db:"name"`
	WeeklyHours     *float64 `db:"weekly_hours"`
	WorkloadPercent *float64 `db:"workload_percent"`
}

type PersonFilter struct {
	OrganizationID string
	TeamID         *string
}

type PersonRepository interface {
	Create(ctx context.Context, person *Person) error
	Get(ctx context.Context, id string) (*Person, error)
	GetByEmail(ctx context.Context, email string) (*Person, error)
	List(ctx context.Context, filter PersonFilter) ([]*Person, error)
	Patch(ctx context.Context, patch *PersonPatch) (*Person, error)
}

var personColumns = []any{
	psql.Quote("persons", "id"),
	psql.Quote("persons", "organization_id"),
	psql.Quote("persons", "name"),
	psql.Quote("persons", "email"),
	psql.Quote("persons", "password_hash"),
	psql.Quote("persons", "role"),
	psql.Quote("persons", "weekly_hours"),
	psql.Quote("persons", "workload_percent"),
}

type pgxPersonRepository struct {
	pool *pgxpool.Pool
}

func NewPgxPersonRepository(pool *pgxpool.Pool) PersonRepository {
	return &pgxPersonRepository{pool: pool}
}

func scanPerson(row pgx.Row) (*Person, error) {
	p := &Person{}
	err := row.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.Role,
		&p.WeeklyHours,
		&p.WorkloadPercent,
	)
	return p, err
}

func (p *pgxPersonRepository) Create(ctx context.Context, person *Person) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("persons", "id", "organization_id", "name", "email", "password_hash", "role", "weekly_hours", "workload_percent"),
		im.Values(
			psql.Arg(person.ID),
			psql.Arg(person.OrganizationID),
			psql.Arg(person.Name),
			psql.Arg(person.Email),
			psql.Arg(person.PasswordHash),
			psql.Arg(person.Role),
			psql.Arg(person.WeeklyHours),
			psql.Arg(person.WorkloadPercent),
		),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	_, err = e.Exec(ctx, sql, args...)
	return translate(err)
}

func (p *pgxPersonRepository) Get(ctx context.Context, id string) (*Person, error) {
	return p.getBy(ctx, "id", id)
}

func (p *pgxPersonRepository) GetByEmail(ctx context.Context, email string) (*Person, error) {
	return p.getBy(ctx, "email", email)
}

func (p *pgxPersonRepository) getBy(ctx context.Context, column, value string) (*Person, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(personColumns...),
		sm.From("persons"),
		sm.Where(psql.Quote("persons", column).EQ(psql.Arg(value))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	person, err := scanPerson(e.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translate(err)
	}
	return person, nil
}

// List returns the persons of an organization ordered by name, optionally
// only the members of one team.
func (p *pgxPersonRepository) List(ctx context.Context, filter PersonFilter) ([]*Person, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(personColumns...),
		sm.From("persons"),
		sm.Where(psql.Quote("persons", "organization_id").EQ(psql.Arg(filter.OrganizationID))),
		sm.OrderBy(psql.Quote("persons", "name")),
	)

	if filter.TeamID != nil {
		q.Apply(
			sm.InnerJoin("team_memberships").On(
				psql.Quote("team_memberships", "person_id").EQ(psql.Quote("persons", "id")),
			),
			sm.Where(psql.Quote("team_memberships", "team_id").EQ(psql.Arg(*filter.TeamID))),
		)
	}

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Person, error) {
		return scanPerson(row)
	})
	if err != nil {
		return nil, err
	}

	return persons, nil
}

func (p *pgxPersonRepository) Patch(ctx context.Context, patch *PersonPatch) (*Person, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	sets := make([]bob.Mod[*dialect.UpdateQuery], 0, 3)
	if patch.Name != nil {
		sets = append(sets, um.SetCol("name").ToArg(*patch.Name))
	}
	if patch.WeeklyHours != nil {
		sets = append(sets, um.SetCol("weekly_hours").ToArg(*patch.WeeklyHours))
	}
	if patch.WorkloadPercent != nil {
		sets = append(sets, um.SetCol("workload_percent").ToArg(*patch.WorkloadPercent))
	}

	if len(sets) == 0 {
		return p.Get(ctx, patch.ID)
	}

	q := psql.Update(
		um.Table("persons"),
		um.Where(psql.Quote("id").EQ(psql.Arg(patch.ID))),
		um.Returning(personColumns...),
	)

	q.Apply(sets...)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	person, err := scanPerson(e.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translate(err)
	}
	return person, nil
}
