package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/workload-planner/internal/db"
)

type Task struct {
	ID             string     `db:"id"`
	OrganizationID string     `db:"organization_id"`
	Title          string     `db:"title"`
	DueDate        *time.Time `db:"due_date"`
	EstimatedHours *float64   `db:"estimated_hours"`
	Completed      bool       `db:"completed"`
	AssigneeID     *string    `db:"assignee_id"`
	CreatedAt      *time.Time `db:"created_at"`
}

type TaskPatch struct {
	ID        string `db:"id"`
	Completed *bool  `db:"completed"`
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	Get(ctx context.Context, id string) (*Task, error)
	Patch(ctx context.Context, patch *TaskPatch) (*Task, error)
	ListOpenByAssignees(ctx context.Context, assigneeIDs []string) ([]*Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]*Task, error)
}

var taskColumns = []any{"id", "organization_id", "title", "due_date", "estimated_hours", "completed", "assignee_id", "created_at"}

type pgxTaskRepository struct {
	pool *pgxpool.Pool
}

func NewPgxTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &pgxTaskRepository{pool: pool}
}

func scanTask(row pgx.Row) (*Task, error) {
	t := &Task{}
	err := row.Scan(
		&t.ID,
		&t.OrganizationID,
		&t.Title,
		&t.DueDate,
		&t.EstimatedHours,
		&t.Completed,
		&t.AssigneeID,
		&t.CreatedAt,
	)
	return t, err
}

// Create inserts a task and fills task.CreatedAt
func (p *pgxTaskRepository) Create(ctx context.Context, task *Task) error {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Insert(
		im.Into("subtasks", "id", "organization_id", "title", "due_date", "estimated_hours", "completed", "assignee_id"),
		im.Values(
			psql.Arg(task.ID),
			psql.Arg(task.OrganizationID),
			psql.Arg(task.Title),
			psql.Arg(task.DueDate),
			psql.Arg(task.EstimatedHours),
			psql.Arg(task.Completed),
			psql.Arg(task.AssigneeID),
		),
		im.Returning("created_at"),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	return translate(e.QueryRow(ctx, sql, args...).Scan(&task.CreatedAt))
}

func (p *pgxTaskRepository) Get(ctx context.Context, id string) (*Task, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(taskColumns...),
		sm.From("subtasks"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	task, err := scanTask(e.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translate(err)
	}
	return task, nil
}

func (p *pgxTaskRepository) Patch(ctx context.Context, patch *TaskPatch) (*Task, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	sets := make([]bob.Mod[*dialect.UpdateQuery], 0, 1)
	if patch.Completed != nil {
		sets = append(sets, um.SetCol("completed").ToArg(*patch.Completed))
	}

	if len(sets) == 0 {
		return p.Get(ctx, patch.ID)
	}

	q := psql.Update(
		um.Table("subtasks"),
		um.Where(psql.Quote("id").EQ(psql.Arg(patch.ID))),
		um.Returning(taskColumns...),
	)

	q.Apply(sets...)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	task, err := scanTask(e.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translate(err)
	}
	return task, nil
}

func (p *pgxTaskRepository) ListOpenByAssignees(ctx context.Context, assigneeIDs []string) ([]*Task, error) {
	if len(assigneeIDs) == 0 {
		return []*Task{}, nil
	}

	return p.list(ctx,
		sm.Where(psql.Quote("assignee_id").In(psql.Arg(anyArgs(assigneeIDs)...))),
		sm.Where(psql.Quote("completed").EQ(psql.Arg(false))),
	)
}

func (p *pgxTaskRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]*Task, error) {
	return p.list(ctx, sm.Where(psql.Quote("assignee_id").EQ(psql.Arg(assigneeID))))
}

func (p *pgxTaskRepository) list(ctx context.Context, mods ...bob.Mod[*dialect.SelectQuery]) ([]*Task, error) {
	e := db.GetPgxExecutorFromContext(ctx, p.pool)

	q := psql.Select(
		sm.Columns(taskColumns...),
		sm.From("subtasks"),
		sm.OrderBy("due_date"),
		sm.OrderBy("created_at"),
	)
	q.Apply(mods...)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
