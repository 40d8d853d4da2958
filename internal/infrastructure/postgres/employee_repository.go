package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/employee-records-api/internal/domain/entity"
	"github.com/oksasatya/employee-records-api/internal/domain/repository"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// storedTimeLayout is how dates and timestamps are written to text columns.
const storedTimeLayout = "2006-01-02T15:04:05.000Z"

const uniqueViolation = "23505"

const employeeColumns = `id, email, name, address, phone_number, date_of_birth, gender, position, department, hire_date, is_active, created_at, updated_at`

const (
	selectEmployeeByIDSQL    = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	selectEmployeeByEmailSQL = `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	selectEmployeesSQL       = `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	searchEmployeesSQL       = `SELECT ` + employeeColumns + ` FROM employees WHERE name ILIKE '%' || $1 || '%' ORDER BY id`
	insertEmployeeSQL        = `INSERT INTO employees (email, name, address, phone_number, date_of_birth, gender, position, department, hire_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	lastInsertIDSQL   = `SELECT lastval()`
	updateEmployeeSQL = `UPDATE employees
		SET email = $1, name = $2, address = $3, phone_number = $4, date_of_birth = $5, gender = $6,
		    position = $7, department = $8, hire_date = $9, is_active = $10, updated_at = $11
		WHERE id = $12`
	deleteEmployeeSQL = `DELETE FROM employees WHERE id = $1`
)

type EmployeeRepository struct {
	db DB
}

func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, selectEmployeeByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee %d: %w", id, err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, selectEmployeeByEmailSQL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee by email: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	return r.list(ctx, selectEmployeesSQL)
}

// SearchByName matches name case-insensitively as a substring. Wildcards in term are not escaped.
func (r *EmployeeRepository) SearchByName(ctx context.Context, term string) ([]*entity.Employee, error) {
	return r.list(ctx, searchEmployeesSQL, term)
}

func (r *EmployeeRepository) list(ctx context.Context, sql string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return out, nil
}

// Create inserts e and reads the assigned id with lastval(). Both statements run in one
// transaction so they share a connection and lastval() sees this insert.
func (r *EmployeeRepository) Create(ctx context.Context, e *entity.Employee) (*entity.Employee, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin insert: %w", err)
	}

	_, err = tx.Exec(ctx, insertEmployeeSQL,
		e.Email, e.Name, e.Address, e.PhoneNumber,
		formatStoredTime(e.DateOfBirth), string(e.Gender), e.Position, e.Department,
		formatStoredTime(e.HireDate), boolToInt(e.IsActive),
		formatStoredTime(e.CreatedAt), formatStoredTime(e.UpdatedAt),
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, translateEmployeeError("insert employee", err)
	}

	id, err := lastInsertID(ctx, tx)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit insert: %w", err)
	}

	created := *e
	created.ID = id
	return &created, nil
}

func lastInsertID(ctx context.Context, q pgx.Tx) (int64, error) {
	var id int64
	if err := q.QueryRow(ctx, lastInsertIDSQL).Scan(&id); err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}
	return id, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	tag, err := r.db.Exec(ctx, updateEmployeeSQL,
		e.Email, e.Name, e.Address, e.PhoneNumber,
		formatStoredTime(e.DateOfBirth), string(e.Gender), e.Position, e.Department,
		formatStoredTime(e.HireDate), boolToInt(e.IsActive), formatStoredTime(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return translateEmployeeError("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteEmployeeSQL, id)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var (
		e                               entity.Employee
		gender                          string
		isActive                        int
		dob, hire, createdAt, updatedAt string
	)
	if err := row.Scan(&e.ID, &e.Email, &e.Name, &e.Address, &e.PhoneNumber, &dob, &gender,
		&e.Position, &e.Department, &hire, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if e.DateOfBirth, err = parseStoredTime(dob); err != nil {
		return nil, fmt.Errorf("employee %d date_of_birth: %w", e.ID, err)
	}
	if e.HireDate, err = parseStoredTime(hire); err != nil {
		return nil, fmt.Errorf("employee %d hire_date: %w", e.ID, err)
	}
	if e.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, fmt.Errorf("employee %d created_at: %w", e.ID, err)
	}
	if e.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, fmt.Errorf("employee %d updated_at: %w", e.ID, err)
	}
	e.Gender = entity.Gender(gender)
	e.IsActive = isActive != 0
	return &e, nil
}

func translateEmployeeError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrEmailTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}

func formatStoredTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseStoredTime(s string) (time.Time, error) {
	for _, layout := range storedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)
