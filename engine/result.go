package engine

import "litesql/core"

// Kind tags the payload a Result carries.
type Kind int

const (
	SelectResult Kind = iota
	InsertResult
	UpdateResult
	DeleteResult
	CreateTableResult
	DropTableResult
	ShowTablesResult
	DescribeResult
	OKResult
	ErrorResult
)

func (k Kind) String() string {
	switch k {
	case SelectResult:
		return "SELECT"
	case InsertResult:
		return "INSERT"
	case UpdateResult:
		return "UPDATE"
	case DeleteResult:
		return "DELETE"
	case CreateTableResult:
		return "CREATE_TABLE"
	case DropTableResult:
		return "DROP_TABLE"
	case ShowTablesResult:
		return "SHOW_TABLES"
	case DescribeResult:
		return "DESCRIBE"
	case OKResult:
		return "OK"
	case ErrorResult:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Result is the discriminated record every Execute call returns. Only
// the fields relevant to Kind are meaningful; a Result is never both
// success-shaped and error-shaped.
type Result struct {
	Success bool
	Kind Kind
	ExecutionTime float64 // milliseconds, fractional allowed

	// SELECT
	Rows []core.Row
	RowCount int

	// INSERT, UPDATE, DELETE
	RowsAffected int
	LastInsertID *int64 // INSERT only, non-nil iff the table has an auto-increment primary key

	// CREATE_TABLE, DROP_TABLE
	Table string

	// SHOW_TABLES
	TableNames []string

	// DESCRIBE
	Schema core.Schema

	// ERROR
	Err core.QueryError
}

func errorResult(err core.QueryError, elapsed float64) Result {
	return Result{Success: false, Kind: ErrorResult, Err: err, ExecutionTime: elapsed}
}
