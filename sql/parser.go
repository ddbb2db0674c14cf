package sql

import (
	"fmt"
	"strconv"
	"strings"

	"litesql/core"
)

// Parser is a recursive-descent parser over a fully tokenized input, with
// one token of lookahead available via peek/peekAt.
type Parser struct {
	tokens []Token
	pos int
}

// NewParser tokenizes src and prepares a Parser over the result.
func NewParser(src string) *Parser {
	lexer := NewLexer(src)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt TokenType, what string) (Token, error) {
	if p.peek().Type != tt {
		return Token{}, p.errorf("expected %s", what)
	}
	return p.advance(), nil
}

func (p *Parser) errorf(format string, args...any) error {
	return &core.SyntaxError{Message: fmt.Sprintf(format, args...), Pos: p.peek().Pos}
}

// Parse parses the single statement at the start of the input. A trailing
// semicolon is optional and, if present, consumed; any tokens after it
// are not examined.
func (p *Parser) Parse() (Statement, error) {
	var stmt Statement
	var err error

	switch p.peek().Type {
	case Create:
		stmt, err = p.parseCreateTable()
	case Alter:
		stmt, err = p.parseAlterTable()
	case Drop:
		stmt, err = p.parseDropTable()
	case Insert:
		stmt, err = p.parseInsert()
	case Select:
		stmt, err = p.parseSelect()
	case Update:
		stmt, err = p.parseUpdate()
	case Delete:
		stmt, err = p.parseDelete()
	case Show:
		stmt, err = p.parseShowTables()
	case Describe:
		stmt, err = p.parseDescribe()
	case Begin:
		p.advance()
		stmt = &BeginStatement{}
	case Commit:
		p.advance()
		stmt = &CommitStatement{}
	case Rollback:
		p.advance()
		stmt = &RollbackStatement{}
	default:
		return nil, p.errorf("unexpected token %q at start of statement", p.peek().Value)
	}
	if err != nil {
		return nil, err
	}
	if p.peek().Type == Semicolon {
		p.advance()
	}
	return stmt, nil
}

func (p *Parser) parseCreateTable() (Statement, error) {
	p.advance() // CREATE
	if _, err := p.expect(Table, "TABLE"); err != nil {
		return nil, err
	}
	ifNotExists := false
	if p.peek().Type == If {
		p.advance()
		if _, err := p.expect(Not, "NOT"); err != nil {
			return nil, err
		}
		if _, err := p.expect(Exists, "EXISTS"); err != nil {
			return nil, err
		}
		ifNotExists = true
	}
	name, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LParen, "("); err != nil {
		return nil, err
	}

	var columns []ColumnDef
	for {
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(RParen, ")"); err != nil {
		return nil, err
	}
	return &CreateTableStatement{Table: name.Value, Columns: columns, IfNotExists: ifNotExists}, nil
}

// parseColumnDef parses "name TYPE [PRIMARY KEY] [UNIQUE] [NOT NULL]
// [AUTO_INCREMENT] [DEFAULT value]"; the flag clauses may appear in any
// order. DEFAULT's value is tokenized and discarded, not recorded.
func (p *Parser) parseColumnDef() (ColumnDef, error) {
	name, err := p.expect(Identifier, "column name")
	if err != nil {
		return ColumnDef{}, err
	}
	ty, err := p.parseTypeKeyword()
	if err != nil {
		return ColumnDef{}, err
	}
	col := ColumnDef{Name: name.Value, Type: ty}

	for {
		switch p.peek().Type {
		case Primary:
			p.advance()
			if _, err := p.expect(Key, "KEY"); err != nil {
				return ColumnDef{}, err
			}
			col.PrimaryKey = true
		case Unique:
			p.advance()
			col.Unique = true
		case Not:
			p.advance()
			if _, err := p.expect(Null, "NULL"); err != nil {
				return ColumnDef{}, err
			}
			col.NotNull = true
		case AutoIncrement:
			p.advance()
			col.AutoIncrement = true
		case Default:
			p.advance()
			p.advance() // skip the default value token; not represented in the AST
		default:
			return col, nil
		}
	}
}

func (p *Parser) parseTypeKeyword() (core.Type, error) {
	tok := p.peek()
	switch tok.Type {
	case TypeInteger:
		p.advance()
		return core.Integer, nil
	case TypeText:
		p.advance()
		return core.Text, nil
	case TypeBoolean:
		p.advance()
		return core.Boolean, nil
	case TypeReal:
		p.advance()
		return core.Real, nil
	case TypeDate:
		p.advance()
		return core.Date, nil
	default:
		return 0, p.errorf("expected a column type, got %q", tok.Value)
	}
}

func (p *Parser) parseAlterTable() (Statement, error) {
	p.advance() // ALTER
	if _, err := p.expect(Table, "TABLE"); err != nil {
		return nil, err
	}
	name, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	stmt := &AlterTableStatement{Table: name.Value}

	switch p.peek().Type {
	case Add:
		p.advance()
		if p.peek().Type == Column {
			p.advance()
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Action = AddColumn
		stmt.ColumnDef = col
	case Drop:
		p.advance()
		if p.peek().Type == Column {
			p.advance()
		}
		colName, err := p.expect(Identifier, "column name")
		if err != nil {
			return nil, err
		}
		stmt.Action = DropColumn
		stmt.Column = colName.Value
	case Rename:
		p.advance()
		if p.peek().Type == Column {
			p.advance()
		}
		oldName, err := p.expect(Identifier, "old column name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(To, "TO"); err != nil {
			return nil, err
		}
		newName, err := p.expect(Identifier, "new column name")
		if err != nil {
			return nil, err
		}
		stmt.Action = RenameColumn
		stmt.Column = oldName.Value
		stmt.NewColumn = newName.Value
	case Modify:
		p.advance()
		if p.peek().Type == Column {
			p.advance()
		}
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Action = ModifyColumn
		stmt.Column = col.Name
		stmt.ColumnDef = col
	default:
		return nil, p.errorf("expected ADD, DROP, RENAME, or MODIFY, got %q", p.peek().Value)
	}
	return stmt, nil
}

func (p *Parser) parseDropTable() (Statement, error) {
	p.advance() // DROP
	if _, err := p.expect(Table, "TABLE"); err != nil {
		return nil, err
	}
	ifExists := false
	if p.peek().Type == If {
		p.advance()
		if _, err := p.expect(Exists, "EXISTS"); err != nil {
			return nil, err
		}
		ifExists = true
	}
	name, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	return &DropTableStatement{Table: name.Value, IfExists: ifExists}, nil
}

func (p *Parser) parseInsert() (Statement, error) {
	p.advance() // INSERT
	if _, err := p.expect(Into, "INTO"); err != nil {
		return nil, err
	}
	name, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	stmt := &InsertStatement{Table: name.Value}

	if p.peek().Type == LParen {
		p.advance()
		for {
			col, err := p.expect(Identifier, "column name")
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col.Value)
			if p.peek().Type == Comma {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(RParen, ")"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(Values, "VALUES"); err != nil {
		return nil, err
	}

	for {
		row, err := p.parseValueRow()
		if err != nil {
			return nil, err
		}
		stmt.Rows = append(stmt.Rows, row)
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	return stmt, nil
}

func (p *Parser) parseValueRow() ([]core.Value, error) {
	if _, err := p.expect(LParen, "("); err != nil {
		return nil, err
	}
	var values []core.Value
	for {
		v, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(RParen, ")"); err != nil {
		return nil, err
	}
	return values, nil
}

// parseLiteral parses one literal token into a Value: string, number,
// TRUE/FALSE, or NULL.
func (p *Parser) parseLiteral() (core.Value, error) {
	tok := p.peek()
	switch tok.Type {
	case String:
		p.advance()
		return core.NewText(tok.Value), nil
	case Number:
		p.advance()
		return parseNumberLiteral(tok.Value), nil
	case True:
		p.advance()
		return core.NewBoolean(true), nil
	case False:
		p.advance()
		return core.NewBoolean(false), nil
	case Null:
		p.advance()
		return core.Null, nil
	default:
		return core.Value{}, p.errorf("expected a literal value, got %q", tok.Value)
	}
}

func parseNumberLiteral(text string) core.Value {
	if strings.Contains(text, ".") {
		f, _ := strconv.ParseFloat(text, 64)
		return core.NewReal(f)
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f, _ := strconv.ParseFloat(text, 64)
		return core.NewReal(f)
	}
	return core.NewInteger(i)
}

func (p *Parser) parseSelect() (Statement, error) {
	p.advance() // SELECT
	stmt := &SelectStatement{}

	if p.peek().Type == Star {
		p.advance()
	} else {
		for {
			col, err := p.parseQualifiedColumn()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
			if p.peek().Type == Comma {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(From, "FROM"); err != nil {
		return nil, err
	}
	table, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	stmt.Table = table.Value

	for p.isJoinStart() {
		join, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		stmt.Joins = append(stmt.Joins, join)
	}

	if p.peek().Type == Where {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.peek().Type == Order {
		p.advance()
		if _, err := p.expect(By, "BY"); err != nil {
			return nil, err
		}
		for {
			colTok, err := p.expect(Identifier, "column name")
			if err != nil {
				return nil, err
			}
			clause := OrderByClause{Column: colTok.Value}
			if p.peek().Type == Desc {
				p.advance()
				clause.Desc = true
			} else if p.peek().Type == Asc {
				p.advance()
			}
			stmt.OrderBy = append(stmt.OrderBy, clause)
			if p.peek().Type == Comma {
				p.advance()
				continue
			}
			break
		}
	}

	if p.peek().Type == Limit {
		p.advance()
		numTok, err := p.expect(Number, "LIMIT count")
		if err != nil {
			return nil, err
		}
		n, _ := strconv.Atoi(numTok.Value)
		stmt.Limit = &n
	}

	return stmt, nil
}

// parseQualifiedColumn parses an identifier with an optional
// "table." qualifier, keeping only the column part.
func (p *Parser) parseQualifiedColumn() (string, error) {
	first, err := p.expect(Identifier, "column name")
	if err != nil {
		return "", err
	}
	if p.peek().Type == Dot {
		p.advance()
		col, err := p.expect(Identifier, "column name")
		if err != nil {
			return "", err
		}
		return col.Value, nil
	}
	return first.Value, nil
}

func (p *Parser) isJoinStart() bool {
	switch p.peek().Type {
	case JoinTok, Inner, Left, Right:
		return true
	default:
		return false
	}
}

func (p *Parser) parseJoin() (Join, error) {
	joinType := InnerJoin
	switch p.peek().Type {
	case Inner:
		p.advance()
	case Left:
		p.advance()
		joinType = LeftJoin
	case Right:
		p.advance()
		joinType = RightJoin
	}
	if _, err := p.expect(JoinTok, "JOIN"); err != nil {
		return Join{}, err
	}
	table, err := p.expect(Identifier, "table name")
	if err != nil {
		return Join{}, err
	}
	if _, err := p.expect(On, "ON"); err != nil {
		return Join{}, err
	}
	left, err := p.expect(Identifier, "join column")
	if err != nil {
		return Join{}, err
	}
	if _, err := p.expect(Eq, "="); err != nil {
		return Join{}, err
	}
	right, err := p.expect(Identifier, "join column")
	if err != nil {
		return Join{}, err
	}
	return Join{Type: joinType, Table: table.Value, Left: left.Value, Right: right.Value}, nil
}

// parseWhereClause parses "WHERE cond (AND|OR cond)*" into a left-
// associative flattening; AND and OR carry equal precedence in this
// parser, with no special treatment of either over the other.
func (p *Parser) parseWhereClause() (*WhereClause, error) {
	p.advance() // WHERE
	clause := &WhereClause{}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	clause.Conditions = append(clause.Conditions, cond)

	for {
		var op LogicalOperator
		switch p.peek().Type {
		case AndTok:
			op = And
		case OrTok:
			op = Or
		default:
			return clause, nil
		}
		p.advance()
		cond, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		clause.LogicalOps = append(clause.LogicalOps, op)
		clause.Conditions = append(clause.Conditions, cond)
	}
}

func (p *Parser) parseCondition() (WhereCondition, error) {
	colTok, err := p.expect(Identifier, "column name")
	if err != nil {
		return WhereCondition{}, err
	}
	var op CompareOp
	switch p.peek().Type {
	case Eq:
		op = OpEq
	case Neq:
		op = OpNeq
	case Gt:
		op = OpGt
	case Lt:
		op = OpLt
	case Gte:
		op = OpGte
	case Lte:
		op = OpLte
	case Like:
		op = OpLike
	default:
		return WhereCondition{}, p.errorf("expected a comparison operator, got %q", p.peek().Value)
	}
	p.advance()
	value, err := p.parseLiteral()
	if err != nil {
		return WhereCondition{}, err
	}
	return WhereCondition{Column: colTok.Value, Op: op, Value: value}, nil
}

func (p *Parser) parseUpdate() (Statement, error) {
	p.advance() // UPDATE
	table, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Set, "SET"); err != nil {
		return nil, err
	}
	stmt := &UpdateStatement{Table: table.Value, Set: map[string]core.Value{}}
	for {
		colTok, err := p.expect(Identifier, "column name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(Eq, "="); err != nil {
			return nil, err
		}
		value, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Set[colTok.Value] = value
		if p.peek().Type == Comma {
			p.advance()
			continue
		}
		break
	}
	if p.peek().Type == Where {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (Statement, error) {
	p.advance() // DELETE
	if _, err := p.expect(From, "FROM"); err != nil {
		return nil, err
	}
	table, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	stmt := &DeleteStatement{Table: table.Value}
	if p.peek().Type == Where {
		where, err := p.parseWhereClause()
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}
	return stmt, nil
}

func (p *Parser) parseShowTables() (Statement, error) {
	p.advance() // SHOW
	if _, err := p.expect(Tables, "TABLES"); err != nil {
		return nil, err
	}
	return &ShowTablesStatement{}, nil
}

func (p *Parser) parseDescribe() (Statement, error) {
	p.advance() // DESCRIBE
	table, err := p.expect(Identifier, "table name")
	if err != nil {
		return nil, err
	}
	return &DescribeStatement{Table: table.Value}, nil
}
