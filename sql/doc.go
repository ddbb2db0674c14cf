// Package sql turns SQL text into a typed statement tree: a Lexer
// produces a token stream, and a Parser consumes that stream with one
// token of lookahead to build one of the Statement variants below.
//
// # Lexer usage
//
//	lexer := sql.NewLexer("SELECT * FROM users WHERE id = 1")
//	for {
//	 tok := lexer.NextToken()
//	 if tok.Type == sql.EOF {
//	 break
//	 }
//	}
//
// # Parser usage
//
//	stmt, err := sql.NewParser("SELECT * FROM users WHERE id = 1").Parse()
//	if err != nil {
//	 var syntax *core.SyntaxError
//	 // err carries the offending byte position
//	}
//
// # Supported statements
//
// - CreateTableStatement, AlterTableStatement, DropTableStatement
// - InsertStatement, SelectStatement, UpdateStatement, DeleteStatement
// - ShowTablesStatement, DescribeStatement
// - BeginStatement, CommitStatement, RollbackStatement
package sql
