// Package engine interprets parsed statement trees against an in-memory
// table catalog and owns the session/transaction lifecycle around it: one
// Session holds a committed Catalog and, while a transaction is open, a
// shadow Catalog that every statement inside the transaction reads and
// writes instead.
//
//	session := engine.NewSession()
//	result := session.Execute("CREATE TABLE u (id INTEGER PRIMARY KEY AUTO_INCREMENT, e TEXT UNIQUE NOT NULL)")
//	if !result.Success {
//	    // result.Err satisfies core.QueryError
//	}
package engine
