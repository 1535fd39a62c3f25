// Package table renders a paginated, searchable and filterable view of a
// query source as the JSON document a front-end grid consumes.
//
// A table is declared by a Definition, usually a struct embedding Base:
//
//	type UsersTable struct{ table.Base }
//
//	func (UsersTable) Model() string { return "users" }
//
//	func (UsersTable) Columns(*table.Request) []*table.Column {
//		return []*table.Column{
//			table.Number("ID", "id").Sortable(),
//			table.Text("Name", "name").Default("-"),
//		}
//	}
//
//	env, err := table.New(UsersTable{}, src, settings).Render(table.FromHTTP(r))
//
// The URI key ("users_table" above) prefixes every request parameter, so
// several tables can share one page. A Registry indexes tables by that key
// for HTTP routing.
package table
