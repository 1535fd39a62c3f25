package query

// Op is a comparison operator of a Cond.
type Op string

const (
	OpEq      Op = "="
	OpNe      Op = "!="
	OpLike    Op = "like"
	OpNotLike Op = "not like"
)

// Predicate is a condition tree node: a Cond or a Group.
type Predicate interface {
	predicate()
}

// Cond compares one field against a value. For OpLike and OpNotLike the
// value is a pattern where % matches any run of characters and _ matches
// one character; matching ignores case.
type Cond struct {
	Field string
	Op    Op
	Value any
}

// Group combines predicates with AND, or with OR when Or is set.
type Group struct {
	Or    bool
	Preds []Predicate
}

func (Cond) predicate()  {}
func (Group) predicate() {}

// Eq is field = value.
func Eq(field string, value any) Cond { return Cond{Field: field, Op: OpEq, Value: value} }

// Ne is field != value.
func Ne(field string, value any) Cond { return Cond{Field: field, Op: OpNe, Value: value} }

// Like matches field against a LIKE pattern.
func Like(field, pattern string) Cond { return Cond{Field: field, Op: OpLike, Value: pattern} }

// NotLike negates Like.
func NotLike(field, pattern string) Cond { return Cond{Field: field, Op: OpNotLike, Value: pattern} }

// Any is satisfied when at least one of preds is.
func Any(preds ...Predicate) Group { return Group{Or: true, Preds: preds} }

// All is satisfied when every one of preds is.
func All(preds ...Predicate) Group { return Group{Preds: preds} }
