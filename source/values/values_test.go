package values

import "testing"

func qexpr(cells ...*Value) *Value {
	q := Qexpr()
	for _, c := range cells {
		q.Add(c)
	}
	return q
}

func sample() []*Value {
	return []*Value{
		Num(42),
		Num(-7),
		Str("hello\n"),
		Sym("x"),
		Err(DivisionByZero, "built/div/zero", "division by zero"),
		Fun(&Builtin{Name: "+"}),
		Lambda(qexpr(Sym("x")), qexpr(Sym("+"), Sym("x"), Num(1))),
		Sexpr(),
		qexpr(Num(1), qexpr(Str("a"), Sym("b"))),
	}
}

func TestCopyIsEqualAndIndependent(t *testing.T) {
	for _, v := range sample() {
		c := v.Copy()
		if !Equal(v, c) {
			t.Fatalf("copy of %s is not equal to it: %s", v, c)
		}
		if v.T == QEXPR || v.T == SEXPR {
			c.Add(Num(99))
			if Equal(v, c) {
				t.Fatalf("adding to the copy of %s changed the original", v)
			}
		}
	}
}

func TestCopyOfClosureCopiesEnvironment(t *testing.T) {
	f := Lambda(qexpr(Sym("y")), qexpr(Sym("x")))
	f.Env.Put("x", Num(1))
	g := f.Copy()
	g.Env.Put("x", Num(2))
	got, _ := f.Env.Get("x")
	if got.Num != 1 {
		t.Fatalf("binding in the copy leaked into the original: %s", got)
	}
	if !Equal(f, g) {
		t.Fatalf("closures with equal formals and body should be equal")
	}
}

func TestEqualityIsTypeDiscriminated(t *testing.T) {
	if Equal(Num(1), Str("1")) {
		t.Fatalf("number and string compared equal")
	}
	if Equal(Sexpr(), Qexpr()) {
		t.Fatalf("S-expression and Q-expression compared equal")
	}
	plus := &Builtin{Name: "+"}
	if !Equal(Fun(plus), Fun(plus).Copy()) {
		t.Fatalf("copies of a builtin should be equal")
	}
	if Equal(Fun(plus), Fun(&Builtin{Name: "+"})) {
		t.Fatalf("distinct builtins compared equal")
	}
	if Equal(qexpr(Num(1), Num(2)), qexpr(Num(1))) {
		t.Fatalf("lists of different lengths compared equal")
	}
}

func TestPopAndTake(t *testing.T) {
	q := qexpr(Num(1), Num(2), Num(3))
	x := q.Pop(1)
	if x.Num != 2 || q.String() != "{1 3}" {
		t.Fatalf("got %s and %s", x, q)
	}
	y := q.Take(1)
	if y.Num != 3 || q.Cells != nil {
		t.Fatalf("take should return the cell and empty the container")
	}
}

func TestJoinPreservesOrder(t *testing.T) {
	a := qexpr(Num(1), Num(2))
	b := qexpr(Num(3), Num(4), Num(5))
	r := Join(a, b)
	if r.Len() != 5 || r.String() != "{1 2 3 4 5}" {
		t.Fatalf("got %s", r)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{Num(-12), "-12"},
		{Str("a\"b\n"), `"a\"b\n"`},
		{Sym("foo"), "foo"},
		{Err(UserError, "", "oops"), "Error: oops"},
		{Fun(&Builtin{Name: "head"}), "<builtin>"},
		{Lambda(qexpr(Sym("x"), Sym("y")), qexpr(Sym("+"), Sym("x"), Sym("y"))), `(\ {x y} {+ x y})`},
		{Sexpr().Add(Sym("+")).Add(Num(1)), "(+ 1)"},
		{qexpr(), "{}"},
	}
	for _, test := range tests {
		if got := test.v.String(); got != test.want {
			t.Fatalf("got %s, want %s", got, test.want)
		}
	}
}

func TestDeleteReleasesCells(t *testing.T) {
	inner := qexpr(Num(1))
	outer := qexpr(inner)
	outer.Delete()
	if outer.Cells != nil || inner.Cells != nil {
		t.Fatalf("delete should release nested lists")
	}
}

func TestErrorKindNames(t *testing.T) {
	if DivisionByZero.String() != "DivisionByZero" || Overflow.String() != "Overflow" {
		t.Fatalf("kind names out of step with kinds")
	}
	if TypeName(QEXPR) != "Q-Expression" {
		t.Fatalf("got %s", TypeName(QEXPR))
	}
}
