package err

import (
	"testing"

	"github.com/sneedlang/sneed/source/values"
)

func TestCreateErr(t *testing.T) {
	v := CreateErr("eval/sym/unbound", "foo")
	if v.T != values.ERR || v.Kind != values.UnboundSymbol {
		t.Fatalf("wrong error: %+v", v)
	}
	if v.Err != "Unbound Symbol 'foo'" {
		t.Fatalf("got message %q", v.Err)
	}
	if Explain(v) == "" {
		t.Fatalf("no explanation for %s", v.ErrorId)
	}
}

func TestUserErrorIsVerbatim(t *testing.T) {
	v := CreateErr("built/error", "100% wrong")
	if v.Err != "100% wrong" || v.Kind != values.UserError {
		t.Fatalf("got %q", v.Err)
	}
}

func TestEveryEntryIsComplete(t *testing.T) {
	for id, creator := range ErrorCreatorMap {
		if creator.Message == nil || creator.Explanation == nil {
			t.Fatalf("entry %s is missing a function", id)
		}
		if creator.Explanation() == "" {
			t.Fatalf("entry %s has an empty explanation", id)
		}
	}
}

func TestExplainNonError(t *testing.T) {
	if Explain(values.Num(1)) != "" {
		t.Fatalf("numbers have no explanation")
	}
}
