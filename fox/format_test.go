package fox

import (
	"reflect"
	"testing"

	"github.com/midbel/foxlang/environ"
)

var roundtrips = []string{
	"LOCAL a AS NUMBER = 1, b, c AS string",
	"PUBLIC total = 0",
	"x = 1 + 2 * 3 - (4 - 5)",
	"x = -(a + b) * -c",
	"y = a == b and !c or d != e",
	"z = .T. .and. (.F. .or. .NULL. == null)",
	"z *= 2; z /= 2; z -= 1; z += 1",
	"a = b = c",
	`msg = "it's" + 'say "hi"'`,
	"f(1, g(2), (h))(3)",
	"obj.items[i + 1].name",
	"obj . t . f.value",
	"o = CREATEOBJECT Shape(THIS, DODEFAULT)",
	"IF .F. THEN RETURN 1 ELSE RETURN 2 ENDIF",
	"IF x\nENDIF",
	"IF x THEN\nELSE\nENDIF",
	"FUNCTION f(a, b)\nIF a > b THEN\nRETURN a\nENDIF\nRETURN b\nENDFUNC\nf(1, 2)",
	"FUNCTION g()\nLPARAMETERS n\nFUNCTION inner\nRETURN n\nENDFUNC\nRETURN inner\nENDFUNC",
	"RETURN",
	"(-f)()",
	"(a = 1) + 1",
}

func TestFormatRoundTrip(t *testing.T) {
	for _, src := range roundtrips {
		prog, err := ParseString(src)
		if err != nil {
			t.Errorf("%q: parsing failed: %s", src, err)
			continue
		}
		str := Format(prog)
		again, err := ParseString(str)
		if err != nil {
			t.Errorf("%q: formatted program can not be parsed: %s\n%s", src, err, str)
			continue
		}
		if !reflect.DeepEqual(prog, again) {
			t.Errorf("%q: trees mismatched after formatting\n%s", src, str)
		}
	}
}

func TestFormatSameValue(t *testing.T) {
	src := `
		FUNCTION fact(n)
			IF n <= 1 THEN RETURN 1 ENDIF
			RETURN n * fact(n - 1)
		ENDFUNC
		LOCAL r = fact(6)
		IF r * 2 == 1440 THEN RETURN "ok" * 2 ENDIF
	`
	prog, err := ParseString(src)
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	again, err := ParseString(Format(prog))
	if err != nil {
		t.Fatalf("formatted program can not be parsed: %s", err)
	}
	want, err := Evaluate(prog, environ.Empty[Value]())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	got, err := Evaluate(again, environ.Empty[Value]())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want != got || got != String("okok") {
		t.Errorf("values mismatched! want %v, got %v", want, got)
	}
}

func TestFormat(t *testing.T) {
	prog, err := ParseString("function add(a,b)\nif a then\nreturn a+b\nendif\nendfunc")
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	want := "FUNCTION add(a, b)\n  IF a THEN\n    RETURN a + b\n  ENDIF\nENDFUNC"
	if got := Format(prog); got != want {
		t.Errorf("format mismatched\nwant:\n%s\ngot:\n%s", want, got)
	}
}
