package fox

import (
	"reflect"
	"testing"
)

func TestTree(t *testing.T) {
	prog, err := ParseString("LOCAL x AS number = -1\nIF x < 0 THEN\nRETURN f(x, 'a')\nENDIF")
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	want := map[string]any{
		"program": []any{
			map[string]any{
				"local": []any{
					map[string]any{
						"name": "x",
						"type": "number",
						"init": map[string]any{"unary": "-", "operand": int64(1)},
					},
				},
			},
			map[string]any{
				"if": map[string]any{
					"binary": "<",
					"left":   map[string]any{"ident": "x"},
					"right":  int64(0),
				},
				"then": []any{
					map[string]any{
						"return": map[string]any{
							"call": map[string]any{"ident": "f"},
							"args": []any{map[string]any{"ident": "x"}, "a"},
						},
					},
				},
			},
		},
	}
	if got := Tree(prog); !reflect.DeepEqual(got, want) {
		t.Errorf("trees mismatched\nwant: %#v\ngot:  %#v", want, got)
	}
}
