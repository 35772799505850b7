package foxlang

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/midbel/foxlang/config"
	"github.com/midbel/foxlang/fox"
)

func TestScripts(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.prg"))
	if err != nil {
		t.Fatalf("listing scripts: %s", err)
	}
	if len(files) == 0 {
		t.Fatalf("no scripts found in testdata")
	}
	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			buf, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("reading script: %s", err)
			}
			want := expected(string(buf))
			if want == "" {
				t.Fatalf("no expected value given in %s", file)
			}
			sess, err := NewSession(config.Default(), &bytes.Buffer{})
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			value, err := sess.Run(bytes.NewReader(buf))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			got := value.String()
			if _, ok := value.(fox.String); ok {
				got = strconv.Quote(got)
			}
			if got != want {
				t.Errorf("values mismatched! want %s, got %s", want, got)
			}
		})
	}
}

func expected(src string) string {
	scan := bufio.NewScanner(strings.NewReader(src))
	if !scan.Scan() {
		return ""
	}
	want, ok := strings.CutPrefix(scan.Text(), "// want:")
	if !ok {
		return ""
	}
	return strings.TrimSpace(want)
}
