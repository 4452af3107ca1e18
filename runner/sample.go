package runner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}, true
	}
	return sample{}, false
}

// extractSamples reads the doc comment of every function in src and
// returns the samples keyed by function name. A sample with no input of
// its own reuses the input of the previous sample in the file.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if s.input == "" {
				s.input = lastInput
			}
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples, nil
}
