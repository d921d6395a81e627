package solver

import (
	"fmt"
	"sort"
	"strings"
)

// diagnostics accumulates per-candidate rejection explanations so an
// unsatisfiable outcome can name every candidate that was considered
// and why it was excluded.
type diagnostics struct {
	// rejections maps package name to its rejection lines, in
	// candidate order.
	rejections map[string][]string
	// unsatisfied are the names for which no candidate survived.
	unsatisfied map[string]struct{}
}

func newDiagnostics() *diagnostics {
	return &diagnostics{
		rejections:  make(map[string][]string),
		unsatisfied: make(map[string]struct{}),
	}
}

func (d *diagnostics) rejected(name, version, reason string) {
	d.rejections[name] = append(d.rejections[name],
		fmt.Sprintf("%s.%s: %s", name, version, reason))
}

func (d *diagnostics) noVersions(name string) {
	d.rejections[name] = append(d.rejections[name],
		name+": no known versions")
	d.unsatisfied[name] = struct{}{}
}

func (d *diagnostics) exhausted(name string) {
	d.unsatisfied[name] = struct{}{}
}

func (d *diagnostics) failed() bool { return len(d.unsatisfied) > 0 }

// render formats the explanation for every unsatisfied package,
// ordered by name for stable output.
func (d *diagnostics) render() string {
	names := make([]string, 0, len(d.unsatisfied))
	for name := range d.unsatisfied {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("couldn't satisfy dependency on " + name)
		for _, line := range d.rejections[name] {
			b.WriteString("\n  - " + line)
		}
	}
	return b.String()
}
