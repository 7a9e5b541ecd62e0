package engine

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mlcs/oracle"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// recordedOp is one step of a random stress run, dumped to
// testdata/failures on a mismatch so the run can be replayed exactly.
type recordedOp struct {
	Op   string `yaml:"op"`
	Str  int    `yaml:"str"`
	Char string `yaml:"char,omitempty"`
}

type failureDump struct {
	Seed  int64        `yaml:"seed"`
	Dim   int          `yaml:"dim"`
	Sigma int          `yaml:"sigma"`
	Ops   []recordedOp `yaml:"ops"`
	AtOp  int          `yaml:"at_op"`
	Want  int          `yaml:"want"`
	Got   int          `yaml:"got"`
}

// TestRandomStressWithProgress runs spec.md §8.2 scenario 6's three
// (sigma, n, dim, ops) configurations, checking invariant 1 after every
// operation, with a progress bar across the configurations and a replay
// dump written to testdata/failures on the first mismatch.
func TestRandomStressWithProgress(t *testing.T) {
	if testing.Short() {
		t.Skip("random stress skipped in -short mode")
	}

	cases := []struct {
		sigma, n, dim, ops int
		seed               int64
	}{
		{2, 20, 4, 400, 1001},
		{3, 10, 4, 100, 1002},
		{10, 40, 4, 5, 1003},
	}

	bar := progressbar.Default(int64(len(cases)), "random stress")

	for _, cse := range cases {
		rng := rand.New(rand.NewSource(cse.seed))
		e := New(cse.dim, cse.sigma)
		var recorded []recordedOp

		for op := 0; op < cse.ops; op++ {
			j := rng.Intn(cse.dim)
			var rec recordedOp
			if e.PullString(j).Size() > 0 && rng.Intn(2) == 0 {
				e.Pop(j)
				rec = recordedOp{Op: "pop", Str: j}
			} else {
				c := byte('A' + rng.Intn(cse.sigma))
				e.Append(j, c)
				rec = recordedOp{Op: "append", Str: j, Char: string(c)}
			}
			recorded = append(recorded, rec)

			want := oracle.MLCS(strs(e))
			got := e.MLCSSize()
			if want != got {
				dumpFailure(t, failureDump{
					Seed: cse.seed, Dim: cse.dim, Sigma: cse.sigma,
					Ops: recorded, AtOp: op, Want: want, Got: got,
				})
			}
			require.Equal(t, want, got, "sigma=%d n=%d dim=%d op=%d", cse.sigma, cse.n, cse.dim, op)
		}
		_ = bar.Add(1)
	}
}

func dumpFailure(t *testing.T, f failureDump) {
	t.Helper()
	b, err := yaml.Marshal(f)
	if err != nil {
		t.Logf("failed to marshal failure dump: %v", err)
		return
	}
	dir := "../testdata/failures"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Logf("failed to create failure dump dir: %v", err)
		return
	}
	name := fmt.Sprintf("stress-%d-%d.yaml", f.Seed, time.Now().UnixNano())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Logf("failed to write failure dump: %v", err)
		return
	}
	t.Logf("wrote failure replay to %s", path)
}
