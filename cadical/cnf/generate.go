package cnf

import "math/rand"

// Pigeonhole returns the formula stating that pigeons pigeons fit into holes
// holes, one pigeon per hole. It is unsatisfiable whenever pigeons > holes
// and hard for resolution. Variable (i*holes + j + 1) means pigeon i sits in
// hole j.
func Pigeonhole(pigeons, holes int) *Formula {
	f := &Formula{Vars: pigeons * holes}
	p := func(i, j int) int { return i*holes + j + 1 }
	for i := 0; i < pigeons; i++ {
		c := make([]int, holes)
		for j := range c {
			c[j] = p(i, j)
		}
		f.Add(c...)
	}
	for j := 0; j < holes; j++ {
		for i := 0; i < pigeons; i++ {
			for k := i + 1; k < pigeons; k++ {
				f.Add(-p(i, j), -p(k, j))
			}
		}
	}
	return f
}

// Random returns a uniform random k-CNF with the given number of variables
// and clauses. Literals within a clause are over distinct variables, so k
// must not exceed vars.
func Random(rng *rand.Rand, vars, clauses, k int) *Formula {
	if k > vars {
		k = vars
	}
	f := &Formula{Vars: vars, Clauses: make([][]int, 0, clauses)}
	seen := make(map[int]bool, k)
	for i := 0; i < clauses; i++ {
		c := make([]int, 0, k)
		for len(c) < k {
			v := rng.Intn(vars) + 1
			if seen[v] {
				continue
			}
			seen[v] = true
			if rng.Intn(2) == 0 {
				v = -v
			}
			c = append(c, v)
		}
		for _, l := range c {
			delete(seen, abs(l))
		}
		f.Clauses = append(f.Clauses, c)
	}
	return f
}
