package cnf

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/go-air/gini/dimacs"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// builder collects the clauses reported by the DIMACS reader.
type builder struct {
	f   *Formula
	cur []int
}

func (b *builder) Init(_, c int) {
	if c > 0 && c < 1<<20 {
		b.f.Clauses = make([][]int, 0, c)
	}
}

func (b *builder) Add(m z.Lit) {
	if m == z.LitNull {
		b.f.Add(b.cur...)
		b.cur = b.cur[:0]
		return
	}
	b.cur = append(b.cur, m.Dimacs())
}

func (b *builder) Eof() {}

// Parse reads a DIMACS CNF formula. Comments are skipped and a header is
// optional; Vars is the largest variable that occurs. A trailing clause
// without terminating 0 is rejected.
func Parse(r io.Reader) (*Formula, error) {
	b := &builder{f: &Formula{}}
	if err := dimacs.ReadCnf(r, b); err != nil {
		return nil, errors.Wrap(err, "cnf: parsing dimacs")
	}
	if len(b.cur) > 0 {
		return nil, errors.New("cnf: last clause is not terminated by 0")
	}
	return b.f, nil
}

// ParseFile is Parse on the named file.
func ParseFile(path string) (*Formula, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cnf: opening %s", path)
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "cnf: %s", path)
	}
	return f, nil
}

// Write writes f in strict DIMACS: a "p cnf" header and one clause per line,
// tokens separated by single spaces.
func Write(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = append(buf, "p cnf "...)
	buf = strconv.AppendInt(buf, int64(f.Vars), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(len(f.Clauses)), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return errors.Wrap(err, "cnf: writing header")
	}
	for _, c := range f.Clauses {
		buf = buf[:0]
		for _, l := range c {
			buf = strconv.AppendInt(buf, int64(l), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "cnf: writing clause")
		}
	}
	return errors.Wrap(bw.Flush(), "cnf: flushing")
}

// WriteFile is Write to a newly created file at path.
func WriteFile(path string, f *Formula) error {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cnf: creating %s", path)
	}
	if err := Write(fh, f); err != nil {
		fh.Close()
		return err
	}
	return errors.Wrapf(fh.Close(), "cnf: closing %s", path)
}
