package elfit

import (
	"io"
	"os"
	"time"

	"github.com/midbel/tape/ar"
)

// Member is an ELF object found inside an ar archive, typically a
// static library or the outer container of a deb package.
type Member struct {
	Name    string
	ModTime time.Time
	File    *File
}

// Members walks an ar archive and decodes every member that carries
// the ELF magic. Members without it (symbol tables, extended name
// tables, plain data files) are skipped, not reported as errors; a
// member that looks like ELF but fails to decode aborts the walk.
func Members(r io.Reader) ([]Member, error) {
	rs, err := ar.NewReader(r)
	if err != nil {
		return nil, err
	}
	var ms []Member
	for {
		h, err := rs.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		data := make([]byte, h.Size)
		if _, err := io.ReadFull(rs, data); err != nil {
			return nil, err
		}
		if !IsELF(data) {
			continue
		}
		f, err := Decode(data)
		if err != nil {
			return nil, err
		}
		m := Member{
			Name:    h.Filename,
			ModTime: h.ModTime,
			File:    f,
		}
		ms = append(ms, m)
	}
	return ms, nil
}

// OpenMembers reads an ar archive from disk and decodes its ELF
// members.
func OpenMembers(file string) ([]Member, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Members(r)
}
