package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/midbel/elfit"
	"github.com/midbel/toml"
)

// Ruleset is a set of expectations checked against a decoded ELF
// file. Empty fields match anything.
type Ruleset struct {
	Class    string `toml:"class"`
	Data     string `toml:"endianness"`
	Type     string `toml:"type"`
	Machine  string `toml:"machine"`
	Entry    bool   `toml:"need-entry"`
	Programs int64  `toml:"max-programs"`
	Sections int64  `toml:"max-sections"`
}

func Load(file string) (*Ruleset, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var rs Ruleset
	if err := toml.Decode(r, &rs); err != nil {
		return nil, err
	}
	return &rs, rs.valid()
}

func (rs *Ruleset) valid() error {
	if _, err := classValue(rs.Class); err != nil {
		return err
	}
	if _, err := dataValue(rs.Data); err != nil {
		return err
	}
	if _, err := typeValue(rs.Type); err != nil {
		return err
	}
	return nil
}

// Check returns one message per expectation the file does not meet.
func (rs *Ruleset) Check(f *elfit.File) []string {
	var vs []string
	if err := f.Valid(); err != nil {
		vs = append(vs, err.Error())
	}
	if c, _ := classValue(rs.Class); rs.Class != "" && f.Ident.Class != c {
		vs = append(vs, fmt.Sprintf("class is %s, %s expected", elfit.ClassName(f.Ident.Class), elfit.ClassName(c)))
	}
	if d, _ := dataValue(rs.Data); rs.Data != "" && f.Ident.Endianness != d {
		vs = append(vs, fmt.Sprintf("data is %s, %s expected", elfit.DataName(f.Ident.Endianness), elfit.DataName(d)))
	}
	if t, _ := typeValue(rs.Type); rs.Type != "" && f.Header.Type != t {
		vs = append(vs, fmt.Sprintf("type is %s, %s expected", elfit.TypeName(f.Header.Type), elfit.TypeName(t)))
	}
	if rs.Machine != "" && !strings.EqualFold(elfit.MachineName(f.Header.Machine), rs.Machine) {
		vs = append(vs, fmt.Sprintf("machine is %s, %s expected", elfit.MachineName(f.Header.Machine), rs.Machine))
	}
	if rs.Entry && f.Header.EntryAddr == 0 {
		vs = append(vs, "entry point is not set")
	}
	if rs.Programs > 0 && int64(len(f.Programs)) > rs.Programs {
		vs = append(vs, fmt.Sprintf("%d program headers, at most %d expected", len(f.Programs), rs.Programs))
	}
	if rs.Sections > 0 && int64(len(f.Sections)) > rs.Sections {
		vs = append(vs, fmt.Sprintf("%d section headers, at most %d expected", len(f.Sections), rs.Sections))
	}
	return vs
}

func classValue(v string) (uint8, error) {
	switch v {
	case "", "any":
		return 0, nil
	case "32":
		return elfit.Class32, nil
	case "64":
		return elfit.Class64, nil
	default:
		return 0, fmt.Errorf("unknown class %q", v)
	}
}

func dataValue(v string) (uint8, error) {
	switch v {
	case "", "any":
		return 0, nil
	case "little", "lsb":
		return elfit.DataLittle, nil
	case "big", "msb":
		return elfit.DataBig, nil
	default:
		return 0, fmt.Errorf("unknown endianness %q", v)
	}
}

func typeValue(v string) (uint16, error) {
	switch v {
	case "", "any":
		return 0, nil
	case "rel":
		return elfit.TypeRel, nil
	case "exec":
		return elfit.TypeExec, nil
	case "dyn":
		return elfit.TypeDyn, nil
	case "core":
		return elfit.TypeCore, nil
	default:
		return 0, fmt.Errorf("unknown type %q", v)
	}
}
