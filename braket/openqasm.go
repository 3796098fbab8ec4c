package braket

import (
	"fmt"
	"strings"

	"github.com/go-faster/jx"
)

const (
	OPENQASM_PROGRAM_HEADER  = "braket.ir.openqasm.program"
	OPENQASM_PROGRAM_VERSION = "1"
)

var resultPragmas = map[ResultType]string{
	ResultStateVector:   "state_vector",
	ResultDensityMatrix: "density_matrix",
}

// ToOpenQASM serializes c as an OpenQASM 3 program with Braket pragmas.
// Circuits without result types measure every qubit.
func (c *Circuit) ToOpenQASM() string {
	n := c.QubitCount()
	var sb strings.Builder
	sb.WriteString("OPENQASM 3.0;\n")
	measure := len(c.resultTypes) == 0
	if measure {
		fmt.Fprintf(&sb, "bit[%d] b;\n", n)
	}
	fmt.Fprintf(&sb, "qubit[%d] q;\n", n)
	for _, inst := range c.instructions {
		targets := make([]string, len(inst.Targets))
		for i, t := range inst.Targets {
			targets[i] = fmt.Sprintf("q[%d]", t)
		}
		if inst.IsNoise() {
			fmt.Fprintf(&sb, "#pragma braket noise %s %s\n", inst.Noise, strings.Join(targets, ", "))
			continue
		}
		fmt.Fprintf(&sb, "%s %s;\n", inst.Gate, strings.Join(targets, ", "))
	}
	for _, rt := range c.resultTypes {
		fmt.Fprintf(&sb, "#pragma braket result %s\n", resultPragmas[rt])
	}
	if measure {
		for q := 0; q < n; q++ {
			fmt.Fprintf(&sb, "b[%d] = measure q[%d];\n", q, q)
		}
	}
	return sb.String()
}

// ActionDocument encodes c as the JSON action of a CreateQuantumTask request.
func ActionDocument(c *Circuit) string {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("braketSchemaHeader")
	e.ObjStart()
	e.FieldStart("name")
	e.Str(OPENQASM_PROGRAM_HEADER)
	e.FieldStart("version")
	e.Str(OPENQASM_PROGRAM_VERSION)
	e.ObjEnd()
	e.FieldStart("source")
	e.Str(c.ToOpenQASM())
	e.FieldStart("inputs")
	e.ObjStart()
	e.ObjEnd()
	e.ObjEnd()
	return string(e.Bytes())
}
