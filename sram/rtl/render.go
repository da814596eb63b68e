package rtl

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.v.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("rtl").
	Funcs(template.FuncMap{
		"params": paramDecls,
		"ports":  portDecls,
		"xor":    xorTerms,
		"add":    func(a, b int) int { return a + b },
		"dec":    func(a int) int { return a - 1 },
		"memref": memRef,
	}).
	ParseFS(templateFS, "templates/*.v.tmpl"))

var kindTemplate = map[ModuleKind]string{
	KindTop:        "top.v.tmpl",
	KindPowerGate:  "powergate.v.tmpl",
	KindClockGate:  "clockgate.v.tmpl",
	KindECCEncoder: "eccenc.v.tmpl",
	KindECCDecoder: "eccdec.v.tmpl",
}

// tmplCtx is the data every module template is executed with.
type tmplCtx struct {
	D Design
	M Module
}

// RenderArtifact renders one artifact of the design to Verilog text. The
// output is a deterministic function of the design.
func RenderArtifact(d Design, a Artifact) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "// %s.v\n", a.Name)
	fmt.Fprintf(buf, "// Generated by sramgen for configuration %s.\n",
		d.Config.Fingerprint())
	fmt.Fprintf(buf, "// Do not edit; regenerate instead.\n")

	for _, m := range a.Modules {
		buf.WriteString("\n")

		err := templates.ExecuteTemplate(buf, kindTemplate[m.Kind],
			tmplCtx{D: d, M: m})
		if err != nil {
			return nil, fmt.Errorf(
				"rendering module %s: %w", m.Name, err)
		}
	}

	return buf.Bytes(), nil
}

func paramDecls(m Module) string {
	lines := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		lines = append(lines,
			fmt.Sprintf("    parameter %s = %d", p.Name, p.Value))
	}

	return strings.Join(lines, ",\n")
}

func portDecls(m Module) string {
	lines := make([]string, 0, len(m.Ports))
	for _, p := range m.Ports {
		dir := "input  wire"
		if p.Dir == Output {
			if p.Reg {
				dir = "output reg "
			} else {
				dir = "output wire"
			}
		}

		width := ""
		if p.Width > 1 {
			width = fmt.Sprintf("[%d:0] ", p.Width-1)
		}

		lines = append(lines, fmt.Sprintf("    %s %s%s", dir, width, p.Name))
	}

	return strings.Join(lines, ",\n")
}

func memRef(d Design) string {
	if d.BankSelWidth == 0 {
		return "mem[addr]"
	}

	if d.WordAddrWidth() == 0 {
		return "mem[bank_sel][0]"
	}

	return "mem[bank_sel][word_addr]"
}

// xorTerms renders the XOR of the given bits of a signal, for the unrolled
// Hamming parity network.
func xorTerms(signal string, bits []int) string {
	terms := make([]string, 0, len(bits))
	for _, b := range bits {
		terms = append(terms, fmt.Sprintf("%s[%d]", signal, b))
	}

	return strings.Join(terms, " ^ ")
}
