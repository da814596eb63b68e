// Package rtl derives a synthesizable Verilog description of an SRAM macro
// from its configuration. The structural description of the design (which
// modules and ports exist) is separated from text rendering so that it can
// be tested without string comparison.
package rtl

import (
	"fmt"
	"math"

	"github.com/sarchlab/sramgen/sram"
)

// PortDir is the direction of a module port.
type PortDir int

// Port directions.
const (
	Input PortDir = iota
	Output
)

func (d PortDir) String() string {
	if d == Input {
		return "input"
	}

	return "output"
}

// A Port is one port of a generated module. Width 1 renders as a scalar;
// Reg marks outputs driven from procedural blocks.
type Port struct {
	Name  string
	Dir   PortDir
	Width int
	Reg   bool
}

// A Param is one Verilog parameter of a generated module.
type Param struct {
	Name  string
	Value int
}

// ModuleKind selects the template a module is rendered with.
type ModuleKind int

// Module kinds.
const (
	KindTop ModuleKind = iota
	KindPowerGate
	KindClockGate
	KindECCEncoder
	KindECCDecoder
)

// A Module is the structural description of one generated Verilog module.
type Module struct {
	Kind   ModuleKind
	Name   string
	Params []Param
	Ports  []Port
}

// An Artifact is one generated file, holding one or more modules. Its file
// name is Name + ".v".
type Artifact struct {
	Name    string
	Modules []Module
}

// A CheckEquation describes one Hamming check bit as the XOR of a set of
// data bit indices.
type CheckEquation struct {
	Index    int
	DataBits []int
}

// A Design is the full structural description derived from one
// configuration. Identical configurations derive identical designs.
type Design struct {
	Config sram.Config

	BaseName  string
	AddrWidth int
	DataWidth int
	CheckBits int
	CodeWidth int

	// BankSelWidth is zero for single-bank macros.
	BankSelWidth int

	// CheckEqs holds the unrolled Hamming parity equations when ECC is
	// enabled, one per check bit. DataPositions maps each data bit index
	// to its codeword position, used by the decoder's correction network.
	CheckEqs      []CheckEquation
	DataPositions []int

	Artifacts []Artifact
}

// DesignFrom derives the structural design for cfg. It is a pure function
// of the configuration.
func DesignFrom(cfg sram.Config) Design {
	d := Design{
		Config:    cfg,
		BaseName:  fmt.Sprintf("sram_%dx%d", cfg.Depth, cfg.Width),
		AddrWidth: clog2(cfg.Depth),
		DataWidth: cfg.Width,
	}

	if cfg.Banks > 1 {
		d.BankSelWidth = clog2(cfg.Banks)
	}

	if cfg.ECCEnable {
		d.CheckBits = sram.CheckBits(cfg.Width)
		d.CodeWidth = cfg.Width + d.CheckBits
		d.CheckEqs, d.DataPositions =
			hammingCheckEquations(cfg.Width, d.CheckBits)
	}

	d.Artifacts = append(d.Artifacts, Artifact{
		Name:    d.BaseName,
		Modules: []Module{d.topModule()},
	})

	if cfg.ECCEnable {
		d.Artifacts = append(d.Artifacts, Artifact{
			Name:    d.BaseName + "_ecc",
			Modules: []Module{d.eccEncoderModule(), d.eccDecoderModule()},
		})
	}

	if cfg.PowerGating {
		d.Artifacts = append(d.Artifacts, Artifact{
			Name:    d.BaseName + "_pg",
			Modules: []Module{d.powerGateModule()},
		})
	}

	if cfg.ClockGating {
		d.Artifacts = append(d.Artifacts, Artifact{
			Name:    d.BaseName + "_cg",
			Modules: []Module{d.clockGateModule()},
		})
	}

	return d
}

// ArtifactNames returns the file names the design renders to, in emission
// order.
func (d Design) ArtifactNames() []string {
	names := make([]string, 0, len(d.Artifacts))
	for _, a := range d.Artifacts {
		names = append(names, a.Name+".v")
	}

	return names
}

// StorageWidth returns the number of bits stored per word, including check
// bits when ECC is enabled.
func (d Design) StorageWidth() int {
	if d.Config.ECCEnable {
		return d.CodeWidth
	}

	return d.DataWidth
}

// WordAddrWidth returns the number of address bits that select a word
// within one bank. It is zero when each bank holds a single word, in
// which case the rendered module indexes each bank directly.
func (d Design) WordAddrWidth() int {
	if d.Config.WordsPerBank() <= 1 {
		return 0
	}

	return clog2(d.Config.WordsPerBank())
}

func (d Design) topModule() Module {
	m := Module{
		Kind: KindTop,
		Name: d.BaseName,
		Params: []Param{
			{"ADDR_WIDTH", d.AddrWidth},
			{"DATA_WIDTH", d.DataWidth},
			{"NUM_BANKS", d.Config.Banks},
			{"BANK_DEPTH", d.Config.WordsPerBank()},
		},
		Ports: []Port{
			{Name: "clk", Dir: Input, Width: 1},
			{Name: "we", Dir: Input, Width: 1},
			{Name: "addr", Dir: Input, Width: d.AddrWidth},
			{Name: "wdata", Dir: Input, Width: d.DataWidth},
			{Name: "rdata", Dir: Output, Width: d.DataWidth},
		},
	}

	if d.Config.RetentionMode {
		m.Ports = append(m.Ports, Port{Name: "ret_en", Dir: Input, Width: 1})
	}

	if d.Config.ECCEnable {
		m.Ports = append(m.Ports,
			Port{Name: "ecc_sbe", Dir: Output, Width: 1},
			Port{Name: "ecc_dbe", Dir: Output, Width: 1})
	}

	return m
}

func (d Design) powerGateModule() Module {
	m := d.topModule()
	m.Kind = KindPowerGate
	m.Name = d.BaseName + "_pg"
	m.Ports = append(m.Ports, Port{Name: "sleep_n", Dir: Input, Width: 1})

	return m
}

func (d Design) clockGateModule() Module {
	m := d.topModule()
	m.Kind = KindClockGate
	m.Name = d.BaseName + "_cg"
	m.Ports = append(m.Ports, Port{Name: "access_en", Dir: Input, Width: 1})

	return m
}

func (d Design) eccEncoderModule() Module {
	return Module{
		Kind: KindECCEncoder,
		Name: d.BaseName + "_ecc_enc",
		Ports: []Port{
			{Name: "data_in", Dir: Input, Width: d.DataWidth},
			{Name: "code_out", Dir: Output, Width: d.CodeWidth},
		},
	}
}

func (d Design) eccDecoderModule() Module {
	return Module{
		Kind: KindECCDecoder,
		Name: d.BaseName + "_ecc_dec",
		Ports: []Port{
			{Name: "code_in", Dir: Input, Width: d.CodeWidth},
			{Name: "data_out", Dir: Output, Width: d.DataWidth, Reg: true},
			{Name: "sbe", Dir: Output, Width: 1},
			{Name: "dbe", Dir: Output, Width: 1},
		},
	}
}

// hammingCheckEquations unrolls the SEC Hamming parity network. Codeword
// positions are numbered from 1; check bits sit at power-of-two positions
// and data bits fill the rest in order.
func hammingCheckEquations(
	width, checkBits int,
) ([]CheckEquation, []int) {
	dataPos := make([]int, 0, width)
	pos := 1
	for len(dataPos) < width {
		if !isPowerOfTwo(pos) {
			dataPos = append(dataPos, pos)
		}
		pos++
	}

	eqs := make([]CheckEquation, checkBits)
	for i := 0; i < checkBits; i++ {
		eq := CheckEquation{Index: i}
		for j, p := range dataPos {
			if p&(1<<i) != 0 {
				eq.DataBits = append(eq.DataBits, j)
			}
		}
		eqs[i] = eq
	}

	return eqs, dataPos
}

func isPowerOfTwo(n int) bool {
	return n&(n-1) == 0
}

func clog2(n int) int {
	if n <= 1 {
		return 1
	}

	return int(math.Ceil(math.Log2(float64(n))))
}
