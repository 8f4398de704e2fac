// Command genshaders rewrites internal/shaders/zshaders.go.
//
// By default it compiles hlsl/gui.hlsl with fxc, which requires Windows with
// the Windows SDK on PATH; the output is committed so regular builds never
// need fxc. With -placeholder it instead emits structural stand-in DXBC
// containers built from the gui.hlsl signatures, usable on any platform:
// they parse (magic, chunk table, input/output signatures) but carry empty
// token streams and a zero content hash, so drivers reject them. Targets
// with real hardware must regenerate without -placeholder.
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	hlslPath = "hlsl/gui.hlsl"
	outPath  = "internal/shaders/zshaders.go"
)

var placeholder = flag.Bool("placeholder", false,
	"emit stand-in containers with the gui.hlsl signatures instead of running fxc")

func main() {
	log.SetFlags(0)
	log.SetPrefix("genshaders: ")
	flag.Parse()

	var vs, ps []byte
	if *placeholder {
		vs = placeholderContainer(true)
		ps = placeholderContainer(false)
	} else {
		var err error
		if vs, err = compile("vs_4_0", "vs_main"); err != nil {
			log.Fatal(err)
		}
		if ps, err = compile("ps_4_0", "ps_main"); err != nil {
			log.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if *placeholder {
		buf.WriteString("// Code generated by tools/genshaders -placeholder. DO NOT EDIT.\n")
		buf.WriteString("//\n// Structural stand-in DXBC containers carrying the gui.hlsl input and\n")
		buf.WriteString("// output signatures, with empty token streams and a zero content hash.\n")
		buf.WriteString("// Drivers reject them; regenerate on Windows with fxc on PATH\n")
		buf.WriteString("// (go run ./tools/genshaders) before targeting real hardware.\n\n")
	} else {
		buf.WriteString("// Code generated by tools/genshaders. DO NOT EDIT.\n")
		buf.WriteString("//\n// Compiled from hlsl/gui.hlsl with fxc /T vs_4_0 and /T ps_4_0.\n\n")
	}
	buf.WriteString("package shaders\n\n")
	buf.WriteString("// VertexShader is the vs_4_0 blob for the GUI vertex shader.\n")
	writeBytes(&buf, "VertexShader", vs)
	buf.WriteString("\n// PixelShader is the ps_4_0 blob for the GUI pixel shader.\n")
	writeBytes(&buf, "PixelShader", ps)

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%d + %d bytes)", outPath, len(vs), len(ps))
}

func compile(profile, entry string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "gui-*."+profile)
	if err != nil {
		return nil, err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	cmd := exec.Command("fxc", "/nologo", "/T", profile, "/E", entry, "/Fo", tmp.Name(), filepath.FromSlash(hlslPath))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("fxc %s: %v\n%s", profile, err, out)
	}
	return os.ReadFile(tmp.Name())
}

// sigElement is one row of an ISGN/OSGN signature chunk.
type sigElement struct {
	name     string
	sysValue uint32
	register uint32
	mask     byte
}

// The signatures of vs_main and ps_main in hlsl/gui.hlsl. The vertex output
// signature doubles as the pixel input signature.
var (
	vsInput = []sigElement{
		{name: "POSITION", register: 0, mask: 0x03},
		{name: "TEXCOORD", register: 1, mask: 0x03},
		{name: "COLOR", register: 2, mask: 0x0F},
	}
	vsOutput = []sigElement{
		{name: "SV_POSITION", sysValue: 1, register: 0, mask: 0x0F},
		{name: "COLOR", register: 1, mask: 0x0F},
		{name: "TEXCOORD", register: 2, mask: 0x03},
	}
	psOutput = []sigElement{
		{name: "SV_Target", register: 0, mask: 0x0F},
	}
)

func placeholderContainer(vertex bool) []byte {
	input, output := vsInput, vsOutput
	version := uint32(0x00010040) // vs_4_0
	if !vertex {
		input, output = vsOutput, psOutput
		version = 0x00000040 // ps_4_0
	}
	var shdr bytes.Buffer
	le(&shdr, version)
	le(&shdr, uint32(2)) // token count: version + length only
	return container(
		chunk("ISGN", signature(input)),
		chunk("OSGN", signature(output)),
		chunk("SHDR", shdr.Bytes()),
	)
}

// signature builds an ISGN/OSGN payload: element count, element table,
// NUL-terminated semantic names, zero-padded to 4 bytes.
func signature(elems []sigElement) []byte {
	var table, strings bytes.Buffer
	base := uint32(8 + 24*len(elems))
	for _, e := range elems {
		le(&table, base+uint32(strings.Len()))
		le(&table, uint32(0)) // semantic index
		le(&table, e.sysValue)
		le(&table, uint32(3)) // component type: float32
		le(&table, e.register)
		table.WriteByte(e.mask)
		table.WriteByte(e.mask) // read/write mask
		table.WriteByte(0)
		table.WriteByte(0)
		strings.WriteString(e.name)
		strings.WriteByte(0)
	}
	var out bytes.Buffer
	le(&out, uint32(len(elems)))
	le(&out, uint32(8))
	out.Write(table.Bytes())
	out.Write(strings.Bytes())
	for out.Len()%4 != 0 {
		out.WriteByte(0)
	}
	return out.Bytes()
}

func chunk(fourcc string, payload []byte) []byte {
	var out bytes.Buffer
	out.WriteString(fourcc)
	le(&out, uint32(len(payload)))
	out.Write(payload)
	return out.Bytes()
}

func container(chunks ...[]byte) []byte {
	var out bytes.Buffer
	out.WriteString("DXBC")
	out.Write(make([]byte, 16)) // content hash, zero for stand-ins
	le(&out, uint32(1))

	headerSize := 4 + 16 + 4 + 4 + 4 + 4*len(chunks)
	total := headerSize
	for _, c := range chunks {
		total += len(c)
	}
	le(&out, uint32(total))
	le(&out, uint32(len(chunks)))
	off := headerSize
	for _, c := range chunks {
		le(&out, uint32(off))
		off += len(c)
	}
	for _, c := range chunks {
		out.Write(c)
	}
	return out.Bytes()
}

func le(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeBytes(buf *bytes.Buffer, name string, data []byte) {
	fmt.Fprintf(buf, "var %s = []byte{\n", name)
	for i, b := range data {
		if i%12 == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(buf, "0x%02x,", b)
		if i%12 == 11 || i == len(data)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("}\n")
}
