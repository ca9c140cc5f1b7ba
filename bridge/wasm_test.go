package bridge

import "fmt"

// Hand-assembled wasm guests so the end-to-end tests need no guest
// toolchain. Each guest exports a bump allocator and one wrapper
// export per imported host function ("call0", "call1", ...) that
// forwards its packed argument and returns the host's packed result.

type guestImport struct {
	name    string
	nullary bool
}

func buildGuest(imports ...guestImport) []byte {
	return buildGuestModule(true, imports...)
}

func buildGuestModule(exportAlloc bool, imports ...guestImport) []byte {
	n := len(imports)

	// Type section: 0 = (i32)->(i32), 1 = ()->(), 2 = (i64)->(i64),
	// 3 = ()->(i64).
	types := wasmVec(
		[]byte{0x60, 0x01, 0x7f, 0x01, 0x7f},
		[]byte{0x60, 0x00, 0x00},
		[]byte{0x60, 0x01, 0x7e, 0x01, 0x7e},
		[]byte{0x60, 0x00, 0x01, 0x7e},
	)

	var importEntries [][]byte
	for _, imp := range imports {
		typeIdx := byte(2)
		if imp.nullary {
			typeIdx = 3
		}
		entry := append(wasmName("env"), wasmName(imp.name)...)
		entry = append(entry, 0x00, typeIdx)
		importEntries = append(importEntries, entry)
	}

	// Local functions: allocator (type 0), _initialize (type 1), then
	// one (i64)->(i64) wrapper per import. Wrappers for nullary imports
	// still take the packed argument and ignore it; every guest entry
	// point has the same shape.
	funcTypes := [][]byte{{0x00}, {0x01}}
	for range imports {
		funcTypes = append(funcTypes, []byte{0x02})
	}

	memories := wasmVec([]byte{0x00, 0x01})

	// One mutable i32 heap pointer starting past the data area.
	globals := wasmVec(append([]byte{0x7f, 0x01, 0x41}, append(wasmSLEB(1024), 0x0b)...))

	allocIdx := n
	initIdx := n + 1

	exports := [][]byte{
		wasmExport("memory", 0x02, 0),
		wasmExport("_initialize", 0x00, initIdx),
	}
	if exportAlloc {
		exports = append(exports, wasmExport("sf_alloc", 0x00, allocIdx))
	}
	for k := range imports {
		exports = append(exports, wasmExport(fmt.Sprintf("call%d", k), 0x00, n+2+k))
	}

	// sf_alloc returns the current heap pointer and bumps it by the
	// requested size.
	allocBody := wasmFuncBody(
		0x23, 0x00, // global.get $heap
		0x23, 0x00, // global.get $heap
		0x20, 0x00, // local.get $size
		0x6a,       // i32.add
		0x24, 0x00, // global.set $heap
	)
	initBody := wasmFuncBody()

	bodies := [][]byte{allocBody, initBody}
	for k, imp := range imports {
		if imp.nullary {
			bodies = append(bodies, wasmFuncBody(append([]byte{0x10}, wasmULEB(uint64(k))...)...))
			continue
		}
		code := append([]byte{0x20, 0x00, 0x10}, wasmULEB(uint64(k))...)
		bodies = append(bodies, wasmFuncBody(code...))
	}

	mod := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	mod = append(mod, wasmSection(1, types)...)
	if n > 0 {
		mod = append(mod, wasmSection(2, wasmVec(importEntries...))...)
	}
	mod = append(mod, wasmSection(3, wasmVec(funcTypes...))...)
	mod = append(mod, wasmSection(5, memories)...)
	mod = append(mod, wasmSection(6, globals)...)
	mod = append(mod, wasmSection(7, wasmVec(exports...))...)
	mod = append(mod, wasmSection(10, wasmVec(bodies...))...)
	return mod
}

func wasmULEB(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			return out
		}
	}
}

func wasmSLEB(v int64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}

func wasmName(s string) []byte {
	return append(wasmULEB(uint64(len(s))), s...)
}

func wasmVec(items ...[]byte) []byte {
	out := wasmULEB(uint64(len(items)))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

func wasmSection(id byte, body []byte) []byte {
	out := []byte{id}
	out = append(out, wasmULEB(uint64(len(body)))...)
	return append(out, body...)
}

func wasmExport(name string, kind byte, idx int) []byte {
	out := append(wasmName(name), kind)
	return append(out, wasmULEB(uint64(idx))...)
}

func wasmFuncBody(instrs ...byte) []byte {
	code := append([]byte{0x00}, instrs...) // no local declarations
	code = append(code, 0x0b)
	return append(wasmULEB(uint64(len(code))), code...)
}
