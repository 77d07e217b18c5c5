// Package irdump serialises an instantiated program for external tooling
// (the --dump-ir CLI flag), exposing an inspectable snapshot of the IR.
// The instantiated program's own pointer graph is not msgpack/JSON
// friendly: FunctionInstance values reference Type values by pointer, and
// structs can be self-referential through their members, so
// this package flattens everything to the same tN/fN integer identities
// the C emitter uses.
package irdump

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/eyelash/joy/internal/ir"
	"github.com/eyelash/joy/internal/types"
)

type Member struct {
	Name string `msgpack:"name" json:"name"`
	Type uint64 `msgpack:"type" json:"type"`
}

type Type struct {
	ID      uint64   `msgpack:"id" json:"id"`
	Kind    string   `msgpack:"kind" json:"kind"`
	Origin  string   `msgpack:"origin,omitempty" json:"origin,omitempty"`
	Args    []uint64 `msgpack:"args,omitempty" json:"args,omitempty"`
	Members []Member `msgpack:"members,omitempty" json:"members,omitempty"`
}

type Param struct {
	Name string `msgpack:"name" json:"name"`
	Type uint64 `msgpack:"type" json:"type"`
}

type Func struct {
	ID       uint64   `msgpack:"id" json:"id"`
	Name     string   `msgpack:"name" json:"name"`
	TypeArgs []uint64 `msgpack:"type_args,omitempty" json:"type_args,omitempty"`
	Params   []Param  `msgpack:"params" json:"params"`
	Return   uint64   `msgpack:"return" json:"return"`
}

// Program is the flattened, serialisable view of an ir.Program.
type Program struct {
	SourcePath string `msgpack:"source_path" json:"source_path"`
	EntryID    uint64 `msgpack:"entry_id" json:"entry_id"`
	Types      []Type `msgpack:"types" json:"types"`
	Funcs      []Func `msgpack:"funcs" json:"funcs"`
}

func kindName(k types.Kind) string {
	switch k {
	case types.KindVoid:
		return "void"
	case types.KindInt:
		return "int"
	case types.KindStruct:
		return "struct"
	}
	return "unknown"
}

func typeIDs(ts []*types.Type) []uint64 {
	if len(ts) == 0 {
		return nil
	}
	out := make([]uint64, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

// Build flattens prog into its serialisable form.
func Build(prog *ir.Program) Program {
	out := Program{SourcePath: prog.SourcePath, EntryID: prog.EntryID}

	for _, t := range prog.Interner.Types() {
		dt := Type{ID: t.ID, Kind: kindName(t.Kind), Args: typeIDs(t.Args)}
		if t.Origin != nil {
			dt.Origin = t.Origin.Name
		}
		for _, m := range t.Members {
			dt.Members = append(dt.Members, Member{Name: m.Name, Type: m.Type.ID})
		}
		out.Types = append(out.Types, dt)
	}

	for _, fi := range prog.Funcs {
		df := Func{ID: fi.ID, Name: fi.Origin.Name, TypeArgs: typeIDs(fi.TypeArgs), Return: fi.Return.ID}
		for _, p := range fi.Params {
			df.Params = append(df.Params, Param{Name: p.Name, Type: p.Type.ID})
		}
		out.Funcs = append(out.Funcs, df)
	}
	return out
}

// Marshal encodes prog as msgpack, the default --dump-ir format.
func Marshal(prog *ir.Program) ([]byte, error) {
	return msgpack.Marshal(Build(prog))
}

// MarshalJSON encodes prog as indented JSON, for --dump-ir-format=json and
// the dump-ir subcommand's default format.
func MarshalJSON(prog *ir.Program) ([]byte, error) {
	return json.MarshalIndent(Build(prog), "", "  ")
}
