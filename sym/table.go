package sym

import "ggc/types"

// BuiltinStaticClasses is the set of global static-class names the global
// scope is pre-populated with (spec §3: Console, Math, Memory, plus the
// runtime-ABI-backed extensions Files, Directory, Path, Crypto, Network,
// OS, Clock, and the container classes). No instance of any of these is
// ever allocated; they are names the emitter lowers directly to runtime
// calls.
var BuiltinStaticClasses = []string{
	"Console", "Math", "Memory",
	"Files", "Directory", "Path", "Crypto", "Network", "OS", "Clock",
	"HashMap", "HashSet", "List", "Stack", "Queue",
}

var builtinPrimitives = []string{
	types.Byte, types.Short, types.Int, types.Long,
	types.Float, types.Double, types.Bool, types.Char, types.String, types.Void,
}

// Table is the whole-compilation symbol table: the global scope plus the
// class/interface/enum registries the analyzer's passes build up.
type Table struct {
	Global *Scope

	Classes    map[string]*ClassInfo
	Interfaces map[string]*InterfaceInfo
	Enums      map[string]*EnumInfo
}

// InterfaceInfo is the registered form of an interface declaration.
type InterfaceInfo struct {
	Name    string
	Methods []string
}

// EnumInfo is the registered form of an enum declaration.
type EnumInfo struct {
	Name  string
	Cases []string
}

// NewTable creates a symbol table with the global scope pre-populated per
// spec §3: primitive type names and the built-in static-class names.
func NewTable() *Table {
	t := &Table{
		Global:     NewScope(nil),
		Classes:    make(map[string]*ClassInfo),
		Interfaces: make(map[string]*InterfaceInfo),
		Enums:      make(map[string]*EnumInfo),
	}

	for _, name := range builtinPrimitives {
		t.Global.Define(&Symbol{Name: name, Kind: KindClass, Type: types.New(name)})
	}
	for _, name := range BuiltinStaticClasses {
		t.Global.Define(&Symbol{Name: name, Kind: KindClass, Type: types.New(name)})
	}

	return t
}

// IsBuiltinStaticClass reports whether name is one of the pre-registered
// global static-class names.
func IsBuiltinStaticClass(name string) bool {
	for _, n := range BuiltinStaticClasses {
		if n == name {
			return true
		}
	}
	return false
}

// LookupClass finds a user-declared class by name.
func (t *Table) LookupClass(name string) (*ClassInfo, bool) {
	c, ok := t.Classes[name]
	return c, ok
}

// IsKnownTypeName reports whether name refers to a primitive, a registered
// class/interface/enum, or a built-in static class — the set the
// analyzer's identifier-resolution warning (spec §4.3) consults.
func (t *Table) IsKnownTypeName(name string) bool {
	if _, ok := t.Global.LookupLocal(name); ok {
		return true
	}
	if _, ok := t.Classes[name]; ok {
		return true
	}
	if _, ok := t.Interfaces[name]; ok {
		return true
	}
	if _, ok := t.Enums[name]; ok {
		return true
	}
	return false
}
