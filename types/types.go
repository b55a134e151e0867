// Package types models resolved type information: the small closed set of
// primitives, the numeric widening lattice, and the array/nullable flags
// spec §3 attaches to every resolved type reference.
package types

// ResolvedType is the semantic analyzer's view of a type: a name plus the
// array/nullable flags spec §3 defines. Two ResolvedTypes are the same type
// iff Name, IsArray, and IsNullable all match.
type ResolvedType struct {
	Name       string
	IsArray    bool
	IsNullable bool
}

// New builds a non-array, non-nullable ResolvedType named name.
func New(name string) ResolvedType {
	return ResolvedType{Name: name}
}

// Array builds an array-of-elem ResolvedType.
func Array(elem string) ResolvedType {
	return ResolvedType{Name: elem, IsArray: true}
}

// Nullable returns a copy of t marked nullable.
func (t ResolvedType) Nullable() ResolvedType {
	t.IsNullable = true
	return t
}

// Object, Void and the primitive names are the built-in vocabulary the
// symbol table's global scope is pre-populated with (spec §3).
const (
	Byte   = "byte"
	Short  = "short"
	Int    = "int"
	Long   = "long"
	Float  = "float"
	Double = "double"
	Bool   = "bool"
	Char   = "char"
	String = "string"
	Void   = "void"
	Object = "object"
)

var numericNames = map[string]bool{
	Byte: true, Short: true, Int: true, Long: true, Float: true, Double: true,
}

var primitiveNames = map[string]bool{
	Byte: true, Short: true, Int: true, Long: true, Float: true, Double: true,
	Bool: true, Char: true, String: true, Void: true,
}

// IsNumeric reports whether t names one of the six numeric primitives.
// Arrays of numerics are not themselves numeric.
func (t ResolvedType) IsNumeric() bool {
	return !t.IsArray && numericNames[t.Name]
}

// IsPrimitive reports whether t names a primitive (numeric, bool, char,
// string, or void). Arrays of primitives are not themselves primitive.
func (t ResolvedType) IsPrimitive() bool {
	return !t.IsArray && primitiveNames[t.Name]
}

// IsVoid reports whether t is exactly `void`.
func (t ResolvedType) IsVoid() bool {
	return !t.IsArray && t.Name == Void
}

// Equal reports true type identity: same name, same array-ness, same
// nullability.
func (t ResolvedType) Equal(other ResolvedType) bool {
	return t.Name == other.Name && t.IsArray == other.IsArray && t.IsNullable == other.IsNullable
}

func (t ResolvedType) String() string {
	s := t.Name
	if t.IsArray {
		s += "[]"
	}
	if t.IsNullable {
		s += "?"
	}
	return s
}

// widensTo is the strictly directional implicit numeric widening lattice
// from spec §4.3: byte -> short -> int -> long -> float -> double, plus the
// extra byte/short/int/long -> float/double edges the table lists.
var widensTo = map[string]map[string]bool{
	Byte:  {Short: true, Int: true, Long: true, Float: true, Double: true},
	Short: {Int: true, Long: true, Float: true, Double: true},
	Int:   {Long: true, Float: true, Double: true},
	Long:  {Float: true, Double: true},
	Float: {Double: true},
}

// WidensTo reports whether a value of numeric type from can be implicitly
// widened to numeric type to, per the directional lattice in spec §4.3.
func WidensTo(from, to string) bool {
	targets, ok := widensTo[from]
	if !ok {
		return false
	}
	return targets[to]
}
