package emit

import (
	"fmt"
	"strings"

	"ggc/ast"
	"ggc/sym"
	"ggc/types"
)

// callString lowers a call expression, choosing among the four dispatch
// shapes spec §4.4 names: a built-in static-class call (lowered to a
// runtime gg_* function), a user class's static method, an explicit
// `base.method(...)` call (always static, bypassing the vtable), and an
// ordinary instance call (static if the method is not virtual, indirected
// through the vtable if it is).
func (e *Emitter) callString(ci *sym.ClassInfo, c *ast.CallExpr) string {
	member, ok := c.Callee.(*ast.MemberExpr)
	if !ok {
		if id, ok := c.Callee.(*ast.Ident); ok {
			return e.implicitThisCallString(ci, id.Name, c.Args)
		}
		return "/* unsupported call */ 0"
	}

	if className, ok := staticClassName(member.Target); ok {
		if className == "Console" {
			return e.consoleCallString(ci, member.Name, c.Args)
		}
		return builtinLowering(className, member.Name, e.exprList(ci, c.Args))
	}

	if id, ok := member.Target.(*ast.Ident); ok {
		if uci, ok := e.table.Classes[id.Name]; ok {
			if m, owner, ok := uci.LookupMethod(member.Name); ok && m.Modifiers.Static {
				return fmt.Sprintf("%s(%s)", methodFuncName(owner.Name, member.Name), strings.Join(e.exprList(ci, c.Args), ", "))
			}
		}
	}

	args := e.exprList(ci, c.Args)
	argsSuffix := ""
	for _, a := range args {
		argsSuffix += ", " + a
	}

	if _, isBase := member.Target.(*ast.BaseExpr); isBase {
		if ci != nil && ci.BaseInfo != nil {
			if _, owner, ok := ci.BaseInfo.LookupMethod(member.Name); ok {
				return fmt.Sprintf("%s(%s%s)", methodFuncName(owner.Name, member.Name), "(&self->base)", argsSuffix)
			}
		}
	}

	targetStr := e.exprString(ci, member.Target)
	tt := resolvedTypeOf(member.Target)

	if rt := (types.ResolvedType{Name: tt.Name, IsArray: tt.IsArray, IsNullable: tt.IsNullable}); rt.IsPrimitive() {
		return extensionCallString(rt, member.Name, targetStr, args)
	}

	tci, ok := e.table.Classes[tt.Name]
	if !ok {
		return fmt.Sprintf("%s->%s(%s%s)", targetStr, member.Name, targetStr, argsSuffix)
	}

	m, owner, ok := tci.LookupMethod(member.Name)
	if !ok {
		return fmt.Sprintf("/* unresolved method %s */ 0", member.Name)
	}
	if m.Modifiers.Virtual || m.Modifiers.Abstract || m.Modifiers.Override {
		return fmt.Sprintf("%s->%s(%s%s)", vtableAccess(tci, targetStr), member.Name, targetStr, argsSuffix)
	}
	return fmt.Sprintf("%s(%s%s)", methodFuncName(owner.Name, member.Name), targetStr, argsSuffix)
}

// implicitThisCallString lowers a bare `method(args)` call — shorthand for
// `this.method(args)` — the same way checkCall's sema counterpart resolves
// it.
func (e *Emitter) implicitThisCallString(ci *sym.ClassInfo, name string, rawArgs []ast.Expr) string {
	args := e.exprList(ci, rawArgs)
	argsSuffix := ""
	for _, a := range args {
		argsSuffix += ", " + a
	}
	if ci != nil {
		if m, owner, ok := ci.LookupMethod(name); ok {
			if m.Modifiers.Virtual || m.Modifiers.Abstract || m.Modifiers.Override {
				return fmt.Sprintf("%s->%s(self%s)", vtableAccess(ci, "self"), name, argsSuffix)
			}
			return fmt.Sprintf("%s(self%s)", methodFuncName(owner.Name, name), argsSuffix)
		}
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (e *Emitter) exprList(ci *sym.ClassInfo, exprs []ast.Expr) []string {
	out := make([]string, len(exprs))
	for i, a := range exprs {
		out[i] = e.exprString(ci, a)
	}
	return out
}

// consoleCallString lowers Console.writeLine/write/readLine/readInt calls.
// readLine/readInt map to their exact gg_runtime.h counterparts
// (gg_console_readLine, gg_console_readInt — camelCase, no write_string/
// write_format variants exist). write/writeLine pick their printf
// conversion from the argument's resolved static type (spec §4.4): integers
// print with %lld after a widening cast, floating types with %g, strings
// and booleans go straight to gg_console_write. writeLine's trailing
// newline is emitted as its own printf("\n") rather than relying on
// gg_console_writeLine's built-in newline, so multi-argument calls still
// print exactly one newline at the end.
func (e *Emitter) consoleCallString(ci *sym.ClassInfo, member string, rawArgs []ast.Expr) string {
	switch member {
	case "readLine":
		return "gg_console_readLine()"
	case "readInt":
		return "gg_console_readInt()"
	}

	newline := member == "writeLine"
	if len(rawArgs) == 0 {
		if newline {
			return `printf("\n")`
		}
		return `((void)0)`
	}

	parts := make([]string, len(rawArgs))
	for i, a := range rawArgs {
		parts[i] = e.consoleArgString(ci, a)
	}
	call := strings.Join(parts, "; ")
	if newline {
		call += `; printf("\n")`
	}
	return call
}

func (e *Emitter) consoleArgString(ci *sym.ClassInfo, arg ast.Expr) string {
	t := resolvedTypeOf(arg)
	s := e.exprString(ci, arg)

	switch {
	case t.IsArray:
		return `gg_console_write(gg_string_from_cstr("<array>"))`
	case t.Name == "string":
		return fmt.Sprintf("gg_console_write(%s)", s)
	case t.Name == "bool":
		return fmt.Sprintf(`gg_console_write(gg_string_from_cstr((%s) ? "true" : "false"))`, s)
	case t.Name == "float" || t.Name == "double":
		return fmt.Sprintf(`printf("%%g", (double)(%s))`, s)
	case t.Name == "char":
		return fmt.Sprintf(`printf("%%c", (%s))`, s)
	default:
		return fmt.Sprintf(`printf("%%lld", (long long)(%s))`, s)
	}
}

// extensionCallString lowers a method call on a primitive-typed receiver
// (`value.toString()`, `s.toUpper()`, `d.round(2)`) to the runtime's
// `gg_ext_<type>_<method>` family (spec §7), with the receiver passed as the
// leading argument. The method name is emitted exactly as written — the
// gg_ext_* ABI is camelCase (gg_ext_int_toString, gg_ext_string_indexOf),
// not snake_case.
func extensionCallString(recv types.ResolvedType, member, recvStr string, args []string) string {
	all := append([]string{recvStr}, args...)
	return fmt.Sprintf("gg_ext_%s_%s(%s)", recv.Name, member, strings.Join(all, ", "))
}

// builtinClassPrefix gives the gg_runtime.h symbol prefix for a built-in
// static class. Most lowercase directly (Math -> math, Files -> files);
// HashMap/HashSet collapse to one word (hashmap/hashset, not hash_map) and
// OS collapses to "os" rather than "o_s" — both exceptions a generic
// camelCase-to-snake_case conversion gets wrong, so the mapping is spelled
// out explicitly instead.
var builtinClassPrefix = map[string]string{
	"Console":   "console",
	"Math":      "math",
	"Files":     "files",
	"Directory": "directory",
	"Path":      "path",
	"Crypto":    "crypto",
	"Network":   "network",
	"OS":        "os",
	"Clock":     "clock",
	"HashMap":   "hashmap",
	"HashSet":   "hashset",
	"List":      "list",
	"Stack":     "stack",
	"Queue":     "queue",
}

// builtinLowering lowers a static call on a built-in class other than
// Console to its runtime counterpart. Memory is the one built-in whose ABI
// doesn't follow the gg_<class>_<method> convention at all — it lowers to
// bare Memory_alloc/Memory_free — so it is special-cased; every other
// built-in class uses builtinClassPrefix for its prefix and the method
// name verbatim, matching the gg_runtime.h symbol spelling exactly (the
// ABI is camelCase, not snake_case).
func builtinLowering(class, member string, args []string) string {
	if class == "Memory" {
		return fmt.Sprintf("Memory_%s(%s)", member, strings.Join(args, ", "))
	}
	prefix, ok := builtinClassPrefix[class]
	if !ok {
		prefix = strings.ToLower(class)
	}
	return fmt.Sprintf("gg_%s_%s(%s)", prefix, member, strings.Join(args, ", "))
}
