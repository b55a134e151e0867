package emit

import (
	"ggc/ast"
	"ggc/config"
)

// writePreamble emits the fixed C preamble: standard headers, the no-GC
// guard macro (when configured), and the runtime header include
// (SPEC_FULL.md §6).
func (e *Emitter) writePreamble() {
	e.emitf("#include <stdio.h>\n")
	e.emitf("#include <stdlib.h>\n")
	e.emitf("#include <string.h>\n")
	e.emitf("#include <stdbool.h>\n")
	e.emitf("#include <stdint.h>\n")

	if e.cfg.GarbageCollector == config.GCDisabled {
		e.emitf("#define GG_NO_GC\n")
	}

	e.emitf("#include \"gg_runtime.h\"\n\n")
}

// writeForwardDecls emits a forward typedef for every class struct so
// field and method signatures referencing another class declared later in
// the file still compile (spec §4.4).
func (e *Emitter) writeForwardDecls(classes []*ast.ClassDecl) {
	for _, cd := range classes {
		e.emitf("typedef struct %s %s;\n", structName(cd.Name), structName(cd.Name))
		e.emitf("typedef struct %s %s;\n", vtableType(cd.Name), vtableType(cd.Name))
	}
	e.emitf("\n")
}
