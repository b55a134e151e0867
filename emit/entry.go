package emit

// writeEntryPointShim emits the fixed forwarding definition the runtime's
// own `main()` calls, plus the memory-limit call when configured
// (SPEC_FULL.md §6). If no class declared a static `main`, no forwarder is
// emitted — such a program has no entry point and the eventual C-compiler
// invocation (outside this module's scope, spec §1) will fail to link,
// which is the correct outcome.
func (e *Emitter) writeEntryPointShim() {
	if e.mainClass == "" {
		return
	}

	e.emitf("\nvoid Program_main(void) {\n")
	if e.cfg.MemoryLimit > 0 {
		e.emitf("\tgg_gc_set_memory_limit(%dULL);\n", e.cfg.MemoryLimit)
	}
	e.emitf("\t%s();\n", methodFuncName(e.mainClass, "main"))
	e.emitf("}\n")
}
