// Package ifpatch describes binary patches for interactive fiction story
// files and renders them for the Bocfel interpreter.
//
// - Load a patch list from JSON (comments allowed), YAML or TOML with LoadFile/Decode
// - Check before/after lengths for the whole batch with Validate
// - Render the runtime listing or the compile-time table through a Renderer
//
// Shape problems in the configuration are reported as Issues (JSON Pointer,
// code, message). A length mismatch is reported as *LengthMismatchError.
//
// Typical usage:
//
//	patches, err := ifpatch.LoadFile(ctx, "patches.json", ifpatch.FormatAuto)
//	if err := ifpatch.Validate(patches); err != nil { ... }
//	r, _ := ifpatch.RendererFor(ifpatch.ModeRuntime)
//	err = ifpatch.Write(os.Stdout, r, patches)
package ifpatch
