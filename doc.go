package lumos

// Package lumos compiles .lumos schema definitions into synchronized Rust
// and TypeScript sources that share one Borsh wire encoding.
//
// The pipeline is strictly linear and stateless:
//
//	source → Parse → syntax tree → Resolve → type model → GenerateRust
//	                                                    → GenerateTypeScript (+ wire descriptor)
//
// Design policy:
// - Keep only the public pipeline API in the root package; stage
//   implementations live in ast/, parser/, resolve/, ir/, gen/ and borsh/.
// - The core never touches the file system; reading schemas and writing
//   generated files is the job of cmd/lumos.
// - A compile either fully succeeds (both outputs produced) or fails with a
//   single structured error; there are no partial results.
//
// Typical usage:
//
//	out, err := lumos.Compile(source)
//	// out.Rust, out.TypeScript, out.Descriptor
