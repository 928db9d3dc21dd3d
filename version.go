// version.go — package version, mirroring the teacher's mindscript.Version.
package monkey

// Version identifies this build of the runtime, surfaced by the REPL's
// banner and the CLI's usage text.
const Version = "0.1.0"
