// Package runtime executes the external collaborator binaries (the
// version-control client and the environment manager) as blocking
// subprocesses. The Runner interface lets command construction be tested
// without spawning processes; ExecRunner is the real implementation.
package runtime
