package compiler

import "golang.org/x/sys/unix"

// Linux x86-64 syscall numbers and mmap prot/flag bits the code generator
// emits into the assembly it produces. Sourced from golang.org/x/sys/unix
// instead of hand-copied literals so the numeric ABI the generator relies
// on is traceable to a real, versioned definition of the Linux syscall
// table rather than invented.
const (
	sysWrite = unix.SYS_WRITE
	sysExit  = unix.SYS_EXIT
	sysMmap  = unix.SYS_MMAP

	mmapProt  = unix.PROT_READ | unix.PROT_WRITE
	mmapFlags = unix.MAP_PRIVATE | unix.MAP_ANONYMOUS

	stdoutFD = 1
)
