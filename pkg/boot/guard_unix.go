//go:build unix

package boot

import "golang.org/x/sys/unix"

// guardRegionSize is the span of the inaccessible region reserved at
// bootstrap. 64KiB covers the largest base page size in use.
const guardRegionSize = 64 << 10

// installStackGuard reserves an anonymous, inaccessible mapping recorded
// in the bootstrap state. A stack overflowing into the region faults
// deterministically and can be reported, instead of silently corrupting
// adjacent memory. Failure to reserve the region is fatal: the process
// must not reach Ready without its overflow guarantees.
func installStackGuard() {
	region, err := unix.Mmap(
		-1,
		0,
		guardRegionSize,
		unix.PROT_NONE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		fatalf("install stack guard region: %v", err)
	}

	bootstrap.guard = region
}

func releaseStackGuard() {
	if bootstrap.guard == nil {
		return
	}

	if err := unix.Munmap(bootstrap.guard); err != nil {
		fatalf("release stack guard region: %v", err)
	}

	bootstrap.guard = nil
}
