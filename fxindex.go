package reaccess

// FX indices are the host's own addressing scheme and can be passed straight
// back to any FX function. A top level effect is addressed by its slot. An
// effect inside a container is addressed by
//
//	(slot+1)*multiplier + containerIndex
//
// where multiplier is the product of (chain size + 1) over every enclosing
// chain and containerIndex is ContainerBase+slot+1 for a top level container
// or the container's own index for deeper ones. Input and monitoring FX on
// tracks have RecBase added.
const (
	RecBase       = 0x1000000
	ContainerBase = 0x2000000
)

// TopContainerIndex is the containerIndex of a container at a top level slot.
func TopContainerIndex(slot int) int {
	return ContainerBase + slot + 1
}

// ContainedIndex returns the index of the effect at slot inside a container.
func ContainedIndex(slot, multiplier, containerIndex int) int {
	return (slot+1)*multiplier + containerIndex
}
