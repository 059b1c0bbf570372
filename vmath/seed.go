package vmath

// Seed derivation for the samplers. Text identifiers (level, weapon, ammo ids)
// hash to a base seed; per-shot and per-pellet streams derive from it by index
// so one pattern never shares a generator across pellets.

// StringHash folds s into a 32-bit value by base-33 accumulation. Stable
// across runs and platforms; collisions are acceptable, correlation between
// derived streams is handled by CombineSeed's mixing.
func StringHash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*33 + uint32(s[i])
	}
	return h
}

// CombineSeed derives an independent sub-seed for index i from a base seed.
// Multiply-xor finalizer so consecutive indices land far apart in state
// space; index is offset by one so (base, 0) differs from the base itself.
func CombineSeed(base, index uint32) uint32 {
	h := base ^ (index+1)*0x9E3779B9
	h ^= h >> 16
	h *= 0x85EBCA6B
	h ^= h >> 13
	h *= 0xC2B2AE35
	h ^= h >> 16
	return h
}
