package ordered

// Merge deep-merges override on top of base and returns a new Map.
// Conflict policy: when both sides hold a nested *Map the merge
// recurses; any other collision is won by the override. Keys only in
// one side are preserved. Base keys keep their positions; new override
// keys append in override order. Neither input is modified or aliased
// into the result.
func Merge(base, override *Map) *Map {
	out := base.Clone()

	for i := 0; i < override.Len(); i++ {
		key, val := override.At(i)

		if existing, ok := out.Get(key); ok {
			baseSub, baseIsMap := existing.(*Map)
			overSub, overIsMap := val.(*Map)

			if baseIsMap && overIsMap {
				out.Set(key, Merge(baseSub, overSub))
				continue
			}
		}

		out.Set(key, CloneValue(val))
	}

	return out
}
