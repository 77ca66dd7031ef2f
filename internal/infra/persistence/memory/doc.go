// Package memory implements the persistence repositories over in-process
// maps. Each collection keeps its own RWMutex and a monotonically
// increasing ID counter starting at 1; IDs are never reused and deletes do
// not cascade. Values are copied on the way in and out so callers can never
// mutate stored state through returned pointers. Nothing survives a process
// restart; durability is an explicit non-goal of this system.
package memory
