// Package core provides the fundamental combinatorial primitives shared by
// the rest of the engine: Vertex and Edge records, the collision-checked
// VertexList/EdgeList dictionaries that own them, the monotonic id
// allocator, and the Orientation value type.
//
// Nothing in this package knows about simplices or gluing; those live in
// simplex and spacetime, both of which depend on core.
package core
