package scenelink

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Point entities occupy a fixed cube of this half-extent around their origin
// until an entity definition says otherwise.
const defaultEntityHalfExtent = 8.0

// Property is a single key/value attribute of an entity.
type Property struct {
	Key   string
	Value string
}

// Entity is the value state of a point object: a position plus an ordered
// key/value property list and the set of property keys that are preserved
// during linked-group synchronization.
//
// An entity is a value; EntityNode hands out and accepts independent copies,
// so callers mutate a copy and write it back via SetEntity.
type Entity struct {
	origin        mgl64.Vec3
	properties    []Property
	preservedKeys []string
}

// NewEntity creates an entity at the origin with no properties.
func NewEntity() Entity {
	return Entity{}
}

// Origin returns the entity's position.
func (e Entity) Origin() mgl64.Vec3 {
	return e.origin
}

// SetOrigin moves the entity to the given position.
func (e *Entity) SetOrigin(origin mgl64.Vec3) {
	e.origin = origin
}

// Transform maps the entity's position through the given transform.
func (e *Entity) Transform(m mgl64.Mat4) {
	e.origin = transformPoint(m, e.origin)
}

// Properties returns a copy of the entity's properties in order.
func (e Entity) Properties() []Property {
	return append([]Property(nil), e.properties...)
}

// SetProperties replaces the entity's properties.
func (e *Entity) SetProperties(properties []Property) {
	e.properties = append([]Property(nil), properties...)
}

// Property looks up the value for the given key.
func (e Entity) Property(key string) (string, bool) {
	for _, p := range e.properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// AddOrUpdateProperty sets the value for the given key, appending the
// property if the key is not present.
func (e *Entity) AddOrUpdateProperty(key, value string) {
	for i, p := range e.properties {
		if p.Key == key {
			e.properties[i].Value = value
			return
		}
	}
	e.properties = append(e.properties, Property{Key: key, Value: value})
}

// RemoveProperty removes the property with the given key, if present.
// This can change the order of the remaining properties' neighbors only by
// closing the gap; relative order is kept.
func (e *Entity) RemoveProperty(key string) {
	for i, p := range e.properties {
		if p.Key == key {
			e.properties = append(e.properties[:i], e.properties[i+1:]...)
			return
		}
	}
}

// PreservedKeys returns a copy of the preserved property key bases.
func (e Entity) PreservedKeys() []string {
	return append([]string(nil), e.preservedKeys...)
}

// SetPreservedKeys replaces the preserved property key bases.
func (e *Entity) SetPreservedKeys(keys []string) {
	e.preservedKeys = append([]string(nil), keys...)
}

// NumberedProperties returns, in property order, every property whose key is
// the given base followed by a positive decimal suffix. The bare base key
// itself is not part of the family.
func (e Entity) NumberedProperties(base string) []Property {
	var family []Property
	for _, p := range e.properties {
		if isNumberedKey(p.Key, base) {
			family = append(family, p)
		}
	}
	return family
}

// RemoveNumberedProperties removes every member of the numbered family with
// the given base.
func (e *Entity) RemoveNumberedProperties(base string) {
	kept := e.properties[:0]
	for _, p := range e.properties {
		if !isNumberedKey(p.Key, base) {
			kept = append(kept, p)
		}
	}
	e.properties = kept
}

// clone returns an independent deep copy of the entity.
func (e Entity) clone() Entity {
	return Entity{
		origin:        e.origin,
		properties:    append([]Property(nil), e.properties...),
		preservedKeys: append([]string(nil), e.preservedKeys...),
	}
}

// isNumberedKey reports whether key is base followed by a positive decimal
// suffix, e.g. "target2" for base "target".
func isNumberedKey(key, base string) bool {
	if len(key) <= len(base) || !strings.HasPrefix(key, base) {
		return false
	}
	suffix := key[len(base):]
	nonZero := false
	for _, c := range suffix {
		if c < '0' || c > '9' {
			return false
		}
		if c != '0' {
			nonZero = true
		}
	}
	return nonZero
}

// EntityNode is a point-object leaf in the scene tree. Entities may also act
// as containers for brush nodes (brush entities), in which case their bounds
// are derived from the children.
type EntityNode struct {
	nodeBase
	entity Entity
}

// NewEntityNode creates a node holding a copy of the given entity.
func NewEntityNode(entity Entity) *EntityNode {
	n := &EntityNode{entity: entity.clone()}
	n.init(n)
	return n
}

// Entity returns an independent copy of the node's entity state.
func (n *EntityNode) Entity() Entity {
	return n.entity.clone()
}

// SetEntity replaces the node's entity state with a copy of entity and marks
// the node's bounds dirty.
func (n *EntityNode) SetEntity(entity Entity) {
	n.entity = entity.clone()
	n.invalidateAncestorBounds()
}

// Name returns the entity's classname property, or the empty string.
func (n *EntityNode) Name() string {
	name, _ := n.entity.Property("classname")
	return name
}

// LogicalBounds returns the entity's bounds: the merged child bounds for a
// brush entity, otherwise the default point-entity cube around the origin.
func (n *EntityNode) LogicalBounds() BBox3 {
	if len(n.children) > 0 {
		return childLogicalBounds(n.children)
	}
	return CubeBBox3(defaultEntityHalfExtent).Translate(n.entity.origin)
}

// PhysicalBounds returns the same bounds as LogicalBounds.
func (n *EntityNode) PhysicalBounds() BBox3 {
	if len(n.children) > 0 {
		return childPhysicalBounds(n.children)
	}
	return CubeBBox3(defaultEntityHalfExtent).Translate(n.entity.origin)
}

// Clone returns a fresh node holding a copy of the entity state.
func (n *EntityNode) Clone(worldBounds BBox3) Node {
	return NewEntityNode(n.entity)
}

func (n *EntityNode) acceptsChild(child Node) bool {
	_, ok := child.(*BrushNode)
	return ok
}
