package scenelink

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNumberedKey(t *testing.T) {
	tests := []struct {
		key  string
		base string
		want bool
	}{
		{"target1", "target", true},
		{"target2", "target", true},
		{"target10", "target", true},
		{"target02", "target", true},
		{"target", "target", false},
		{"target0", "target", false},
		{"target2x", "target", false},
		{"targ", "target", false},
		{"other1", "target", false},
		{"target-1", "target", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, isNumberedKey(tt.key, tt.base))
		})
	}
}

func TestEntityProperties(t *testing.T) {
	e := NewEntity()
	e.AddOrUpdateProperty("classname", "light")
	e.AddOrUpdateProperty("target", "door1")
	e.AddOrUpdateProperty("classname", "light_spot")

	// Updates keep insertion order.
	assert.Equal(t, []Property{
		{"classname", "light_spot"},
		{"target", "door1"},
	}, e.Properties())

	value, ok := e.Property("target")
	require.True(t, ok)
	assert.Equal(t, "door1", value)

	_, ok = e.Property("missing")
	assert.False(t, ok)

	e.RemoveProperty("classname")
	assert.Equal(t, []Property{{"target", "door1"}}, e.Properties())

	// Removing an absent key is a no-op.
	e.RemoveProperty("classname")
	assert.Equal(t, []Property{{"target", "door1"}}, e.Properties())
}

func TestEntityNumberedProperties(t *testing.T) {
	e := NewEntity()
	e.AddOrUpdateProperty("target", "base")
	e.AddOrUpdateProperty("target1", "one")
	e.AddOrUpdateProperty("targetname", "self")
	e.AddOrUpdateProperty("target2", "two")

	assert.Equal(t, []Property{
		{"target1", "one"},
		{"target2", "two"},
	}, e.NumberedProperties("target"))

	e.RemoveNumberedProperties("target")
	assert.Equal(t, []Property{
		{"target", "base"},
		{"targetname", "self"},
	}, e.Properties())
}

func TestEntityTransform(t *testing.T) {
	e := NewEntity()
	e.Transform(mgl64.Translate3D(1, 2, 3))
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, e.Origin())

	e.Transform(mgl64.Scale3D(2, 2, 2))
	assert.Equal(t, mgl64.Vec3{2, 4, 6}, e.Origin())
}

func TestEntityNodeValueSemantics(t *testing.T) {
	node := NewEntityNode(NewEntity())

	// Mutating a copy does not affect the node until written back.
	e := node.Entity()
	e.AddOrUpdateProperty("skin", "rusty")
	assert.Empty(t, node.Entity().Properties())

	node.SetEntity(e)
	assert.Equal(t, []Property{{"skin", "rusty"}}, node.Entity().Properties())

	// The written-back copy is independent too.
	e.AddOrUpdateProperty("skin", "clean")
	value, _ := node.Entity().Property("skin")
	assert.Equal(t, "rusty", value)
}

func TestEntityNodeName(t *testing.T) {
	node := NewEntityNode(NewEntity())
	assert.Equal(t, "", node.Name())

	e := node.Entity()
	e.AddOrUpdateProperty("classname", "info_player_start")
	node.SetEntity(e)
	assert.Equal(t, "info_player_start", node.Name())
}

func TestBrushEntityBounds(t *testing.T) {
	node := NewEntityNode(NewEntity())
	node.AddChild(NewBrushNode(newCuboidBrush(32)))

	// A brush entity derives its bounds from its children, not its origin.
	assert.Equal(t, CubeBBox3(32), node.LogicalBounds())
	assert.Equal(t, CubeBBox3(32), node.PhysicalBounds())
}
