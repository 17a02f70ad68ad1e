// scenelink-demo builds a pair of linked groups, edits one copy, and prints
// the replacement subtree produced by a synchronization pass.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/phroun/scenelink"
)

const worldHalfExtent = 8192.0

func main() {
	worldBounds := scenelink.CubeBBox3(worldHalfExtent)

	source := scenelink.NewGroupNode(scenelink.NewGroup("barrel_cluster"))
	source.Link()

	entity := scenelink.NewEntity()
	entity.AddOrUpdateProperty("classname", "prop_barrel")
	entity.AddOrUpdateProperty("skin", "rusty")
	source.AddChild(scenelink.NewEntityNode(entity))

	copyNode := source.CloneRecursively(worldBounds).(*scenelink.GroupNode)
	source.AddToLinkSet(copyNode)
	copyNode.Link()

	// Move the copy away from the source, then edit the source.
	transformGroup(copyNode, mgl64.Translate3D(128, 0, 0), worldBounds)

	sourceEntity := source.Children()[0].(*scenelink.EntityNode)
	e := sourceEntity.Entity()
	e.Transform(mgl64.Translate3D(0, 0, 32))
	e.AddOrUpdateProperty("skin", "clean")
	sourceEntity.SetEntity(e)

	replacements, err := source.UpdateLinkedGroups(worldBounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "update failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("source group %q with %d child(ren)\n", source.Name(), source.ChildCount())
	fmt.Printf("%d replacement(s) produced:\n", len(replacements))
	for _, r := range replacements {
		fmt.Printf("  replace %q -> %q\n", r.Original.Name(), r.Replacement.Name())
		printTree(r.Replacement, 2)
	}
}

// transformGroup applies a transform to a group subtree the way an editor
// command would: the group records it and every descendant moves.
func transformGroup(g *scenelink.GroupNode, m mgl64.Mat4, worldBounds scenelink.BBox3) {
	group := g.Group()
	group.Transform(m)
	g.SetGroup(group)

	for _, child := range g.Children() {
		switch child := child.(type) {
		case *scenelink.GroupNode:
			transformGroup(child, m, worldBounds)
		case *scenelink.EntityNode:
			e := child.Entity()
			e.Transform(m)
			child.SetEntity(e)
		case *scenelink.BrushNode:
			brush, err := child.Brush().Transform(worldBounds, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "brush transform failed: %v\n", err)
				os.Exit(1)
			}
			child.SetBrush(brush)
		}
	}
}

func printTree(n scenelink.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := n.(type) {
	case *scenelink.GroupNode:
		fmt.Printf("%sgroup %q\n", indent, n.Name())
	case *scenelink.EntityNode:
		origin := n.Entity().Origin()
		fmt.Printf("%sentity %q at (%g, %g, %g)", indent, n.Name(), origin.X(), origin.Y(), origin.Z())
		for _, p := range n.Entity().Properties() {
			fmt.Printf(" %s=%s", p.Key, p.Value)
		}
		fmt.Println()
	case *scenelink.BrushNode:
		b := n.LogicalBounds()
		fmt.Printf("%sbrush bounds %v..%v\n", indent, b.Min, b.Max)
	}
	for _, child := range n.Children() {
		printTree(child, depth+1)
	}
}
