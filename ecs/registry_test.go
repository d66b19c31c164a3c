package ecs

import (
	"slices"
	"testing"
)

func TestRegistryVisibilityDelay(t *testing.T) {
	s := NewStore(8)
	r := NewRegistry(s)

	p, err := r.AddEntity(TagPlatform)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Active(p) {
		t.Fatalf("slot must be allocated immediately")
	}
	if r.Count(TagPlatform) != 0 || len(r.Entities()) != 0 {
		t.Fatalf("entity visible before reconcile")
	}
	if r.Pending() != 1 {
		t.Fatalf("expected one pending entity, got %d", r.Pending())
	}

	r.Reconcile()
	if !slices.Equal(r.View(TagPlatform), []Entity{p}) {
		t.Fatalf("expected platform view [%d], got %v", p, r.View(TagPlatform))
	}

	r.Destroy(p)
	if s.Active(p) {
		t.Fatalf("destroy must deactivate immediately")
	}
	if !slices.Equal(r.View(TagPlatform), []Entity{p}) {
		t.Fatalf("destroyed entity must stay visible until reconcile")
	}

	r.Reconcile()
	if r.Count(TagPlatform) != 0 || len(r.Entities()) != 0 {
		t.Fatalf("destroyed entity still visible after reconcile: %v", r.Entities())
	}
}

func TestRegistryViewsMatchActiveTags(t *testing.T) {
	s := NewStore(32)
	r := NewRegistry(s)

	tags := []Tag{TagPlatform, TagEnemy, TagPlatform, TagGoal, TagBullet, TagPlatform, TagPlayer}
	var ents []Entity
	for _, tag := range tags {
		e, err := r.AddEntity(tag)
		if err != nil {
			t.Fatal(err)
		}
		ents = append(ents, e)
	}
	r.Reconcile()

	r.Destroy(ents[0])
	r.Destroy(ents[4])
	// Reuse slot 0 under a different tag before reconciling.
	reused, err := r.AddEntity(TagEnemy)
	if err != nil {
		t.Fatal(err)
	}
	if reused != ents[0] {
		t.Fatalf("expected slot %d reused, got %d", ents[0], reused)
	}
	r.Reconcile()

	for _, tag := range Tags() {
		var want []Entity
		for i := 0; i < s.Capacity(); i++ {
			e := Entity(i)
			if s.Active(e) && s.Tag(e) == tag {
				want = append(want, e)
			}
		}
		got := slices.Clone(r.View(tag))
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Fatalf("view %s = %v, want %v", tag, got, want)
		}
	}
	if len(r.Entities()) != s.ActiveCount() {
		t.Fatalf("canonical list has %d entries, %d active", len(r.Entities()), s.ActiveCount())
	}
}

func TestRegistryViewKeepsInsertionOrder(t *testing.T) {
	s := NewStore(8)
	r := NewRegistry(s)
	a, _ := r.AddEntity(TagPlatform)
	b, _ := r.AddEntity(TagPlatform)
	c, _ := r.AddEntity(TagPlatform)
	r.Reconcile()

	r.Destroy(a)
	r.Reconcile()
	d, _ := r.AddEntity(TagPlatform) // takes slot a
	r.Reconcile()

	want := []Entity{b, c, d}
	if !slices.Equal(r.View(TagPlatform), want) {
		t.Fatalf("expected %v, got %v", want, r.View(TagPlatform))
	}
}

func TestRegistryDestroyedBeforeReconcileNeverAppears(t *testing.T) {
	s := NewStore(4)
	r := NewRegistry(s)
	e, _ := r.AddEntity(TagBullet)
	r.Destroy(e)
	r.Reconcile()
	if r.Count(TagBullet) != 0 {
		t.Fatalf("expected empty bullet view, got %v", r.View(TagBullet))
	}
}

func TestRegistryUnknownTag(t *testing.T) {
	r := NewRegistry(NewStore(1))
	if r.View(Tag(200)) != nil || r.Count(Tag(200)) != 0 {
		t.Fatalf("unknown tag should have an empty view")
	}
}
