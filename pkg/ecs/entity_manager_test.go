package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testFrameComponent struct {
	Index int
}

type testMarkerComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体不应接受组件
	em.AddComponent(EntityID(42), &testPositionComponent{})
	if em.HasComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
}

func TestGenericAccessors(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testFrameComponent{Index: 7})

	frame, ok := GetComponent[*testFrameComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testFrameComponent] should succeed")
	}
	if frame.Index != 7 {
		t.Errorf("Index: got %d, want 7", frame.Index)
	}

	// 通过指针修改后再次读取应看到新值
	frame.Index = 8
	again, _ := GetComponent[*testFrameComponent](em, id)
	if again.Index != 8 {
		t.Errorf("Index after mutation: got %d, want 8", again.Index)
	}

	if !HasComponent[*testFrameComponent](em, id) {
		t.Error("HasComponent should be true")
	}
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should be false for missing type")
	}

	RemoveComponent[*testFrameComponent](em, id)
	if _, ok := GetComponent[*testFrameComponent](em, id); ok {
		t.Error("Component should be gone after RemoveComponent")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testMarkerComponent{})
	em.AddComponent(id1, &testFrameComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testFrameComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testMarkerComponent{})
	em.AddComponent(id3, &testFrameComponent{})

	tests := []struct {
		name string
		got  []EntityID
		want []EntityID
	}{
		{"marker+frame", GetEntitiesWith2[*testMarkerComponent, *testFrameComponent](em), []EntityID{id1, id3}},
		{"frame only", GetEntitiesWith1[*testFrameComponent](em), []EntityID{id1, id2, id3}},
		{"missing type", GetEntitiesWith2[*testMarkerComponent, *testPositionComponent](em), []EntityID{}},
		{"no types", em.GetEntitiesWith(), []EntityID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testFrameComponent{Index: i})
	}

	entities := GetEntitiesWith1[*testFrameComponent](em)
	for i := 1; i < len(entities); i++ {
		if entities[i-1] >= entities[i] {
			t.Fatalf("Entities not in ascending order at %d: %v", i, entities)
		}
	}
}

// BenchmarkGetEntitiesWith2 测量双组件查询开销
func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 1000; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testFrameComponent{Index: i})
		if i%10 == 0 {
			em.AddComponent(id, &testMarkerComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testMarkerComponent, *testFrameComponent](em)
	}
}
