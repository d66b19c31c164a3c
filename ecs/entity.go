package ecs

import "strconv"

// Entity is a slot index into the Store. It carries no data and is only
// meaningful while its slot is active.
type Entity uint32

// InvalidEntity marks "no entity" in handles that may be unset.
const InvalidEntity = Entity(^uint32(0))

func (e Entity) String() string {
	if e == InvalidEntity {
		return "invalid"
	}
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e != InvalidEntity
}

// Tag is a coarse entity classification used to partition the registry.
type Tag uint8

const (
	TagNone Tag = iota
	TagPlayer
	TagBullet
	TagEnemy
	TagPlatform
	TagGoal

	tagCount
)

var tagNames = [tagCount]string{
	TagNone:     "none",
	TagPlayer:   "player",
	TagBullet:   "bullet",
	TagEnemy:    "enemy",
	TagPlatform: "platform",
	TagGoal:     "goal",
}

func (t Tag) String() string {
	if t >= tagCount {
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
	return tagNames[t]
}

// Tags returns every known tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, 0, tagCount)
	for t := TagNone; t < tagCount; t++ {
		out = append(out, t)
	}
	return out
}
