package pathutil

import (
	"testing"
)

func BenchmarkPathBuilder_ChannelMessagePayload(b *testing.B) {
	for b.Loop() {
		p := Acquire()
		p.Push("channels")
		p.Push("smartylighting/streetlights/{streetlightId}/lighting/measured")
		p.Push("subscribe")
		p.Push("message")
		p.Push("payload")
		p.Push("properties")
		p.Push("sentAt")
		_ = p.String()
		Release(p)
	}
}

func BenchmarkPathBuilder_PushPopOnly(b *testing.B) {
	for b.Loop() {
		p := Acquire()
		for j := 0; j < 8; j++ {
			p.PushIndex(j)
		}
		for p.Pop() {
		}
		Release(p)
	}
}

func BenchmarkJoin(b *testing.B) {
	for b.Loop() {
		_ = Join("components", "schemas", "a/b~c", "properties", "id")
	}
}
