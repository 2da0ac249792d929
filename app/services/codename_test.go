package services

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fallbackPattern = regexp.MustCompile(`^Codename-[0-9a-f]{8}$`)

func TestPickCodenameFromEmptyInventory(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	name := pickCodename(map[string]bool{}, rng)
	assert.Contains(t, codenamePool, name)
}

func TestPickCodenameSkipsReservedNames(t *testing.T) {
	reserved := map[string]bool{}
	for _, n := range codenamePool[:9] {
		reserved[n] = true
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.Equal(t, codenamePool[9], pickCodename(reserved, rng))
	}
}

func TestPickCodenameFallsBackWhenPoolExhausted(t *testing.T) {
	reserved := map[string]bool{}
	for _, n := range codenamePool {
		reserved[n] = true
	}
	rng := rand.New(rand.NewSource(1))
	name := pickCodename(reserved, rng)
	assert.Regexp(t, fallbackPattern, name)
}

func TestPickCodenameNeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		reserved := map[string]bool{}
		for _, n := range codenamePool {
			if rng.Intn(2) == 0 {
				reserved[n] = true
			}
		}
		assert.NotEmpty(t, pickCodename(reserved, rng))
	}
}
